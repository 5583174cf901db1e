package store

import (
	"sync"

	"culinamind-go-be/models"
)

// RecipeImportStore owns the URL queue and the current extraction state.
// Extraction results are ephemeral working state (re-extraction replaces
// them), so this store is memory-only. The generation counter gates async
// completions the same way the cookbook search does.
type RecipeImportStore struct {
	mu         sync.Mutex
	urls       []string
	recipes    []models.ExtractedRecipe
	grocery    []models.GroceryItem
	totalCost  string
	extracting bool
	extractErr string
	generation uint64
}

func NewRecipeImportStore() *RecipeImportStore {
	return &RecipeImportStore{}
}

// AddURL queues a URL, ignoring exact duplicates.
func (s *RecipeImportStore) AddURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.urls {
		if u == url {
			return
		}
	}
	s.urls = append(s.urls, url)
}

func (s *RecipeImportStore) RemoveURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.urls[:0]
	for _, u := range s.urls {
		if u != url {
			kept = append(kept, u)
		}
	}
	s.urls = kept
}

func (s *RecipeImportStore) ClearURLs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls = nil
}

func (s *RecipeImportStore) URLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

// BeginExtraction marks an extraction in flight and returns its generation.
func (s *RecipeImportStore) BeginExtraction() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.extracting = true
	s.extractErr = ""
	return s.generation
}

// CompleteExtraction replaces the current extraction state if gen is still
// current. No partial results survive a failed or superseded attempt.
func (s *RecipeImportStore) CompleteExtraction(gen uint64, recipes []models.ExtractedRecipe, grocery []models.GroceryItem, totalCost string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.recipes = recipes
	s.grocery = grocery
	s.totalCost = totalCost
	s.extracting = false
	s.extractErr = ""
	return true
}

// FailExtraction stores the human-readable error if gen is still current.
func (s *RecipeImportStore) FailExtraction(gen uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.extracting = false
	s.extractErr = msg
	return true
}

// AddExtractedRecipe appends a recipe without touching the grocery list.
func (s *RecipeImportStore) AddExtractedRecipe(r models.ExtractedRecipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = append(s.recipes, r)
}

// Extraction returns a snapshot of the current extraction state.
func (s *RecipeImportStore) Extraction() (recipes []models.ExtractedRecipe, grocery []models.GroceryItem, totalCost string, extracting bool, extractErr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipes = make([]models.ExtractedRecipe, len(s.recipes))
	copy(recipes, s.recipes)
	grocery = make([]models.GroceryItem, len(s.grocery))
	copy(grocery, s.grocery)
	return recipes, grocery, s.totalCost, s.extracting, s.extractErr
}

func (s *RecipeImportStore) ToggleGroceryItem(id string) (models.GroceryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.grocery {
		if s.grocery[i].ID == id {
			s.grocery[i].IsChecked = !s.grocery[i].IsChecked
			return s.grocery[i], true
		}
	}
	return models.GroceryItem{}, false
}

// ClearGroceryList drops the grocery list together with the extraction
// results and cost estimate.
func (s *RecipeImportStore) ClearGroceryList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grocery = nil
	s.recipes = nil
	s.totalCost = ""
}

func (s *RecipeImportStore) CheckedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.grocery {
		if item.IsChecked {
			n++
		}
	}
	return n
}

func (s *RecipeImportStore) UncheckedItems() []models.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.GroceryItem, 0, len(s.grocery))
	for _, item := range s.grocery {
		if !item.IsChecked {
			out = append(out, item)
		}
	}
	return out
}
