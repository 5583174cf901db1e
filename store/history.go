package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"culinamind-go-be/models"
)

// maxSearchHistory caps retained searches, newest first.
const maxSearchHistory = 50

// HistoryStore owns past AI recipe searches (with per-recipe generated image
// slots) and the cooked log. Both are device-session state, memory-only.
type HistoryStore struct {
	mu       sync.Mutex
	searches []models.SearchHistoryEntry
	cooked   []models.CookedEntry
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// AddSearchEntry prepends a search and trims to the cap.
func (s *HistoryStore) AddSearchEntry(query, cuisine string, recipes []models.HistoryRecipe) models.SearchHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := models.SearchHistoryEntry{
		ID:        uuid.NewString(),
		Query:     query,
		Cuisine:   cuisine,
		Timestamp: time.Now().UnixMilli(),
		Recipes:   recipes,
	}
	s.searches = append([]models.SearchHistoryEntry{entry}, s.searches...)
	if len(s.searches) > maxSearchHistory {
		s.searches = s.searches[:maxSearchHistory]
	}
	return entry
}

func (s *HistoryStore) RemoveSearchEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.searches[:0]
	for _, e := range s.searches {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.searches = kept
}

func (s *HistoryStore) ClearSearchHistory() {
	s.mu.Lock()
	s.searches = nil
	s.mu.Unlock()
}

func (s *HistoryStore) Searches() []models.SearchHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SearchHistoryEntry, len(s.searches))
	copy(out, s.searches)
	return out
}

// UpdateRecipeImage fills a recipe's image slot and clears its loading flag.
func (s *HistoryStore) UpdateRecipeImage(searchID, recipeID, dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editRecipe(searchID, recipeID, func(r *models.HistoryRecipe) {
		r.ImageDataURI = dataURI
		r.ImageLoading = false
	})
}

func (s *HistoryStore) SetRecipeImageLoading(searchID, recipeID string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editRecipe(searchID, recipeID, func(r *models.HistoryRecipe) {
		r.ImageLoading = loading
	})
}

func (s *HistoryStore) editRecipe(searchID, recipeID string, edit func(*models.HistoryRecipe)) {
	for i := range s.searches {
		if s.searches[i].ID != searchID {
			continue
		}
		for j := range s.searches[i].Recipes {
			if s.searches[i].Recipes[j].ID == recipeID {
				edit(&s.searches[i].Recipes[j])
			}
		}
	}
}

// MarkAsCooked prepends a cooked record.
func (s *HistoryStore) MarkAsCooked(recipeID, recipeTitle, cuisine, imageDataURI string) models.CookedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := models.CookedEntry{
		ID:           uuid.NewString(),
		RecipeID:     recipeID,
		RecipeTitle:  recipeTitle,
		Cuisine:      cuisine,
		ImageDataURI: imageDataURI,
		CookedAt:     time.Now().UnixMilli(),
	}
	s.cooked = append([]models.CookedEntry{entry}, s.cooked...)
	return entry
}

func (s *HistoryStore) RemoveCooked(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cooked[:0]
	for _, e := range s.cooked {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.cooked = kept
}

func (s *HistoryStore) ClearCookedItems() {
	s.mu.Lock()
	s.cooked = nil
	s.mu.Unlock()
}

func (s *HistoryStore) CookedItems() []models.CookedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CookedEntry, len(s.cooked))
	copy(out, s.cooked)
	return out
}

func (s *HistoryStore) IsCooked(recipeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.cooked {
		if e.RecipeID == recipeID {
			return true
		}
	}
	return false
}
