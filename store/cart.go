package store

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"culinamind-go-be/models"
)

// CartStore owns the checkout-bound line items, grouped by originating
// recipe. All items sharing a recipe id form one atomic add/remove unit.
type CartStore struct {
	mu    sync.Mutex
	db    *gorm.DB
	items []models.CartItem
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// Load hydrates the cart from the database.
func (s *CartStore) Load() error {
	if s.db == nil {
		return nil
	}
	var items []models.CartItem
	if err := s.db.Find(&items).Error; err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// AddItemsForRecipe replaces any existing items for the recipe with the new
// batch, so re-importing the same recipe never duplicates lines.
func (s *CartStore) AddItemsForRecipe(recipeID, recipeName string, items []models.CartItem) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.RecipeID != recipeID {
			kept = append(kept, item)
		}
	}
	s.items = kept

	added := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		item.ID = uuid.NewString()
		item.RecipeID = recipeID
		item.RecipeName = recipeName
		item.IsChecked = false
		s.items = append(s.items, item)
		added = append(added, item)
	}

	if s.db != nil {
		if err := s.db.Delete(&models.CartItem{}, "recipe_id = ?", recipeID).Error; err != nil {
			log.Printf("cart: failed to clear recipe %s: %v", recipeID, err)
		}
		if len(added) > 0 {
			if err := s.db.CreateInBatches(added, 100).Error; err != nil {
				log.Printf("cart: failed to persist batch for %s: %v", recipeID, err)
			}
		}
	}
	return added
}

func (s *CartStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.deleteWhere("id = ?", id)
}

// ToggleItem flips the checked flag and reports whether the id existed.
func (s *CartStore) ToggleItem(id string) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsChecked = !s.items[i].IsChecked
			if s.db != nil {
				if err := s.db.Save(&s.items[i]).Error; err != nil {
					log.Printf("cart: failed to toggle %s: %v", id, err)
				}
			}
			return s.items[i], true
		}
	}
	return models.CartItem{}, false
}

// RemoveRecipeItems deletes the whole batch for a recipe.
func (s *CartStore) RemoveRecipeItems(recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.RecipeID != recipeID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.deleteWhere("recipe_id = ?", recipeID)
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.deleteWhere("1 = 1")
}

// ClearChecked deletes every checked item.
func (s *CartStore) ClearChecked() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if !item.IsChecked {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.deleteWhere("is_checked = ?", true)
}

// GroupedByRecipe returns one group per distinct recipe id, preserving the
// order recipes first appear in the cart, with per-group summed cost.
func (s *CartStore) GroupedByRecipe() []models.CartRecipeGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := make(map[string]int)
	groups := make([]models.CartRecipeGroup, 0)
	for _, item := range s.items {
		i, ok := index[item.RecipeID]
		if !ok {
			i = len(groups)
			index[item.RecipeID] = i
			groups = append(groups, models.CartRecipeGroup{
				RecipeID:   item.RecipeID,
				RecipeName: item.RecipeName,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].TotalEstimatedCost += item.EstimatedPrice
	}
	return groups
}

// GroupedByCategory returns a flat category view of the cart.
func (s *CartStore) GroupedByCategory() map[string][]models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := make(map[string][]models.CartItem)
	for _, item := range s.items {
		cat := item.Category
		if cat == "" {
			cat = "Other"
		}
		groups[cat] = append(groups[cat], item)
	}
	return groups
}

// TotalCost sums estimated prices across all items, checked or not.
func (s *CartStore) TotalCost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.EstimatedPrice
	}
	return total
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *CartStore) CheckedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.items {
		if item.IsChecked {
			n++
		}
	}
	return n
}

// deleteWhere is a best-effort write-through delete; callers hold the lock.
func (s *CartStore) deleteWhere(cond string, args ...any) {
	if s.db == nil {
		return
	}
	if err := s.db.Where(cond, args...).Delete(&models.CartItem{}).Error; err != nil {
		log.Printf("cart: failed to delete (%s): %v", cond, err)
	}
}
