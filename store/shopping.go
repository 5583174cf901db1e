package store

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"culinamind-go-be/models"
)

// ShoppingStore owns the flat, categorized shopping list. It is independent
// of the cart: list items are session-scoped, cart items are the durable
// recipe-grouped aggregate.
type ShoppingStore struct {
	mu    sync.Mutex
	db    *gorm.DB
	items []models.ShoppingItem
}

func NewShoppingStore(db *gorm.DB) *ShoppingStore {
	return &ShoppingStore{db: db}
}

// Load hydrates the list from the database.
func (s *ShoppingStore) Load() error {
	if s.db == nil {
		return nil
	}
	var items []models.ShoppingItem
	if err := s.db.Find(&items).Error; err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *ShoppingStore) AddItem(item models.ShoppingItem) models.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.items = append(s.items, item)
	if s.db != nil {
		if err := s.db.Create(&item).Error; err != nil {
			log.Printf("shopping: failed to persist %s: %v", item.ID, err)
		}
	}
	return item
}

func (s *ShoppingStore) RemoveItem(id string) {
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

func (s *ShoppingStore) ToggleItem(id string) (models.ShoppingItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsChecked = !s.items[i].IsChecked
			if s.db != nil {
				if err := s.db.Save(&s.items[i]).Error; err != nil {
					log.Printf("shopping: failed to toggle %s: %v", id, err)
				}
			}
			return s.items[i], true
		}
	}
	return models.ShoppingItem{}, false
}

func (s *ShoppingStore) ClearChecked() {
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

func (s *ShoppingStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.deleteWhere("1 = 1")
}

// All returns a copy of the list.
func (s *ShoppingStore) All() []models.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

// GroupedByCategory returns the per-category view.
func (s *ShoppingStore) GroupedByCategory() map[string][]models.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := make(map[string][]models.ShoppingItem)
	for _, item := range s.items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// TotalEstimate sums estimated prices of the unchecked items only: checked
// items are already in the basket and drop out of the remaining-cost figure.
func (s *ShoppingStore) TotalEstimate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		if !item.IsChecked {
			total += item.EstimatedPrice
		}
	}
	return total
}

func (s *ShoppingStore) deleteWhere(cond string, args ...any) {
	if s.db == nil {
		return
	}
	if err := s.db.Where(cond, args...).Delete(&models.ShoppingItem{}).Error; err != nil {
		log.Printf("shopping: failed to delete (%s): %v", cond, err)
	}
}
