package store

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"culinamind-go-be/models"
)

// Pantry filters.
const (
	FilterAll      = "All"
	FilterExpiring = "Expiring"
	FilterSurplus  = "Surplus"
)

// expiringWindowDays is how far ahead the Expiring filter looks.
const expiringWindowDays = 3

// PantryStore owns the ingredient inventory plus the active filter and
// search query. A nil db keeps the store memory-only.
type PantryStore struct {
	mu          sync.Mutex
	db          *gorm.DB
	ingredients []models.Ingredient
	filter      string
	searchQuery string
}

func NewPantryStore(db *gorm.DB) *PantryStore {
	return &PantryStore{db: db, filter: FilterAll}
}

// Load hydrates the inventory from the database.
func (s *PantryStore) Load() error {
	if s.db == nil {
		return nil
	}
	var ingredients []models.Ingredient
	if err := s.db.Find(&ingredients).Error; err != nil {
		return err
	}
	s.mu.Lock()
	s.ingredients = ingredients
	s.mu.Unlock()
	return nil
}

// Add appends a new lot. Same-named lots coexist; there is no dedup by name.
// Invalid quantities and dates are accepted as-is; validation is upstream.
func (s *PantryStore) Add(ing models.Ingredient) models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ing.ID == "" {
		ing.ID = uuid.NewString()
	}
	if ing.AddedAt == "" {
		ing.AddedAt = time.Now().Format("2006-01-02")
	}
	s.ingredients = append(s.ingredients, ing)
	if s.db != nil {
		if err := s.db.Create(&ing).Error; err != nil {
			log.Printf("pantry: failed to persist %s: %v", ing.ID, err)
		}
	}
	return ing
}

// Remove deletes one lot by id. Removing an unknown id is a no-op.
func (s *PantryStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.ingredients[:0]
	for _, ing := range s.ingredients {
		if ing.ID != id {
			kept = append(kept, ing)
		}
	}
	s.ingredients = kept
	if s.db != nil {
		if err := s.db.Delete(&models.Ingredient{}, "id = ?", id).Error; err != nil {
			log.Printf("pantry: failed to delete %s: %v", id, err)
		}
	}
}

// Update applies a partial in-place edit and reports whether the id existed.
func (s *PantryStore) Update(id string, upd models.IngredientUpdate) (models.Ingredient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ingredients {
		if s.ingredients[i].ID != id {
			continue
		}
		ing := &s.ingredients[i]
		if upd.Name != nil {
			ing.Name = *upd.Name
		}
		if upd.Quantity != nil {
			ing.Quantity = *upd.Quantity
		}
		if upd.Unit != nil {
			ing.Unit = *upd.Unit
		}
		if upd.Category != nil {
			ing.Category = *upd.Category
		}
		if upd.ExpiryDate != nil {
			ing.ExpiryDate = *upd.ExpiryDate
		}
		if upd.IsSurplus != nil {
			ing.IsSurplus = *upd.IsSurplus
		}
		if s.db != nil {
			if err := s.db.Save(ing).Error; err != nil {
				log.Printf("pantry: failed to update %s: %v", id, err)
			}
		}
		return *ing, true
	}
	return models.Ingredient{}, false
}

// Clear empties the pantry.
func (s *PantryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingredients = nil
	if s.db != nil {
		if err := s.db.Where("1 = 1").Delete(&models.Ingredient{}).Error; err != nil {
			log.Printf("pantry: failed to clear: %v", err)
		}
	}
}

func (s *PantryStore) SetFilter(filter string) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
}

func (s *PantryStore) SetSearchQuery(query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()
}

func (s *PantryStore) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// All returns a copy of the full inventory.
func (s *PantryStore) All() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ingredient, len(s.ingredients))
	copy(out, s.ingredients)
	return out
}

// Filtered recomputes the derived view: the search substring match applies
// first (case-insensitive), then the active filter predicate. Expiring means
// expiry on or before now+3 days; dates compare lexicographically.
func (s *PantryStore) Filtered(now time.Time) []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Ingredient, 0, len(s.ingredients))
	query := strings.ToLower(s.searchQuery)
	for _, ing := range s.ingredients {
		if query != "" && !strings.Contains(strings.ToLower(ing.Name), query) {
			continue
		}
		filtered = append(filtered, ing)
	}

	switch s.filter {
	case FilterExpiring:
		cutoff := now.AddDate(0, 0, expiringWindowDays).Format("2006-01-02")
		kept := filtered[:0]
		for _, ing := range filtered {
			if ing.ExpiryDate <= cutoff {
				kept = append(kept, ing)
			}
		}
		filtered = kept
	case FilterSurplus:
		kept := filtered[:0]
		for _, ing := range filtered {
			if ing.IsSurplus {
				kept = append(kept, ing)
			}
		}
		filtered = kept
	}

	return filtered
}

// Names lists the ingredient names of the full inventory, for AI prompts.
func (s *PantryStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.ingredients))
	for _, ing := range s.ingredients {
		names = append(names, ing.Name)
	}
	return names
}
