package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"culinamind-go-be/models"
)

// CookbookStore owns the cookbook collection and the latest recipe-match
// search state. Search results are ephemeral and replaced wholesale on each
// new search. A generation counter gates async completions: a late response
// from a superseded search is dropped instead of overwriting newer state.
type CookbookStore struct {
	mu         sync.Mutex
	db         *gorm.DB
	cookbooks  []models.Cookbook
	matches    []models.RecipeMatch
	searching  bool
	searchErr  string
	generation uint64
}

func NewCookbookStore(db *gorm.DB) *CookbookStore {
	return &CookbookStore{db: db}
}

// Load hydrates the collection from the database.
func (s *CookbookStore) Load() error {
	if s.db == nil {
		return nil
	}
	var cookbooks []models.Cookbook
	if err := s.db.Find(&cookbooks).Error; err != nil {
		return err
	}
	s.mu.Lock()
	s.cookbooks = cookbooks
	s.mu.Unlock()
	return nil
}

func (s *CookbookStore) Add(cb models.Cookbook) models.Cookbook {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cb.ID == "" {
		cb.ID = uuid.NewString()
	}
	if cb.AddedAt == "" {
		cb.AddedAt = time.Now().Format("2006-01-02")
	}
	s.cookbooks = append(s.cookbooks, cb)
	if s.db != nil {
		if err := s.db.Create(&cb).Error; err != nil {
			log.Printf("cookbook: failed to persist %s: %v", cb.ID, err)
		}
	}
	return cb
}

func (s *CookbookStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cookbooks[:0]
	for _, cb := range s.cookbooks {
		if cb.ID != id {
			kept = append(kept, cb)
		}
	}
	s.cookbooks = kept
	if s.db != nil {
		if err := s.db.Delete(&models.Cookbook{}, "id = ?", id).Error; err != nil {
			log.Printf("cookbook: failed to delete %s: %v", id, err)
		}
	}
}

func (s *CookbookStore) Update(id string, upd models.CookbookUpdate) (models.Cookbook, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cookbooks {
		if s.cookbooks[i].ID != id {
			continue
		}
		cb := &s.cookbooks[i]
		if upd.Title != nil {
			cb.Title = *upd.Title
		}
		if upd.Author != nil {
			cb.Author = *upd.Author
		}
		if upd.CoverColor != nil {
			cb.CoverColor = *upd.CoverColor
		}
		if upd.RecipeCount != nil {
			cb.RecipeCount = *upd.RecipeCount
		}
		if upd.Notes != nil {
			cb.Notes = *upd.Notes
		}
		if s.db != nil {
			if err := s.db.Save(cb).Error; err != nil {
				log.Printf("cookbook: failed to update %s: %v", id, err)
			}
		}
		return *cb, true
	}
	return models.Cookbook{}, false
}

// All returns a copy of the collection.
func (s *CookbookStore) All() []models.Cookbook {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Cookbook, len(s.cookbooks))
	copy(out, s.cookbooks)
	return out
}

// BeginSearch marks a search in flight, clears the previous error and
// returns the generation token the completion must present.
func (s *CookbookStore) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.searching = true
	s.searchErr = ""
	return s.generation
}

// CompleteSearch commits the results if gen is still current. Stale
// completions are dropped and reported as false.
func (s *CookbookStore) CompleteSearch(gen uint64, matches []models.RecipeMatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.matches = matches
	s.searching = false
	s.searchErr = ""
	return true
}

// FailSearch stores a user-facing error string if gen is still current.
func (s *CookbookStore) FailSearch(gen uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.matches = nil
	s.searching = false
	s.searchErr = msg
	return true
}

// Matches returns the last committed results with the search flags.
func (s *CookbookStore) Matches() (matches []models.RecipeMatch, searching bool, searchErr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches = make([]models.RecipeMatch, len(s.matches))
	copy(matches, s.matches)
	return matches, s.searching, s.searchErr
}

func (s *CookbookStore) ClearMatches() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = nil
	s.searchErr = ""
}
