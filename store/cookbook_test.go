package store_test

import (
	"testing"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

func TestCookbookCRUD(t *testing.T) {
	t.Parallel()
	s := store.NewCookbookStore(nil)
	cb := s.Add(models.Cookbook{Title: "Salt Fat Acid Heat", Author: "Samin Nosrat"})
	if cb.ID == "" || cb.AddedAt == "" {
		t.Errorf("missing defaults: %+v", cb)
	}

	notes := "birthday gift"
	updated, ok := s.Update(cb.ID, models.CookbookUpdate{Notes: &notes})
	if !ok || updated.Notes != notes || updated.Title != "Salt Fat Acid Heat" {
		t.Errorf("update: %+v ok=%v", updated, ok)
	}

	s.Remove(cb.ID)
	if len(s.All()) != 0 {
		t.Error("expected empty collection")
	}
}

func TestCookbookSearchGenerationGating(t *testing.T) {
	t.Parallel()
	s := store.NewCookbookStore(nil)

	gen1 := s.BeginSearch()
	gen2 := s.BeginSearch()

	// The older search finishing late must be dropped.
	if s.CompleteSearch(gen1, []models.RecipeMatch{{Title: "Stale"}}) {
		t.Fatal("stale completion was committed")
	}
	matches, searching, _ := s.Matches()
	if len(matches) != 0 || !searching {
		t.Errorf("stale completion leaked: matches=%v searching=%v", matches, searching)
	}

	if !s.CompleteSearch(gen2, []models.RecipeMatch{{Title: "Fresh"}}) {
		t.Fatal("current completion was rejected")
	}
	matches, searching, searchErr := s.Matches()
	if len(matches) != 1 || matches[0].Title != "Fresh" || searching || searchErr != "" {
		t.Errorf("matches=%v searching=%v err=%q", matches, searching, searchErr)
	}
}

func TestCookbookFailSearchStaleDropped(t *testing.T) {
	t.Parallel()
	s := store.NewCookbookStore(nil)
	gen1 := s.BeginSearch()
	gen2 := s.BeginSearch()
	if !s.CompleteSearch(gen2, []models.RecipeMatch{{Title: "Kept"}}) {
		t.Fatal("current completion rejected")
	}
	if s.FailSearch(gen1, "boom") {
		t.Fatal("stale failure was committed")
	}
	matches, _, searchErr := s.Matches()
	if len(matches) != 1 || searchErr != "" {
		t.Errorf("stale failure clobbered results: matches=%v err=%q", matches, searchErr)
	}
}

func TestCookbookFailSearchStoresError(t *testing.T) {
	t.Parallel()
	s := store.NewCookbookStore(nil)
	gen := s.BeginSearch()
	if !s.FailSearch(gen, "provider down") {
		t.Fatal("current failure rejected")
	}
	matches, searching, searchErr := s.Matches()
	if len(matches) != 0 || searching || searchErr != "provider down" {
		t.Errorf("matches=%v searching=%v err=%q", matches, searching, searchErr)
	}

	// The next search clears the error.
	s.BeginSearch()
	if _, _, err := s.Matches(); err != "" {
		t.Errorf("BeginSearch kept stale error %q", err)
	}
}

func TestCookbookClearMatches(t *testing.T) {
	t.Parallel()
	s := store.NewCookbookStore(nil)
	gen := s.BeginSearch()
	s.CompleteSearch(gen, []models.RecipeMatch{{Title: "X"}})
	s.ClearMatches()
	if matches, _, _ := s.Matches(); len(matches) != 0 {
		t.Errorf("matches = %v", matches)
	}
}
