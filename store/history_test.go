package store_test

import (
	"fmt"
	"testing"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

func TestHistorySearchNewestFirstAndCapped(t *testing.T) {
	t.Parallel()
	s := store.NewHistoryStore()
	for i := 0; i < 55; i++ {
		s.AddSearchEntry(fmt.Sprintf("query %d", i), "All", nil)
	}
	searches := s.Searches()
	if len(searches) != 50 {
		t.Fatalf("len = %d, want 50", len(searches))
	}
	if searches[0].Query != "query 54" {
		t.Errorf("newest first violated: %q", searches[0].Query)
	}
	if searches[49].Query != "query 5" {
		t.Errorf("oldest retained = %q, want query 5", searches[49].Query)
	}
}

func TestHistoryRecipeImageSlot(t *testing.T) {
	t.Parallel()
	s := store.NewHistoryStore()
	entry := s.AddSearchEntry("thai curry", "Thai", []models.HistoryRecipe{
		{ID: "r1", Title: "Green Curry"},
	})

	s.SetRecipeImageLoading(entry.ID, "r1", true)
	if got := s.Searches()[0].Recipes[0]; !got.ImageLoading {
		t.Errorf("recipe = %+v", got)
	}

	s.UpdateRecipeImage(entry.ID, "r1", "data:image/png;base64,AAA")
	got := s.Searches()[0].Recipes[0]
	if got.ImageDataURI == "" || got.ImageLoading {
		t.Errorf("recipe = %+v", got)
	}
}

func TestHistoryRemoveAndClearSearches(t *testing.T) {
	t.Parallel()
	s := store.NewHistoryStore()
	a := s.AddSearchEntry("one", "", nil)
	s.AddSearchEntry("two", "", nil)
	s.RemoveSearchEntry(a.ID)
	if searches := s.Searches(); len(searches) != 1 || searches[0].Query != "two" {
		t.Errorf("searches = %+v", searches)
	}
	s.ClearSearchHistory()
	if len(s.Searches()) != 0 {
		t.Error("expected empty history")
	}
}

func TestHistoryCookedLog(t *testing.T) {
	t.Parallel()
	s := store.NewHistoryStore()
	entry := s.MarkAsCooked("r1", "Green Curry", "Thai", "")
	if entry.ID == "" || entry.CookedAt == 0 {
		t.Errorf("entry = %+v", entry)
	}
	if !s.IsCooked("r1") || s.IsCooked("r2") {
		t.Error("IsCooked lookup wrong")
	}
	s.RemoveCooked(entry.ID)
	if s.IsCooked("r1") {
		t.Error("removed entry still reported cooked")
	}
	s.MarkAsCooked("r3", "Pad Thai", "Thai", "")
	s.ClearCookedItems()
	if len(s.CookedItems()) != 0 {
		t.Error("expected empty cooked log")
	}
}
