package store_test

import (
	"testing"
	"time"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

var pantryNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func seedPantry(t *testing.T) *store.PantryStore {
	t.Helper()
	s := store.NewPantryStore(nil)
	s.Add(models.Ingredient{Name: "Tomatoes", Quantity: 6, Unit: "pieces", ExpiryDate: "2025-06-12"})
	s.Add(models.Ingredient{Name: "Rice", Quantity: 2, Unit: "kg", ExpiryDate: "2026-01-01", IsSurplus: true})
	s.Add(models.Ingredient{Name: "Milk", Quantity: 1, Unit: "liters", ExpiryDate: "2025-06-20"})
	return s
}

func TestPantryAddAssignsIDAndDate(t *testing.T) {
	t.Parallel()
	s := store.NewPantryStore(nil)
	ing := s.Add(models.Ingredient{Name: "Basil"})
	if ing.ID == "" {
		t.Error("expected generated id")
	}
	if ing.AddedAt == "" {
		t.Error("expected added_at default")
	}
}

func TestPantryAddAllowsDuplicateNames(t *testing.T) {
	t.Parallel()
	s := store.NewPantryStore(nil)
	a := s.Add(models.Ingredient{Name: "Eggs"})
	b := s.Add(models.Ingredient{Name: "Eggs"})
	if a.ID == b.ID {
		t.Fatal("duplicate lots must get distinct ids")
	}
	if len(s.All()) != 2 {
		t.Errorf("len = %d, want 2", len(s.All()))
	}
}

func TestPantryExpiringFilter(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	s.SetFilter(store.FilterExpiring)
	got := s.Filtered(pantryNow)
	if len(got) != 1 || got[0].Name != "Tomatoes" {
		t.Errorf("expiring view = %+v, want only Tomatoes", got)
	}
}

func TestPantryExpiringBoundaryInclusive(t *testing.T) {
	t.Parallel()
	s := store.NewPantryStore(nil)
	s.Add(models.Ingredient{Name: "Yogurt", ExpiryDate: "2025-06-13"}) // exactly now+3d
	s.SetFilter(store.FilterExpiring)
	if got := s.Filtered(pantryNow); len(got) != 1 {
		t.Errorf("boundary expiry should be included, got %+v", got)
	}
}

func TestPantrySurplusFilter(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	s.SetFilter(store.FilterSurplus)
	got := s.Filtered(pantryNow)
	if len(got) != 1 || got[0].Name != "Rice" {
		t.Errorf("surplus view = %+v, want only Rice", got)
	}
}

func TestPantrySearchAppliesBeforeFilter(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	s.SetFilter(store.FilterSurplus)
	s.SetSearchQuery("RIC")
	got := s.Filtered(pantryNow)
	if len(got) != 1 || got[0].Name != "Rice" {
		t.Errorf("got %+v", got)
	}

	s.SetSearchQuery("tomat")
	if got := s.Filtered(pantryNow); len(got) != 0 {
		t.Errorf("tomatoes are not surplus, got %+v", got)
	}
}

func TestPantryUpdatePartial(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	id := s.All()[0].ID
	qty := 3.0
	ing, ok := s.Update(id, models.IngredientUpdate{Quantity: &qty})
	if !ok {
		t.Fatal("update reported missing id")
	}
	if ing.Quantity != 3 || ing.Name != "Tomatoes" {
		t.Errorf("got %+v", ing)
	}
}

func TestPantryUpdateUnknownID(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	if _, ok := s.Update("nope", models.IngredientUpdate{}); ok {
		t.Error("update of unknown id must report false")
	}
}

func TestPantryRemoveUnknownIDIsNoop(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	before := len(s.All())
	s.Remove("nope")
	if len(s.All()) != before {
		t.Error("removing unknown id changed the inventory")
	}
}

func TestPantryClear(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	s.Clear()
	if len(s.All()) != 0 {
		t.Error("expected empty pantry")
	}
}

func TestPantryNames(t *testing.T) {
	t.Parallel()
	s := seedPantry(t)
	names := s.Names()
	if len(names) != 3 || names[0] != "Tomatoes" {
		t.Errorf("names = %v", names)
	}
}
