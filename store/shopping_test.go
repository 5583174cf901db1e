package store_test

import (
	"testing"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

func TestShoppingTotalEstimateUncheckedOnly(t *testing.T) {
	t.Parallel()
	s := store.NewShoppingStore(nil)
	milk := s.AddItem(models.ShoppingItem{Name: "Milk", Category: "Dairy", EstimatedPrice: 2})
	s.AddItem(models.ShoppingItem{Name: "Bread", Category: "Bakery", EstimatedPrice: 3})

	if got := s.TotalEstimate(); got != 5 {
		t.Errorf("total = %v, want 5", got)
	}
	s.ToggleItem(milk.ID)
	if got := s.TotalEstimate(); got != 3 {
		t.Errorf("total after check = %v, want 3 (checked items drop out)", got)
	}
}

func TestShoppingClearChecked(t *testing.T) {
	t.Parallel()
	s := store.NewShoppingStore(nil)
	a := s.AddItem(models.ShoppingItem{Name: "Milk"})
	s.AddItem(models.ShoppingItem{Name: "Bread"})
	s.ToggleItem(a.ID)
	s.ClearChecked()
	items := s.All()
	if len(items) != 1 || items[0].Name != "Bread" {
		t.Errorf("items = %+v", items)
	}
}

func TestShoppingGroupedByCategory(t *testing.T) {
	t.Parallel()
	s := store.NewShoppingStore(nil)
	s.AddItem(models.ShoppingItem{Name: "Milk", Category: "Dairy"})
	s.AddItem(models.ShoppingItem{Name: "Cheese", Category: "Dairy"})
	s.AddItem(models.ShoppingItem{Name: "Apples", Category: "Produce"})
	groups := s.GroupedByCategory()
	if len(groups["Dairy"]) != 2 || len(groups["Produce"]) != 1 {
		t.Errorf("groups = %+v", groups)
	}
}

func TestShoppingRemoveAndClearAll(t *testing.T) {
	t.Parallel()
	s := store.NewShoppingStore(nil)
	a := s.AddItem(models.ShoppingItem{Name: "Milk"})
	s.AddItem(models.ShoppingItem{Name: "Bread"})
	s.RemoveItem(a.ID)
	if len(s.All()) != 1 {
		t.Errorf("items = %+v", s.All())
	}
	s.ClearAll()
	if len(s.All()) != 0 {
		t.Error("expected empty list")
	}
}
