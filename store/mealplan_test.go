package store_test

import (
	"testing"
	"time"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

func TestMealPlanMondayAnchor(t *testing.T) {
	t.Parallel()
	// 2025-06-12 is a Thursday; the week must anchor on 2025-06-09.
	thursday := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	s := store.NewMealPlanStore(thursday)
	week := s.WeekPlan()
	if len(week) != 7 {
		t.Fatalf("days = %d", len(week))
	}
	if week[0].Day != "Mon" || week[0].Date != "2025-06-09" {
		t.Errorf("first day = %+v", week[0])
	}
	if week[6].Day != "Sun" || week[6].Date != "2025-06-15" {
		t.Errorf("last day = %+v", week[6])
	}
}

func TestMealPlanSundayBelongsToSameWeek(t *testing.T) {
	t.Parallel()
	sunday := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	s := store.NewMealPlanStore(sunday)
	if got := s.WeekPlan()[0].Date; got != "2025-06-09" {
		t.Errorf("monday = %s, want 2025-06-09", got)
	}
}

func TestMealPlanAddRemoveMeal(t *testing.T) {
	t.Parallel()
	s := store.NewMealPlanStore(time.Now())
	meal, ok := s.AddMeal("Wed", models.Meal{Name: "Chili", MealType: "dinner"})
	if !ok || meal.ID == "" {
		t.Fatalf("meal=%+v ok=%v", meal, ok)
	}
	if _, ok := s.AddMeal("Funday", models.Meal{Name: "X"}); ok {
		t.Error("unknown day accepted")
	}

	s.RemoveMeal("Wed", meal.ID)
	for _, d := range s.WeekPlan() {
		if len(d.Meals) != 0 {
			t.Errorf("day %s still has meals", d.Day)
		}
	}
}

func TestMealPlanClearDayAndAll(t *testing.T) {
	t.Parallel()
	s := store.NewMealPlanStore(time.Now())
	s.AddMeal("Mon", models.Meal{Name: "Oats"})
	s.AddMeal("Tue", models.Meal{Name: "Soup"})
	s.ClearDay("Mon")
	week := s.WeekPlan()
	if len(week[0].Meals) != 0 || len(week[1].Meals) != 1 {
		t.Errorf("clear day wrong: %+v", week[:2])
	}
	s.ClearAll(time.Now())
	for _, d := range s.WeekPlan() {
		if len(d.Meals) != 0 {
			t.Errorf("day %s survived ClearAll", d.Day)
		}
	}
}

func TestMealPlanSelectedDiet(t *testing.T) {
	t.Parallel()
	s := store.NewMealPlanStore(time.Now())
	if s.SelectedDiet() != "All" {
		t.Errorf("default diet = %q", s.SelectedDiet())
	}
	s.SetSelectedDiet("Vegan")
	if s.SelectedDiet() != "Vegan" {
		t.Errorf("diet = %q", s.SelectedDiet())
	}
}
