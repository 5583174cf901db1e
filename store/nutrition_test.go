package store_test

import (
	"testing"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

func TestNutritionWeeklyAveragesPerActiveDay(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	s.AddEntry(models.NutritionEntry{Date: "2025-06-09", RecipeName: "Oats", Calories: 1000, Protein: 60})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Curry", Calories: 2000, Protein: 120})

	agg := s.WeeklyAggregation()
	if agg.TotalCalories != 3000 {
		t.Errorf("total calories = %d", agg.TotalCalories)
	}
	// Two active days, not seven calendar days.
	if agg.AvgDailyCalories != 1500 {
		t.Errorf("avg daily calories = %v, want 1500", agg.AvgDailyCalories)
	}
	// Avg daily protein 90g against the default 120g goal.
	if agg.ProteinGoalPercent != 75 {
		t.Errorf("protein goal percent = %v, want 75", agg.ProteinGoalPercent)
	}
}

func TestNutritionProteinPercentUnclamped(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	s.SetGoal(models.NutritionGoal{Calories: 2200, Protein: 50, Sodium: 2300})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Steak", Protein: 100})
	if got := s.WeeklyAggregation().ProteinGoalPercent; got != 200 {
		t.Errorf("percent = %v, want 200 (unclamped)", got)
	}
}

func TestNutritionSodiumAlertsCountDays(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	// Two entries same day summing over the 2300mg goal counts once.
	s.AddEntry(models.NutritionEntry{Date: "2025-06-09", RecipeName: "Ramen", Sodium: 1500})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-09", RecipeName: "Pickles", Sodium: 1000})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Salad", Sodium: 300})
	if got := s.WeeklyAggregation().SodiumAlerts; got != 1 {
		t.Errorf("sodium alerts = %d, want 1", got)
	}
}

func TestNutritionEmptyAggregationIsZero(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	agg := s.WeeklyAggregation()
	if agg.AvgDailyCalories != 0 || agg.ProteinGoalPercent != 0 || agg.SodiumAlerts != 0 {
		t.Errorf("empty aggregation not zero: %+v", agg)
	}
}

func TestNutritionRemoveEntryByID(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	a := s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Snack", Calories: 200})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Snack", Calories: 200})
	s.RemoveEntryByID(a.ID)
	if n := len(s.Entries()); n != 1 {
		t.Errorf("entries = %d, want 1 (only the targeted duplicate removed)", n)
	}
}

func TestNutritionRemoveEntryCompositeRemovesAllMatches(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Snack", Calories: 200})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Snack", Calories: 200})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-11", RecipeName: "Snack", Calories: 200})
	s.RemoveEntry("2025-06-10", "Snack")
	entries := s.Entries()
	if len(entries) != 1 || entries[0].Date != "2025-06-11" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestNutritionDailyTotalsSorted(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	s.AddEntry(models.NutritionEntry{Date: "2025-06-11", RecipeName: "B", Calories: 500})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-09", RecipeName: "A", Calories: 300, Protein: 20})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-09", RecipeName: "C", Calories: 700})

	totals := s.DailyTotals()
	if len(totals) != 2 {
		t.Fatalf("totals = %+v", totals)
	}
	if totals[0].Date != "2025-06-09" || totals[0].Calories != 1000 || totals[0].Protein != 20 {
		t.Errorf("first day = %+v", totals[0])
	}
	if totals[1].Date != "2025-06-11" || totals[1].Calories != 500 {
		t.Errorf("second day = %+v", totals[1])
	}
}

func TestNutritionZeroProteinGoalNoDivide(t *testing.T) {
	t.Parallel()
	s := store.NewNutritionStore(nil)
	s.SetGoal(models.NutritionGoal{})
	s.AddEntry(models.NutritionEntry{Date: "2025-06-10", RecipeName: "Eggs", Protein: 30})
	if got := s.WeeklyAggregation().ProteinGoalPercent; got != 0 {
		t.Errorf("percent with zero goal = %v, want 0", got)
	}
}
