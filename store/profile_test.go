package store_test

import (
	"testing"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

func TestProfileDefaults(t *testing.T) {
	t.Parallel()
	s := store.NewProfileStore(nil)
	p := s.Profile()
	if p.Name != "Chef" || p.DailyCalorieTarget != 2200 {
		t.Errorf("defaults = %+v", p)
	}
	if p.Allergies == nil || len(p.Allergies) != 0 {
		t.Errorf("allergies should start empty, got %v", p.Allergies)
	}
}

func TestProfilePartialUpdate(t *testing.T) {
	t.Parallel()
	s := store.NewProfileStore(nil)
	name := "Sam"
	target := 1800
	p := s.Update(models.ProfileUpdate{Name: &name, DailyCalorieTarget: &target})
	if p.Name != "Sam" || p.DailyCalorieTarget != 1800 {
		t.Errorf("updated = %+v", p)
	}
	// Untouched fields keep their values.
	if p.DietPreference != "No Preference" || p.Age != 28 {
		t.Errorf("untouched fields changed: %+v", p)
	}
}

func TestProfileAllergyDedupExactMatch(t *testing.T) {
	t.Parallel()
	s := store.NewProfileStore(nil)
	s.AddAllergy("Peanuts")
	s.AddAllergy("Peanuts")
	if got := s.Profile().Allergies; len(got) != 1 {
		t.Errorf("allergies = %v", got)
	}
	// Dedup is case-sensitive exact match.
	s.AddAllergy("peanuts")
	if got := s.Profile().Allergies; len(got) != 2 {
		t.Errorf("allergies = %v", got)
	}
}

func TestProfileRemoveAbsentAllergyIsNoop(t *testing.T) {
	t.Parallel()
	s := store.NewProfileStore(nil)
	s.AddAllergy("Shellfish")
	s.RemoveAllergy("Gluten")
	if got := s.Profile().Allergies; len(got) != 1 || got[0] != "Shellfish" {
		t.Errorf("allergies = %v", got)
	}
	s.RemoveAllergy("Shellfish")
	if got := s.Profile().Allergies; len(got) != 0 {
		t.Errorf("allergies = %v", got)
	}
}

func TestProfileReset(t *testing.T) {
	t.Parallel()
	s := store.NewProfileStore(nil)
	name := "Sam"
	s.Update(models.ProfileUpdate{Name: &name})
	s.AddAllergy("Dairy")
	p := s.Reset()
	if p.Name != "Chef" || len(p.Allergies) != 0 {
		t.Errorf("reset = %+v", p)
	}
}
