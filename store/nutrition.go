package store

import (
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"culinamind-go-be/models"
)

// DefaultNutritionGoal is used until the user sets their own.
var DefaultNutritionGoal = models.NutritionGoal{
	Calories: 2200,
	Protein:  120,
	Sodium:   2300,
}

// NutritionStore owns the append-only meal log. Aggregates are computed on
// read, never stored denormalized.
type NutritionStore struct {
	mu      sync.Mutex
	db      *gorm.DB
	entries []models.NutritionEntry
	goal    models.NutritionGoal
}

func NewNutritionStore(db *gorm.DB) *NutritionStore {
	return &NutritionStore{db: db, goal: DefaultNutritionGoal}
}

// Load hydrates the log from the database.
func (s *NutritionStore) Load() error {
	if s.db == nil {
		return nil
	}
	var entries []models.NutritionEntry
	if err := s.db.Find(&entries).Error; err != nil {
		return err
	}
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

func (s *NutritionStore) AddEntry(e models.NutritionEntry) models.NutritionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.entries = append(s.entries, e)
	if s.db != nil {
		if err := s.db.Create(&e).Error; err != nil {
			log.Printf("nutrition: failed to persist %s: %v", e.ID, err)
		}
	}
	return e
}

// RemoveEntryByID deletes one entry by surrogate id. This is the preferred
// removal path.
func (s *NutritionStore) RemoveEntryByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.deleteWhere("id = ?", id)
}

// RemoveEntry is the legacy composite-key removal: it deletes every entry
// matching date+recipeName, so duplicate-named same-day entries go together.
func (s *NutritionStore) RemoveEntry(date, recipeName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !(e.Date == date && e.RecipeName == recipeName) {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.deleteWhere("date = ? AND recipe_name = ?", date, recipeName)
}

func (s *NutritionStore) ClearEntries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.deleteWhere("1 = 1")
}

// Entries returns a copy of the full log.
func (s *NutritionStore) Entries() []models.NutritionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.NutritionEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *NutritionStore) Goal() models.NutritionGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}

func (s *NutritionStore) SetGoal(goal models.NutritionGoal) {
	s.mu.Lock()
	s.goal = goal
	s.mu.Unlock()
}

// DailyTotals groups entries by date and sums the four core macros, sorted
// ascending by date.
func (s *NutritionStore) DailyTotals() []models.DailyTotal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dailyTotalsLocked(s.entries)
}

func dailyTotalsLocked(entries []models.NutritionEntry) []models.DailyTotal {
	byDate := make(map[string]*models.DailyTotal)
	for _, e := range entries {
		t, ok := byDate[e.Date]
		if !ok {
			t = &models.DailyTotal{Date: e.Date}
			byDate[e.Date] = t
		}
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
	}
	totals := make([]models.DailyTotal, 0, len(byDate))
	for _, t := range byDate {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals
}

// WeeklyAggregation summarizes all retained entries. Averages divide by the
// count of distinct days that have entries, so they are per active day, not
// per calendar day. Sodium alerts count distinct days whose summed sodium
// exceeds the daily goal.
func (s *NutritionStore) WeeklyAggregation() models.WeeklyAggregation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var agg models.WeeklyAggregation
	sodiumByDate := make(map[string]float64)
	days := make(map[string]struct{})
	for _, e := range s.entries {
		agg.TotalCalories += e.Calories
		agg.TotalProtein += e.Protein
		agg.TotalCarbs += e.Carbs
		agg.TotalFat += e.Fat
		agg.TotalFiber += e.Fiber
		agg.TotalSodium += e.Sodium
		sodiumByDate[e.Date] += e.Sodium
		days[e.Date] = struct{}{}
	}

	activeDays := len(days)
	if activeDays == 0 {
		return agg
	}

	agg.AvgDailyCalories = float64(agg.TotalCalories) / float64(activeDays)
	if s.goal.Protein > 0 {
		avgDailyProtein := agg.TotalProtein / float64(activeDays)
		agg.ProteinGoalPercent = avgDailyProtein / s.goal.Protein * 100
	}
	for _, sodium := range sodiumByDate {
		if sodium > s.goal.Sodium {
			agg.SodiumAlerts++
		}
	}
	return agg
}

func (s *NutritionStore) deleteWhere(cond string, args ...any) {
	if s.db == nil {
		return
	}
	if err := s.db.Where(cond, args...).Delete(&models.NutritionEntry{}).Error; err != nil {
		log.Printf("nutrition: failed to delete (%s): %v", cond, err)
	}
}
