package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"culinamind-go-be/models"
)

var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MealPlanStore owns the Monday-anchored plan for the current week.
type MealPlanStore struct {
	mu           sync.Mutex
	weekPlan     []models.DayPlan
	selectedDiet string
}

func NewMealPlanStore(now time.Time) *MealPlanStore {
	return &MealPlanStore{
		weekPlan:     generateWeekPlan(now),
		selectedDiet: "All",
	}
}

func generateWeekPlan(now time.Time) []models.DayPlan {
	// Back up to the Monday of the current week.
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	plan := make([]models.DayPlan, len(weekDays))
	for i, day := range weekDays {
		plan[i] = models.DayPlan{
			Day:   day,
			Date:  monday.AddDate(0, 0, i).Format("2006-01-02"),
			Meals: []models.Meal{},
		}
	}
	return plan
}

func (s *MealPlanStore) SetSelectedDiet(diet string) {
	s.mu.Lock()
	s.selectedDiet = diet
	s.mu.Unlock()
}

func (s *MealPlanStore) SelectedDiet() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDiet
}

// WeekPlan returns a copy of the plan.
func (s *MealPlanStore) WeekPlan() []models.DayPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DayPlan, len(s.weekPlan))
	for i, d := range s.weekPlan {
		meals := make([]models.Meal, len(d.Meals))
		copy(meals, d.Meals)
		d.Meals = meals
		out[i] = d
	}
	return out
}

// AddMeal appends a meal to the named day and reports whether the day exists.
func (s *MealPlanStore) AddMeal(day string, meal models.Meal) (models.Meal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.weekPlan {
		if s.weekPlan[i].Day == day {
			if meal.ID == "" {
				meal.ID = uuid.NewString()
			}
			s.weekPlan[i].Meals = append(s.weekPlan[i].Meals, meal)
			return meal, true
		}
	}
	return models.Meal{}, false
}

func (s *MealPlanStore) RemoveMeal(day, mealID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.weekPlan {
		if s.weekPlan[i].Day != day {
			continue
		}
		kept := s.weekPlan[i].Meals[:0]
		for _, m := range s.weekPlan[i].Meals {
			if m.ID != mealID {
				kept = append(kept, m)
			}
		}
		s.weekPlan[i].Meals = kept
	}
}

func (s *MealPlanStore) ClearDay(day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.weekPlan {
		if s.weekPlan[i].Day == day {
			s.weekPlan[i].Meals = []models.Meal{}
		}
	}
}

// ClearAll regenerates an empty week anchored at now.
func (s *MealPlanStore) ClearAll(now time.Time) {
	s.mu.Lock()
	s.weekPlan = generateWeekPlan(now)
	s.mu.Unlock()
}
