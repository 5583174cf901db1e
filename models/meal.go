package models

// Meal is one planned meal in the weekly plan.
type Meal struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MealType     string   `json:"meal_type"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
	Servings     int      `json:"servings"`
	Calories     int      `json:"calories"`
	DietaryTags  []string `json:"dietary_tags"`
}

// DayPlan holds the meals planned for one day of the current week.
type DayPlan struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Meals []Meal `json:"meals"`
}
