package models

// Diet preferences the profile can carry.
var DietPreferences = []string{
	"No Preference", "Vegetarian", "Vegan", "Keto", "Paleo",
	"Mediterranean", "Low-Carb", "High-Protein", "Gluten-Free",
}

// Fitness goals the profile can carry.
var FitnessGoals = []string{
	"Lose Weight", "Build Muscle", "Maintain Weight",
	"Improve Health", "Athletic Performance",
}

// EcoImpactStats tracks the user's waste-reduction footprint.
type EcoImpactStats struct {
	FoodSavedKg   float64 `json:"food_saved_kg"`
	CO2ReducedKg  float64 `json:"co2_reduced_kg"`
	WaterSavedL   float64 `json:"water_saved_l"`
	MealsShared   int     `json:"meals_shared"`
}

// UserProfile is the single preference record for the device user.
// Allergies are free-text, deduplicated by case-sensitive exact match.
type UserProfile struct {
	ID                   string         `gorm:"primaryKey" json:"id"`
	Name                 string         `json:"name"`
	Weight               float64        `json:"weight"`
	Height               float64        `json:"height"`
	Age                  int            `json:"age"`
	DietPreference       string         `json:"diet_preference"`
	FitnessGoal          string         `json:"fitness_goal"`
	DailyCalorieTarget   int            `json:"daily_calorie_target"`
	Allergies            []string       `gorm:"serializer:json" json:"allergies"`
	HouseholdSize        int            `json:"household_size"`
	NotificationsEnabled bool           `json:"notifications_enabled"`
	Onboarded            bool           `json:"onboarded"`
	EcoImpact            EcoImpactStats `gorm:"embedded;embeddedPrefix:eco_" json:"eco_impact"`
}

// ProfileUpdate carries a partial edit. Nil fields are untouched.
type ProfileUpdate struct {
	Name                 *string  `json:"name"`
	Weight               *float64 `json:"weight"`
	Height               *float64 `json:"height"`
	Age                  *int     `json:"age"`
	DietPreference       *string  `json:"diet_preference"`
	FitnessGoal          *string  `json:"fitness_goal"`
	DailyCalorieTarget   *int     `json:"daily_calorie_target"`
	HouseholdSize        *int     `json:"household_size"`
	NotificationsEnabled *bool    `json:"notifications_enabled"`
	Onboarded            *bool    `json:"onboarded"`
}
