package models

// NutritionEntry is one logged meal. The log is append-only; aggregates are
// computed on read. Entries carry a surrogate id so duplicate-named meals on
// the same day can be targeted individually.
type NutritionEntry struct {
	ID         string  `gorm:"primaryKey" json:"id"`
	Date       string  `gorm:"index" json:"date"`
	RecipeName string  `json:"recipe_name"`
	Calories   int     `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	Sodium     float64 `json:"sodium"`
}

// NutritionGoal is the daily target set. Sodium is a daily maximum in mg.
type NutritionGoal struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Sodium   float64 `json:"sodium"`
}

// DailyTotal is the per-date sum of the core macros.
type DailyTotal struct {
	Date     string  `json:"date"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// WeeklyAggregation summarizes the retained entries. Averages divide by the
// number of distinct days that have entries, not by calendar days, and the
// protein goal percent is returned unclamped; display clamping is the
// consumer's job.
type WeeklyAggregation struct {
	TotalCalories      int     `json:"total_calories"`
	AvgDailyCalories   float64 `json:"avg_daily_calories"`
	ProteinGoalPercent float64 `json:"protein_goal_percent"`
	SodiumAlerts       int     `json:"sodium_alerts"`
	TotalProtein       float64 `json:"total_protein"`
	TotalCarbs         float64 `json:"total_carbs"`
	TotalFat           float64 `json:"total_fat"`
	TotalFiber         float64 `json:"total_fiber"`
	TotalSodium        float64 `json:"total_sodium"`
}

// NutritionInsight is the AI analysis of recent meals.
type NutritionInsight struct {
	Summary        string             `json:"summary"`
	Tips           []string           `json:"tips"`
	Warnings       []string           `json:"warnings"`
	DailyScore     int                `json:"daily_score"`
	MacroBreakdown InsightMacros      `json:"macro_breakdown"`
	Recommendations []string          `json:"recommendations"`
}

type InsightMacros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}
