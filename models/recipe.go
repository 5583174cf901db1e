package models

import "time"

// Grocery categories used by the AI extraction contract.
var GroceryCategories = []string{
	"Produce", "Meat & Seafood", "Dairy & Eggs", "Bakery", "Pantry Staples",
	"Spices & Seasonings", "Frozen", "Beverages", "Other",
}

// GroceryItem is one line of an extraction-scoped grocery list.
type GroceryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Category  string `json:"category"`
	IsChecked bool   `json:"is_checked"`
	Notes     string `json:"notes,omitempty"`
}

// ExtractedRecipe is the structured result of an AI extraction from a URL.
// Immutable once created; re-extraction creates a new one.
type ExtractedRecipe struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	SourceURL     string        `json:"source_url"`
	SourceTitle   string        `json:"source_title,omitempty"`
	Description   string        `json:"description"`
	Servings      int           `json:"servings,omitempty"`
	PrepTime      string        `json:"prep_time,omitempty"`
	CookTime      string        `json:"cook_time,omitempty"`
	TotalTime     string        `json:"total_time,omitempty"`
	Cuisine       string        `json:"cuisine,omitempty"`
	Ingredients   []GroceryItem `json:"ingredients"`
	Instructions  []string      `json:"instructions"`
	Tips          []string      `json:"tips,omitempty"`
	ExtractedAt   time.Time     `json:"extracted_at"`
}

// VideoExtractionResult bundles a single-URL extraction.
type VideoExtractionResult struct {
	Recipe             ExtractedRecipe `json:"recipe"`
	GroceryList        []GroceryItem   `json:"grocery_list"`
	TotalEstimatedCost string          `json:"total_estimated_cost,omitempty"`
}

// CombinedExtractionResult bundles a multi-URL combine: recipe summaries plus
// one deduplicated grocery list annotated with which recipes use each item.
type CombinedExtractionResult struct {
	Recipes            []ExtractedRecipe `json:"recipes"`
	CombinedList       []GroceryItem     `json:"combined_list"`
	TotalEstimatedCost string            `json:"total_estimated_cost"`
}

// AIRecipeSuggestion is a full generated recipe returned by query search.
type AIRecipeSuggestion struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Cuisine           string                  `json:"cuisine"`
	EstimatedTime     string                  `json:"estimated_time"`
	Difficulty        string                  `json:"difficulty"`
	Servings          int                     `json:"servings"`
	Ingredients       []SuggestionIngredient  `json:"ingredients"`
	Instructions      []string                `json:"instructions"`
	NutritionEstimate SuggestionNutrition     `json:"nutrition_estimate"`
	Tags              []string                `json:"tags"`
	MatchScore        int                     `json:"match_score"`
}

type SuggestionIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
}

type SuggestionNutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// QuickRecipeIdea is a lightweight pantry-driven suggestion; fetching these
// is best-effort and failures are swallowed by the caller.
type QuickRecipeIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Time        string   `json:"time"`
	Ingredients []string `json:"ingredients"`
}
