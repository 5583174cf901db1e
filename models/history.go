package models

// HistoryRecipe is a recipe suggestion as retained in search history, with a
// slot for its generated image.
type HistoryRecipe struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Cuisine       string `json:"cuisine"`
	EstimatedTime string `json:"estimated_time"`
	Difficulty    string `json:"difficulty"`
	Servings      int    `json:"servings"`
	MatchScore    int    `json:"match_score"`
	ImageDataURI  string `json:"image_data_uri,omitempty"`
	ImageLoading  bool   `json:"image_loading,omitempty"`
}

// SearchHistoryEntry is one past AI recipe search and its results.
type SearchHistoryEntry struct {
	ID        string          `json:"id"`
	Query     string          `json:"query"`
	Cuisine   string          `json:"cuisine"`
	Timestamp int64           `json:"timestamp"`
	Recipes   []HistoryRecipe `json:"recipes"`
}

// CookedEntry records a recipe the user marked as cooked.
type CookedEntry struct {
	ID           string `json:"id"`
	RecipeID     string `json:"recipe_id"`
	RecipeTitle  string `json:"recipe_title"`
	Cuisine      string `json:"cuisine"`
	ImageDataURI string `json:"image_data_uri,omitempty"`
	CookedAt     int64  `json:"cooked_at"`
}
