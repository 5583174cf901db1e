package models

// Cookbook is one title in the user's collection. Only title and author are
// known to the system; there is no recipe text behind it.
type Cookbook struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Author      string `json:"author"`
	CoverColor  string `json:"cover_color,omitempty"`
	RecipeCount int    `json:"recipe_count,omitempty"`
	Notes       string `json:"notes,omitempty"`
	AddedAt     string `json:"added_at"`
}

// CookbookUpdate carries a partial edit. Nil fields are untouched.
type CookbookUpdate struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	CoverColor  *string `json:"cover_color"`
	RecipeCount *int    `json:"recipe_count"`
	Notes       *string `json:"notes"`
}

// RecipeMatch is a model-estimated match against the cookbook collection.
// The match is approximate and unverified: the system has no ground truth
// for what a cookbook actually contains.
type RecipeMatch struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	CookbookTitle      string   `json:"cookbook_title"`
	CookbookAuthor     string   `json:"cookbook_author"`
	MatchedIngredients []string `json:"matched_ingredients"`
	MissingIngredients []string `json:"missing_ingredients"`
	MatchPercentage    int      `json:"match_percentage"`
	Description        string   `json:"description"`
	EstimatedTime      string   `json:"estimated_time,omitempty"`
	PageNumber         string   `json:"page_number,omitempty"`
}
