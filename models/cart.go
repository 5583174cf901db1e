package models

// CartItem is one checkout-bound line. RecipeID/RecipeName are lookup keys
// back to the originating recipe, not ownership; items survive the recipe
// being removed.
type CartItem struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"not null" json:"name"`
	Quantity       string  `json:"quantity"`
	Category       string  `json:"category"`
	EstimatedPrice float64 `json:"estimated_price"`
	IsChecked      bool    `json:"is_checked"`
	RecipeID       string  `gorm:"index" json:"recipe_id"`
	RecipeName     string  `json:"recipe_name"`
	Notes          string  `json:"notes,omitempty"`
}

// CartRecipeGroup is the derived per-recipe view of the cart.
type CartRecipeGroup struct {
	RecipeID           string     `json:"recipe_id"`
	RecipeName         string     `json:"recipe_name"`
	Items              []CartItem `json:"items"`
	TotalEstimatedCost float64    `json:"total_estimated_cost"`
}
