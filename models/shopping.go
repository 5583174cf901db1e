package models

// Shopping list categories. The shopping list is the flat, session-scoped
// list; the cart is the recipe-grouped aggregate.
var ShoppingCategories = []string{
	"Produce", "Dairy", "Meat & Seafood", "Bakery", "Pantry",
	"Frozen", "Beverages", "Household", "Other",
}

// ShoppingItem is one line of the flat shopping list.
type ShoppingItem struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"not null" json:"name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	IsChecked      bool    `json:"is_checked"`
	EstimatedPrice float64 `json:"estimated_price,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}
