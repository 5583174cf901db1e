package models

// Pantry ingredient categories.
const (
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryDairy      = "Dairy"
	CategoryMeat       = "Meat"
	CategoryGrains     = "Grains"
	CategorySpices     = "Spices"
	CategoryBeverages  = "Beverages"
	CategorySnacks     = "Snacks"
	CategoryFrozen     = "Frozen"
	CategoryOther      = "Other"
)

// Units an ingredient quantity can be expressed in.
var IngredientUnits = []string{
	"kg", "g", "lbs", "oz", "liters", "ml",
	"cups", "tbsp", "tsp", "pieces", "dozen", "bunch",
}

// Ingredient is one pantry lot. Same-named lots may coexist; there is no
// dedup by name. Dates are YYYY-MM-DD strings so they order lexicographically.
type Ingredient struct {
	ID         string  `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	ExpiryDate string  `json:"expiry_date"`
	IsSurplus  bool    `json:"is_surplus"`
	AddedAt    string  `json:"added_at"`
	ImageURL   string  `json:"image_url,omitempty"`
}

// IngredientUpdate carries a partial in-place edit. Nil fields are untouched.
type IngredientUpdate struct {
	Name       *string  `json:"name"`
	Quantity   *float64 `json:"quantity"`
	Unit       *string  `json:"unit"`
	Category   *string  `json:"category"`
	ExpiryDate *string  `json:"expiry_date"`
	IsSurplus  *bool    `json:"is_surplus"`
}
