package gemini

import (
	"fmt"
	"strings"
	"time"

	"culinamind-go-be/models"
)

// PantryContext serializes the pantry into a system-style instruction block
// so chat replies can reference what the user already owns. Returns "" for
// an empty pantry.
func PantryContext(ingredients []models.Ingredient, now time.Time) string {
	if len(ingredients) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("The user's pantry currently contains:\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s: %g %s", ing.Name, ing.Quantity, ing.Unit)
		if ing.ExpiryDate != "" {
			if expiry, err := time.Parse("2006-01-02", ing.ExpiryDate); err == nil {
				days := int(expiry.Sub(now).Hours() / 24)
				fmt.Fprintf(&b, " (expires in %d days", days)
				if days <= 3 {
					b.WriteString(", expiring soon!")
				}
				b.WriteString(")")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Prefer suggestions that use up ingredients close to expiry.")
	return b.String()
}
