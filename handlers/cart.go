package handlers

import (
	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type CartHandler struct {
	cart *store.CartStore
}

func NewCartHandler(cart *store.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

// List returns the recipe-grouped view with the running totals.
func (h *CartHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"groups":        h.cart.GroupedByRecipe(),
		"total_cost":    h.cart.TotalCost(),
		"item_count":    h.cart.ItemCount(),
		"checked_count": h.cart.CheckedCount(),
	})
}

func (h *CartHandler) ByCategory(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.cart.GroupedByCategory()})
}

type addRecipeItemsRequest struct {
	RecipeID   string            `json:"recipe_id"`
	RecipeName string            `json:"recipe_name"`
	Items      []models.CartItem `json:"items"`
}

// AddRecipeItems ingests a batch of items for one recipe. Re-sending the
// same recipe id replaces the previous batch instead of duplicating it.
func (h *CartHandler) AddRecipeItems(c *fiber.Ctx) error {
	var req addRecipeItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.RecipeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "recipe_id is required"})
	}
	added := h.cart.AddItemsForRecipe(req.RecipeID, req.RecipeName, req.Items)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"items": added})
}

func (h *CartHandler) ToggleItem(c *fiber.Ctx) error {
	item, ok := h.cart.ToggleItem(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart item not found"})
	}
	return c.JSON(item)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	h.cart.RemoveItem(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) RemoveRecipe(c *fiber.Ctx) error {
	h.cart.RemoveRecipeItems(c.Params("recipeId"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) ClearChecked(c *fiber.Ctx) error {
	h.cart.ClearChecked()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.cart.ClearCart()
	return c.SendStatus(fiber.StatusNoContent)
}
