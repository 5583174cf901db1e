package handlers

import (
	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/store"
)

type HistoryHandler struct {
	history *store.HistoryStore
}

func NewHistoryHandler(history *store.HistoryStore) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) Searches(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"searches": h.history.Searches()})
}

func (h *HistoryHandler) RemoveSearch(c *fiber.Ctx) error {
	h.history.RemoveSearchEntry(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *HistoryHandler) ClearSearches(c *fiber.Ctx) error {
	h.history.ClearSearchHistory()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *HistoryHandler) Cooked(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cooked": h.history.CookedItems()})
}

type markCookedRequest struct {
	RecipeID     string `json:"recipe_id"`
	RecipeTitle  string `json:"recipe_title"`
	Cuisine      string `json:"cuisine"`
	ImageDataURI string `json:"image_data_uri"`
}

func (h *HistoryHandler) MarkCooked(c *fiber.Ctx) error {
	var req markCookedRequest
	if err := c.BodyParser(&req); err != nil || req.RecipeTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "recipe_title is required"})
	}
	entry := h.history.MarkAsCooked(req.RecipeID, req.RecipeTitle, req.Cuisine, req.ImageDataURI)
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *HistoryHandler) RemoveCooked(c *fiber.Ctx) error {
	h.history.RemoveCooked(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *HistoryHandler) ClearCooked(c *fiber.Ctx) error {
	h.history.ClearCookedItems()
	return c.SendStatus(fiber.StatusNoContent)
}
