package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type PantryHandler struct {
	pantry *store.PantryStore
}

func NewPantryHandler(pantry *store.PantryStore) *PantryHandler {
	return &PantryHandler{pantry: pantry}
}

// List returns the filtered view. Passing filter/q query params updates the
// sticky filter and search query before the view is computed.
func (h *PantryHandler) List(c *fiber.Ctx) error {
	if filter := c.Query("filter"); filter != "" {
		h.pantry.SetFilter(filter)
	}
	if c.Context().QueryArgs().Has("q") {
		h.pantry.SetSearchQuery(c.Query("q"))
	}
	return c.JSON(fiber.Map{
		"ingredients": h.pantry.Filtered(time.Now()),
		"filter":      h.pantry.Filter(),
		"total":       len(h.pantry.All()),
	})
}

func (h *PantryHandler) Add(c *fiber.Ctx) error {
	var ing models.Ingredient
	if err := c.BodyParser(&ing); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if ing.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Ingredient name is required"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.pantry.Add(ing))
}

func (h *PantryHandler) Update(c *fiber.Ctx) error {
	var upd models.IngredientUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	ing, ok := h.pantry.Update(c.Params("id"), upd)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ingredient not found"})
	}
	return c.JSON(ing)
}

func (h *PantryHandler) Remove(c *fiber.Ctx) error {
	h.pantry.Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PantryHandler) Clear(c *fiber.Ctx) error {
	h.pantry.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
