package handlers

import (
	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type ShoppingHandler struct {
	shopping *store.ShoppingStore
}

func NewShoppingHandler(shopping *store.ShoppingStore) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping}
}

func (h *ShoppingHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items":          h.shopping.All(),
		"categories":     h.shopping.GroupedByCategory(),
		"total_estimate": h.shopping.TotalEstimate(),
	})
}

func (h *ShoppingHandler) Add(c *fiber.Ctx) error {
	var item models.ShoppingItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item name is required"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.shopping.AddItem(item))
}

func (h *ShoppingHandler) Toggle(c *fiber.Ctx) error {
	item, ok := h.shopping.ToggleItem(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shopping item not found"})
	}
	return c.JSON(item)
}

func (h *ShoppingHandler) Remove(c *fiber.Ctx) error {
	h.shopping.RemoveItem(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ShoppingHandler) ClearChecked(c *fiber.Ctx) error {
	h.shopping.ClearChecked()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ShoppingHandler) Clear(c *fiber.Ctx) error {
	h.shopping.ClearAll()
	return c.SendStatus(fiber.StatusNoContent)
}
