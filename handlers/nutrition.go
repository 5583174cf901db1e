package handlers

import (
	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/gemini"
	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type NutritionHandler struct {
	nutrition *store.NutritionStore
	profile   *store.ProfileStore
	ai        *gemini.Client
}

func NewNutritionHandler(nutrition *store.NutritionStore, profile *store.ProfileStore, ai *gemini.Client) *NutritionHandler {
	return &NutritionHandler{nutrition: nutrition, profile: profile, ai: ai}
}

func (h *NutritionHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"entries":      h.nutrition.Entries(),
		"daily_totals": h.nutrition.DailyTotals(),
		"goal":         h.nutrition.Goal(),
	})
}

func (h *NutritionHandler) AddEntry(c *fiber.Ctx) error {
	var entry models.NutritionEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if entry.Date == "" || entry.RecipeName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date and recipe_name are required"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.nutrition.AddEntry(entry))
}

func (h *NutritionHandler) RemoveEntry(c *fiber.Ctx) error {
	h.nutrition.RemoveEntryByID(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveByMeal is the composite-key removal: every entry matching the
// date/name pair goes at once.
func (h *NutritionHandler) RemoveByMeal(c *fiber.Ctx) error {
	date := c.Query("date")
	name := c.Query("recipe_name")
	if date == "" || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date and recipe_name query parameters are required"})
	}
	h.nutrition.RemoveEntry(date, name)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NutritionHandler) Clear(c *fiber.Ctx) error {
	h.nutrition.ClearEntries()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NutritionHandler) Weekly(c *fiber.Ctx) error {
	return c.JSON(h.nutrition.WeeklyAggregation())
}

func (h *NutritionHandler) SetGoal(c *fiber.Ctx) error {
	var goal models.NutritionGoal
	if err := c.BodyParser(&goal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	h.nutrition.SetGoal(goal)
	return c.JSON(goal)
}

// Insights runs the AI analysis over the most recent entries.
func (h *NutritionHandler) Insights(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	entries := h.nutrition.Entries()
	if len(entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Log some meals first"})
	}
	// Last 20 entries keep the prompt bounded.
	if len(entries) > 20 {
		entries = entries[len(entries)-20:]
	}
	profile := h.profile.Profile()
	insight, err := h.ai.NutritionInsights(c.Context(), entries, &profile)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(insight)
}
