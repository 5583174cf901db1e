package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type MealPlanHandler struct {
	plan *store.MealPlanStore
}

func NewMealPlanHandler(plan *store.MealPlanStore) *MealPlanHandler {
	return &MealPlanHandler{plan: plan}
}

func (h *MealPlanHandler) Week(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"week":          h.plan.WeekPlan(),
		"selected_diet": h.plan.SelectedDiet(),
	})
}

func (h *MealPlanHandler) AddMeal(c *fiber.Ctx) error {
	var meal models.Meal
	if err := c.BodyParser(&meal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if meal.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Meal name is required"})
	}
	added, ok := h.plan.AddMeal(c.Params("day"), meal)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown day"})
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}

func (h *MealPlanHandler) RemoveMeal(c *fiber.Ctx) error {
	h.plan.RemoveMeal(c.Params("day"), c.Params("mealId"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MealPlanHandler) ClearDay(c *fiber.Ctx) error {
	h.plan.ClearDay(c.Params("day"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MealPlanHandler) ClearAll(c *fiber.Ctx) error {
	h.plan.ClearAll(time.Now())
	return c.SendStatus(fiber.StatusNoContent)
}

type dietRequest struct {
	Diet string `json:"diet"`
}

func (h *MealPlanHandler) SetDiet(c *fiber.Ctx) error {
	var req dietRequest
	if err := c.BodyParser(&req); err != nil || req.Diet == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "diet is required"})
	}
	h.plan.SetSelectedDiet(req.Diet)
	return c.JSON(fiber.Map{"selected_diet": h.plan.SelectedDiet()})
}
