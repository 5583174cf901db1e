package handlers

import (
	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type ProfileHandler struct {
	profile *store.ProfileStore
}

func NewProfileHandler(profile *store.ProfileStore) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.profile.Profile())
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var upd models.ProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	return c.JSON(h.profile.Update(upd))
}

type allergyRequest struct {
	Allergy string `json:"allergy"`
}

func (h *ProfileHandler) AddAllergy(c *fiber.Ctx) error {
	var req allergyRequest
	if err := c.BodyParser(&req); err != nil || req.Allergy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "allergy is required"})
	}
	return c.JSON(h.profile.AddAllergy(req.Allergy))
}

func (h *ProfileHandler) RemoveAllergy(c *fiber.Ctx) error {
	allergy := c.Query("allergy")
	if allergy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "allergy query parameter is required"})
	}
	return c.JSON(h.profile.RemoveAllergy(allergy))
}

func (h *ProfileHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(h.profile.Reset())
}
