package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/gemini"
	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type CookbookHandler struct {
	cookbooks *store.CookbookStore
	pantry    *store.PantryStore
	profile   *store.ProfileStore
	ai        *gemini.Client
}

func NewCookbookHandler(cookbooks *store.CookbookStore, pantry *store.PantryStore, profile *store.ProfileStore, ai *gemini.Client) *CookbookHandler {
	return &CookbookHandler{cookbooks: cookbooks, pantry: pantry, profile: profile, ai: ai}
}

func (h *CookbookHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cookbooks": h.cookbooks.All()})
}

func (h *CookbookHandler) Add(c *fiber.Ctx) error {
	var cb models.Cookbook
	if err := c.BodyParser(&cb); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if cb.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cookbook title is required"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.cookbooks.Add(cb))
}

func (h *CookbookHandler) Update(c *fiber.Ctx) error {
	var upd models.CookbookUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	cb, ok := h.cookbooks.Update(c.Params("id"), upd)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cookbook not found"})
	}
	return c.JSON(cb)
}

func (h *CookbookHandler) Remove(c *fiber.Ctx) error {
	h.cookbooks.Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

type cookbookSearchRequest struct {
	DietaryPreferences []string `json:"dietary_preferences"`
}

// Search asks the model which recipes from the collection the current pantry
// can make. The search goes through the generation gate: a reply that lost
// the race to a newer search is dropped rather than committed.
func (h *CookbookHandler) Search(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}

	books := h.cookbooks.All()
	if len(books) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Add at least one cookbook first"})
	}
	ingredients := h.pantry.Names()
	if len(ingredients) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Your pantry is empty"})
	}

	var req cookbookSearchRequest
	_ = c.BodyParser(&req)
	prefs := req.DietaryPreferences
	if len(prefs) == 0 {
		prefs = dietaryPreferences(h.profile.Profile())
	}

	gen := h.cookbooks.BeginSearch()
	matches, err := h.ai.FindRecipesFromCookbooks(c.Context(), books, ingredients, prefs)
	if err != nil {
		h.cookbooks.FailSearch(gen, err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	if !h.cookbooks.CompleteSearch(gen, matches) {
		return c.JSON(fiber.Map{"superseded": true})
	}
	return c.JSON(fiber.Map{"matches": matches})
}

func (h *CookbookHandler) Matches(c *fiber.Ctx) error {
	matches, searching, searchErr := h.cookbooks.Matches()
	return c.JSON(fiber.Map{
		"matches":   matches,
		"searching": searching,
		"error":     searchErr,
	})
}

func (h *CookbookHandler) ClearMatches(c *fiber.Ctx) error {
	h.cookbooks.ClearMatches()
	return c.SendStatus(fiber.StatusNoContent)
}

// dietaryPreferences derives prompt hints from the profile when the request
// does not carry explicit ones.
func dietaryPreferences(p models.UserProfile) []string {
	var prefs []string
	if p.DietPreference != "" && p.DietPreference != "No Preference" {
		prefs = append(prefs, p.DietPreference)
	}
	for _, a := range p.Allergies {
		prefs = append(prefs, fmt.Sprintf("allergic to %s", a))
	}
	return prefs
}
