package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/gemini"
	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

// RecipeHandler covers the URL import queue, AI extraction, AI recipe search
// and the generated recipe images.
type RecipeHandler struct {
	imports *store.RecipeImportStore
	history *store.HistoryStore
	pantry  *store.PantryStore
	ai      *gemini.Client
}

func NewRecipeHandler(imports *store.RecipeImportStore, history *store.HistoryStore, pantry *store.PantryStore, ai *gemini.Client) *RecipeHandler {
	return &RecipeHandler{imports: imports, history: history, pantry: pantry, ai: ai}
}

func (h *RecipeHandler) ImportState(c *fiber.Ctx) error {
	recipes, grocery, totalCost, extracting, extractErr := h.imports.Extraction()
	return c.JSON(fiber.Map{
		"urls":                 h.imports.URLs(),
		"recipes":              recipes,
		"grocery_list":         grocery,
		"total_estimated_cost": totalCost,
		"extracting":           extracting,
		"error":                extractErr,
		"checked_count":        h.imports.CheckedCount(),
	})
}

type urlRequest struct {
	URL string `json:"url"`
}

func (h *RecipeHandler) AddURL(c *fiber.Ctx) error {
	var req urlRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}
	h.imports.AddURL(req.URL)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"urls": h.imports.URLs()})
}

func (h *RecipeHandler) RemoveURL(c *fiber.Ctx) error {
	url := c.Query("url")
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url query parameter is required"})
	}
	h.imports.RemoveURL(url)
	return c.JSON(fiber.Map{"urls": h.imports.URLs()})
}

func (h *RecipeHandler) ClearURLs(c *fiber.Ctx) error {
	h.imports.ClearURLs()
	return c.SendStatus(fiber.StatusNoContent)
}

// Extract runs a single-URL extraction through the generation gate.
func (h *RecipeHandler) Extract(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req urlRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}

	gen := h.imports.BeginExtraction()
	result, err := h.ai.ExtractRecipeFromURL(c.Context(), req.URL)
	if err != nil {
		h.imports.FailExtraction(gen, err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	if !h.imports.CompleteExtraction(gen, []models.ExtractedRecipe{result.Recipe}, result.GroceryList, result.TotalEstimatedCost) {
		return c.JSON(fiber.Map{"superseded": true})
	}
	return c.JSON(result)
}

type combineRequest struct {
	URLs []string `json:"urls"`
}

// Combine extracts every queued URL (or the URLs in the request body) and
// commits one merged grocery list.
func (h *RecipeHandler) Combine(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req combineRequest
	_ = c.BodyParser(&req)
	urls := req.URLs
	if len(urls) == 0 {
		urls = h.imports.URLs()
	}
	if len(urls) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No URLs to process"})
	}

	gen := h.imports.BeginExtraction()
	result, err := h.ai.CombineGroceryLists(c.Context(), urls)
	if err != nil {
		h.imports.FailExtraction(gen, err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	if !h.imports.CompleteExtraction(gen, result.Recipes, result.CombinedList, result.TotalEstimatedCost) {
		return c.JSON(fiber.Map{"superseded": true})
	}
	return c.JSON(result)
}

func (h *RecipeHandler) ToggleGroceryItem(c *fiber.Ctx) error {
	item, ok := h.imports.ToggleGroceryItem(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Grocery item not found"})
	}
	return c.JSON(item)
}

func (h *RecipeHandler) ClearGroceryList(c *fiber.Ctx) error {
	h.imports.ClearGroceryList()
	return c.SendStatus(fiber.StatusNoContent)
}

type recipeSearchRequest struct {
	Query   string `json:"query"`
	Cuisine string `json:"cuisine"`
}

// Search generates recipe suggestions for a free-text query and records the
// search in history.
func (h *RecipeHandler) Search(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req recipeSearchRequest
	if err := c.BodyParser(&req); err != nil || req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query is required"})
	}

	suggestions, err := h.ai.GenerateRecipesFromQuery(c.Context(), req.Query, req.Cuisine, h.pantry.Names())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	recipes := make([]models.HistoryRecipe, 0, len(suggestions))
	for _, s := range suggestions {
		recipes = append(recipes, models.HistoryRecipe{
			ID:            s.ID,
			Title:         s.Title,
			Description:   s.Description,
			Cuisine:       s.Cuisine,
			EstimatedTime: s.EstimatedTime,
			Difficulty:    s.Difficulty,
			Servings:      s.Servings,
			MatchScore:    s.MatchScore,
		})
	}
	entry := h.history.AddSearchEntry(req.Query, req.Cuisine, recipes)
	return c.JSON(fiber.Map{"suggestions": suggestions, "search_id": entry.ID})
}

// QuickIdeas is best-effort: failures come back as an empty list, never an
// error status.
func (h *RecipeHandler) QuickIdeas(c *fiber.Ctx) error {
	ideas := []models.QuickRecipeIdea{}
	names := h.pantry.Names()
	if h.ai != nil && len(names) > 0 {
		got, err := h.ai.QuickRecipeIdeas(c.Context(), names)
		if err != nil {
			log.Printf("quick ideas unavailable: %v", err)
		} else {
			ideas = got
		}
	}
	return c.JSON(fiber.Map{"ideas": ideas})
}

type recipeImageRequest struct {
	SearchID    string `json:"search_id"`
	RecipeID    string `json:"recipe_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GenerateImage produces a dish photo and stores it on the history entry
// when one is referenced. An empty data URI means the model declined to
// return an image.
func (h *RecipeHandler) GenerateImage(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req recipeImageRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	if req.SearchID != "" && req.RecipeID != "" {
		h.history.SetRecipeImageLoading(req.SearchID, req.RecipeID, true)
	}
	dataURI, err := h.ai.GenerateRecipeImage(c.Context(), req.Title, req.Description)
	if req.SearchID != "" && req.RecipeID != "" {
		h.history.UpdateRecipeImage(req.SearchID, req.RecipeID, dataURI)
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to generate image"})
	}
	return c.JSON(fiber.Map{"image_data_uri": dataURI})
}
