package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"culinamind-go-be/config"
	"culinamind-go-be/models"
)

// maxCookbookMatches caps the recipe-match search results.
const maxCookbookMatches = 6

// Client wraps the generative model behind the operations the app needs.
// Every reply goes through ExtractJSON: the provider guarantees no shape.
type Client struct {
	ai         *genai.Client
	flashModel string
	imageModel string
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	ai, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to init AI client: %w", err)
	}
	return &Client{
		ai:         ai,
		flashModel: config.ModelFlash,
		imageModel: config.ModelImage,
	}, nil
}

// generate runs one call and concatenates the text parts of the first
// candidate.
func (c *Client) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := c.ai.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

type recipeMatchWire struct {
	Title              string   `json:"title"`
	CookbookTitle      string   `json:"cookbookTitle"`
	CookbookAuthor     string   `json:"cookbookAuthor"`
	MatchedIngredients []string `json:"matchedIngredients"`
	MissingIngredients []string `json:"missingIngredients"`
	MatchPercentage    int      `json:"matchPercentage"`
	Description        string   `json:"description"`
	EstimatedTime      string   `json:"estimatedTime"`
	PageNumber         string   `json:"pageNumber"`
}

// FindRecipesFromCookbooks asks the model for up to 6 recipes from the named
// cookbooks makeable with the available ingredients. The model answers from
// its own knowledge of the titles; there is no recipe database behind this,
// so results are approximate and unverified.
func (c *Client) FindRecipesFromCookbooks(ctx context.Context, cookbooks []models.Cookbook, availableIngredients, dietaryPreferences []string) ([]models.RecipeMatch, error) {
	prompt := cookbookSearchPrompt(cookbooks, availableIngredients, dietaryPreferences)
	text, err := c.generate(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		log.Printf("gemini cookbook search error: %v", err)
		return nil, errors.New("Failed to find recipes. Please check your API key and try again.")
	}

	var wire []recipeMatchWire
	if err := ExtractJSON(text, &wire); err != nil {
		log.Printf("gemini cookbook search parse error: %v", err)
		return nil, errors.New("Failed to find recipes. Please try again.")
	}

	matches := make([]models.RecipeMatch, 0, len(wire))
	for _, w := range wire {
		matches = append(matches, models.RecipeMatch{
			ID:                 uuid.NewString(),
			Title:              w.Title,
			CookbookTitle:      w.CookbookTitle,
			CookbookAuthor:     w.CookbookAuthor,
			MatchedIngredients: w.MatchedIngredients,
			MissingIngredients: w.MissingIngredients,
			MatchPercentage:    w.MatchPercentage,
			Description:        w.Description,
			EstimatedTime:      w.EstimatedTime,
			PageNumber:         w.PageNumber,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	if len(matches) > maxCookbookMatches {
		matches = matches[:maxCookbookMatches]
	}
	return matches, nil
}

type groceryItemWire struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

func (w groceryItemWire) toModel() models.GroceryItem {
	category := w.Category
	if category == "" {
		category = "Other"
	}
	return models.GroceryItem{
		ID:       uuid.NewString(),
		Name:     w.Name,
		Quantity: w.Quantity,
		Category: category,
		Notes:    w.Notes,
	}
}

type recipeWire struct {
	Title        string            `json:"title"`
	SourceURL    string            `json:"sourceUrl"`
	SourceTitle  string            `json:"sourceTitle"`
	Description  string            `json:"description"`
	Servings     int               `json:"servings"`
	PrepTime     string            `json:"prepTime"`
	CookTime     string            `json:"cookTime"`
	TotalTime    string            `json:"totalTime"`
	Ingredients  []groceryItemWire `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	Tips         []string          `json:"tips"`
}

func (w recipeWire) toModel() models.ExtractedRecipe {
	r := models.ExtractedRecipe{
		ID:           uuid.NewString(),
		Title:        w.Title,
		SourceURL:    w.SourceURL,
		SourceTitle:  w.SourceTitle,
		Description:  w.Description,
		Servings:     w.Servings,
		PrepTime:     w.PrepTime,
		CookTime:     w.CookTime,
		TotalTime:    w.TotalTime,
		Instructions: w.Instructions,
		Tips:         w.Tips,
		ExtractedAt:  time.Now(),
	}
	r.Ingredients = make([]models.GroceryItem, 0, len(w.Ingredients))
	for _, ing := range w.Ingredients {
		r.Ingredients = append(r.Ingredients, ing.toModel())
	}
	return r
}

type extractionWire struct {
	Recipe             recipeWire        `json:"recipe"`
	GroceryList        []groceryItemWire `json:"groceryList"`
	TotalEstimatedCost string            `json:"totalEstimatedCost"`
}

// ExtractRecipeFromURL asks the model to analyze a recipe page or cooking
// video and return one structured recipe plus a grocery list. The URL
// context tool excludes the JSON response mime type, so the reply is parsed
// manually.
func (c *Client) ExtractRecipeFromURL(ctx context.Context, url string) (*models.VideoExtractionResult, error) {
	prompt := extractRecipePrompt(url)
	text, err := c.generate(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{URLContext: &genai.URLContext{}}},
	})
	if err != nil {
		log.Printf("gemini URL extraction error: %v", err)
		return nil, errors.New("Failed to extract recipe. Please check the URL and try again.")
	}

	var wire extractionWire
	if err := ExtractJSON(text, &wire); err != nil {
		log.Printf("gemini URL extraction parse error: %v", err)
		return nil, errors.New("Failed to extract recipe. Please check the URL and try again.")
	}

	result := &models.VideoExtractionResult{
		Recipe:             wire.Recipe.toModel(),
		TotalEstimatedCost: wire.TotalEstimatedCost,
	}
	result.GroceryList = make([]models.GroceryItem, 0, len(wire.GroceryList))
	for _, item := range wire.GroceryList {
		result.GroceryList = append(result.GroceryList, item.toModel())
	}
	return result, nil
}

type combinedWire struct {
	Recipes            []recipeWire      `json:"recipes"`
	CombinedList       []groceryItemWire `json:"combinedList"`
	TotalEstimatedCost string            `json:"totalEstimatedCost"`
}

// CombineGroceryLists asks the model to extract recipes from several URLs
// and merge overlapping ingredients into one combined list, with per-item
// notes naming the source recipes.
func (c *Client) CombineGroceryLists(ctx context.Context, urls []string) (*models.CombinedExtractionResult, error) {
	prompt := combineListsPrompt(urls)
	text, err := c.generate(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{URLContext: &genai.URLContext{}}},
	})
	if err != nil {
		log.Printf("gemini multi-URL error: %v", err)
		return nil, errors.New("Failed to process recipe URLs. Please try again.")
	}

	var wire combinedWire
	if err := ExtractJSON(text, &wire); err != nil {
		log.Printf("gemini multi-URL parse error: %v", err)
		return nil, errors.New("Failed to process recipe URLs. Please try again.")
	}

	result := &models.CombinedExtractionResult{
		TotalEstimatedCost: wire.TotalEstimatedCost,
	}
	if result.TotalEstimatedCost == "" {
		result.TotalEstimatedCost = "N/A"
	}
	result.Recipes = make([]models.ExtractedRecipe, 0, len(wire.Recipes))
	for _, r := range wire.Recipes {
		result.Recipes = append(result.Recipes, r.toModel())
	}
	result.CombinedList = make([]models.GroceryItem, 0, len(wire.CombinedList))
	for _, item := range wire.CombinedList {
		result.CombinedList = append(result.CombinedList, item.toModel())
	}
	return result, nil
}

type suggestionWire struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Cuisine       string `json:"cuisine"`
	EstimatedTime string `json:"estimatedTime"`
	Difficulty    string `json:"difficulty"`
	Servings      int    `json:"servings"`
	Ingredients   []struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Category string `json:"category"`
	} `json:"ingredients"`
	Instructions      []string `json:"instructions"`
	NutritionEstimate struct {
		Calories int     `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	} `json:"nutritionEstimate"`
	Tags       []string `json:"tags"`
	MatchScore int      `json:"matchScore"`
}

// GenerateRecipesFromQuery asks the model for 4-6 full recipe suggestions
// matching a search query, optionally biased towards the pantry contents.
func (c *Client) GenerateRecipesFromQuery(ctx context.Context, query, cuisine string, pantryIngredients []string) ([]models.AIRecipeSuggestion, error) {
	prompt := recipeQueryPrompt(query, cuisine, pantryIngredients)
	text, err := c.generate(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		log.Printf("gemini recipe search error: %v", err)
		return nil, errors.New("Failed to generate recipes. Please try again.")
	}

	var wire []suggestionWire
	if err := ExtractJSON(text, &wire); err != nil {
		log.Printf("gemini recipe search parse error: %v", err)
		return nil, errors.New("Failed to generate recipes. Please try again.")
	}

	suggestions := make([]models.AIRecipeSuggestion, 0, len(wire))
	for _, w := range wire {
		s := models.AIRecipeSuggestion{
			ID:            uuid.NewString(),
			Title:         w.Title,
			Description:   w.Description,
			Cuisine:       w.Cuisine,
			EstimatedTime: w.EstimatedTime,
			Difficulty:    w.Difficulty,
			Servings:      w.Servings,
			Instructions:  w.Instructions,
			Tags:          w.Tags,
			MatchScore:    w.MatchScore,
			NutritionEstimate: models.SuggestionNutrition{
				Calories: w.NutritionEstimate.Calories,
				Protein:  w.NutritionEstimate.Protein,
				Carbs:    w.NutritionEstimate.Carbs,
				Fat:      w.NutritionEstimate.Fat,
			},
		}
		for _, ing := range w.Ingredients {
			s.Ingredients = append(s.Ingredients, models.SuggestionIngredient{
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Category: ing.Category,
			})
		}
		suggestions = append(suggestions, s)
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})
	return suggestions, nil
}

type insightWire struct {
	Summary        string   `json:"summary"`
	Tips           []string `json:"tips"`
	Warnings       []string `json:"warnings"`
	DailyScore     int      `json:"dailyScore"`
	MacroBreakdown struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fat     float64 `json:"fat"`
		Fiber   float64 `json:"fiber"`
	} `json:"macroBreakdown"`
	Recommendations []string `json:"recommendations"`
}

// NutritionInsights analyzes recent meals against the user's profile.
func (c *Client) NutritionInsights(ctx context.Context, recentMeals []models.NutritionEntry, profile *models.UserProfile) (*models.NutritionInsight, error) {
	prompt := nutritionInsightsPrompt(recentMeals, profile)
	text, err := c.generate(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		log.Printf("gemini nutrition insights error: %v", err)
		return nil, errors.New("Failed to generate nutrition insights.")
	}

	var wire insightWire
	if err := ExtractJSON(text, &wire); err != nil {
		log.Printf("gemini nutrition insights parse error: %v", err)
		return nil, errors.New("Failed to generate nutrition insights.")
	}
	return &models.NutritionInsight{
		Summary:    wire.Summary,
		Tips:       wire.Tips,
		Warnings:   wire.Warnings,
		DailyScore: wire.DailyScore,
		MacroBreakdown: models.InsightMacros{
			Protein: wire.MacroBreakdown.Protein,
			Carbs:   wire.MacroBreakdown.Carbs,
			Fat:     wire.MacroBreakdown.Fat,
			Fiber:   wire.MacroBreakdown.Fiber,
		},
		Recommendations: wire.Recommendations,
	}, nil
}

// QuickRecipeIdeas suggests 3 recipes makeable right now from the pantry.
// Callers treat failures as best-effort and swallow them.
func (c *Client) QuickRecipeIdeas(ctx context.Context, pantryIngredients []string) ([]models.QuickRecipeIdea, error) {
	prompt := quickIdeasPrompt(pantryIngredients)
	text, err := c.generate(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("quick recipe ideas: %w", err)
	}
	var ideas []models.QuickRecipeIdea
	if err := ExtractJSON(text, &ideas); err != nil {
		return nil, fmt.Errorf("quick recipe ideas: %w", err)
	}
	return ideas, nil
}

// Chat sends one conversational turn with the full prior history. The
// pantry context string, when present, is appended to the system
// instruction so the model knows what the user already owns.
func (c *Client) Chat(ctx context.Context, userMessage string, history []models.ChatTurn, pantryContext string) (string, error) {
	system := chatSystemInstruction
	if pantryContext != "" {
		system += "\n\n" + pantryContext
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	text, err := c.generate(ctx, c.flashModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	})
	if err != nil {
		log.Printf("gemini chat error: %v", err)
		return "", errors.New("Failed to get a response. Please check your connection and try again.")
	}
	return strings.TrimSpace(text), nil
}

// GenerateRecipeImage asks the image model for a food photo of the dish and
// returns it as a data URI. An answer with no inline image data is "no
// image available", not an error: the caller gets "".
func (c *Client) GenerateRecipeImage(ctx context.Context, title, description string) (string, error) {
	prompt := recipeImagePrompt(title, description)
	resp, err := c.ai.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: "1:1"},
	})
	if err != nil {
		log.Printf("gemini image generation error: %v", err)
		return "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && strings.HasPrefix(part.InlineData.MIMEType, "image/") {
				encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
				return "data:" + part.InlineData.MIMEType + ";base64," + encoded, nil
			}
		}
	}
	return "", nil
}

// TranscribeAudio sends a base64 audio clip for speech-to-text.
func (c *Client) TranscribeAudio(ctx context.Context, base64Audio, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/mp4"
	}
	data, err := base64.StdEncoding.DecodeString(base64Audio)
	if err != nil {
		return "", fmt.Errorf("invalid base64 audio: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			{Text: transcribeInstruction},
		}, genai.RoleUser),
	}
	text, err := c.generate(ctx, c.flashModel, contents, nil)
	if err != nil {
		log.Printf("gemini audio transcription error: %v", err)
		return "", errors.New("Failed to transcribe audio. Please try again.")
	}
	return strings.TrimSpace(text), nil
}
