package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"culinamind-go-be/billing"
	"culinamind-go-be/config"
	"culinamind-go-be/database"
	"culinamind-go-be/gemini"
	"culinamind-go-be/handlers"
	"culinamind-go-be/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Stores
	pantry := store.NewPantryStore(db)
	cart := store.NewCartStore(db)
	shopping := store.NewShoppingStore(db)
	cookbooks := store.NewCookbookStore(db)
	imports := store.NewRecipeImportStore()
	nutrition := store.NewNutritionStore(db)
	chat := store.NewChatStore(db)
	history := store.NewHistoryStore()
	mealPlan := store.NewMealPlanStore(time.Now())
	profile := store.NewProfileStore(db)
	subs := store.NewSubscriptionStore(config.EntitlementID)

	type loader interface{ Load() error }
	for name, s := range map[string]loader{
		"pantry": pantry, "cart": cart, "shopping": shopping,
		"cookbooks": cookbooks, "nutrition": nutrition, "chat": chat,
		"profile": profile,
	} {
		if err := s.Load(); err != nil {
			log.Printf("Failed to hydrate %s store: %v", name, err)
		}
	}

	// AI client is optional; handlers answer 503 for AI routes without it.
	var ai *gemini.Client
	if cfg.GeminiAPIKey != "" {
		ai, err = gemini.NewClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Failed to init AI client, AI features disabled: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, AI features disabled")
	}

	var billingClient *billing.Client
	if cfg.RevenueCatAPIKey != "" {
		billingClient = billing.NewClient(cfg.RevenueCatAPIKey)
	} else {
		log.Println("REVENUECAT_API_KEY not set, billing features disabled")
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	pantryHandler := handlers.NewPantryHandler(pantry)
	api.Get("/pantry", pantryHandler.List)
	api.Post("/pantry", pantryHandler.Add)
	api.Patch("/pantry/:id", pantryHandler.Update)
	api.Delete("/pantry/:id", pantryHandler.Remove)
	api.Delete("/pantry", pantryHandler.Clear)

	cartHandler := handlers.NewCartHandler(cart)
	api.Get("/cart", cartHandler.List)
	api.Get("/cart/categories", cartHandler.ByCategory)
	api.Post("/cart/recipes", cartHandler.AddRecipeItems)
	api.Patch("/cart/items/:id/toggle", cartHandler.ToggleItem)
	api.Delete("/cart/items/:id", cartHandler.RemoveItem)
	api.Delete("/cart/recipes/:recipeId", cartHandler.RemoveRecipe)
	api.Delete("/cart/checked", cartHandler.ClearChecked)
	api.Delete("/cart", cartHandler.Clear)

	shoppingHandler := handlers.NewShoppingHandler(shopping)
	api.Get("/shopping", shoppingHandler.List)
	api.Post("/shopping", shoppingHandler.Add)
	api.Patch("/shopping/:id/toggle", shoppingHandler.Toggle)
	api.Delete("/shopping/checked", shoppingHandler.ClearChecked)
	api.Delete("/shopping/:id", shoppingHandler.Remove)
	api.Delete("/shopping", shoppingHandler.Clear)

	cookbookHandler := handlers.NewCookbookHandler(cookbooks, pantry, profile, ai)
	api.Get("/cookbooks", cookbookHandler.List)
	api.Post("/cookbooks", cookbookHandler.Add)
	api.Post("/cookbooks/search", cookbookHandler.Search)
	api.Get("/cookbooks/matches", cookbookHandler.Matches)
	api.Delete("/cookbooks/matches", cookbookHandler.ClearMatches)
	api.Patch("/cookbooks/:id", cookbookHandler.Update)
	api.Delete("/cookbooks/:id", cookbookHandler.Remove)

	recipeHandler := handlers.NewRecipeHandler(imports, history, pantry, ai)
	api.Get("/import", recipeHandler.ImportState)
	api.Post("/import/urls", recipeHandler.AddURL)
	api.Delete("/import/urls/all", recipeHandler.ClearURLs)
	api.Delete("/import/urls", recipeHandler.RemoveURL)
	api.Post("/import/extract", recipeHandler.Extract)
	api.Post("/import/combine", recipeHandler.Combine)
	api.Patch("/import/grocery/:id/toggle", recipeHandler.ToggleGroceryItem)
	api.Delete("/import/grocery", recipeHandler.ClearGroceryList)
	api.Post("/recipes/search", recipeHandler.Search)
	api.Get("/recipes/quick-ideas", recipeHandler.QuickIdeas)
	api.Post("/recipes/image", recipeHandler.GenerateImage)

	nutritionHandler := handlers.NewNutritionHandler(nutrition, profile, ai)
	api.Get("/nutrition", nutritionHandler.List)
	api.Get("/nutrition/weekly", nutritionHandler.Weekly)
	api.Put("/nutrition/goal", nutritionHandler.SetGoal)
	api.Post("/nutrition/insights", nutritionHandler.Insights)
	api.Post("/nutrition/entries", nutritionHandler.AddEntry)
	api.Delete("/nutrition/entries/by-meal", nutritionHandler.RemoveByMeal)
	api.Delete("/nutrition/entries/:id", nutritionHandler.RemoveEntry)
	api.Delete("/nutrition/entries", nutritionHandler.Clear)

	chatHandler := handlers.NewChatHandler(chat, pantry, ai)
	api.Get("/chat", chatHandler.List)
	api.Post("/chat/messages", chatHandler.Send)
	api.Delete("/chat/messages", chatHandler.Clear)
	api.Post("/chat/open", chatHandler.Open)
	api.Post("/chat/close", chatHandler.Close)
	api.Post("/chat/toggle", chatHandler.Toggle)
	api.Post("/chat/transcribe", chatHandler.Transcribe)

	mealPlanHandler := handlers.NewMealPlanHandler(mealPlan)
	api.Get("/mealplan", mealPlanHandler.Week)
	api.Put("/mealplan/diet", mealPlanHandler.SetDiet)
	api.Post("/mealplan/:day/meals", mealPlanHandler.AddMeal)
	api.Delete("/mealplan/:day/meals/:mealId", mealPlanHandler.RemoveMeal)
	api.Delete("/mealplan/:day", mealPlanHandler.ClearDay)
	api.Delete("/mealplan", mealPlanHandler.ClearAll)

	historyHandler := handlers.NewHistoryHandler(history)
	api.Get("/history/searches", historyHandler.Searches)
	api.Delete("/history/searches/:id", historyHandler.RemoveSearch)
	api.Delete("/history/searches", historyHandler.ClearSearches)
	api.Get("/history/cooked", historyHandler.Cooked)
	api.Post("/history/cooked", historyHandler.MarkCooked)
	api.Delete("/history/cooked/:id", historyHandler.RemoveCooked)
	api.Delete("/history/cooked", historyHandler.ClearCooked)

	profileHandler := handlers.NewProfileHandler(profile)
	api.Get("/profile", profileHandler.Get)
	api.Patch("/profile", profileHandler.Update)
	api.Post("/profile/allergies", profileHandler.AddAllergy)
	api.Delete("/profile/allergies", profileHandler.RemoveAllergy)
	api.Post("/profile/reset", profileHandler.Reset)

	subscriptionHandler := handlers.NewSubscriptionHandler(subs, billingClient, cfg.RevenueCatWebhookAuth)
	api.Get("/subscription", subscriptionHandler.Status)
	api.Post("/subscription/refresh", subscriptionHandler.Refresh)
	api.Get("/subscription/offerings", subscriptionHandler.Offerings)
	api.Post("/subscription/purchase", subscriptionHandler.Purchase)
	api.Post("/subscription/restore", subscriptionHandler.Restore)
	api.Post("/subscription/webhook", subscriptionHandler.Webhook)

	log.Fatal(app.Listen(":" + cfg.Port))
}
