package gemini

import (
	"fmt"
	"regexp"
	"strings"

	"culinamind-go-be/models"
)

// The JSON shapes in these prompts are the schema contract with the model.
// The service does not enforce them server-side; ExtractJSON tolerates the
// drift.

func cookbookSearchPrompt(cookbooks []models.Cookbook, availableIngredients, dietaryPreferences []string) string {
	var b strings.Builder
	b.WriteString("You are a culinary expert and cookbook encyclopedist. A user has the following cookbooks in their collection:\n\n")
	for _, c := range cookbooks {
		fmt.Fprintf(&b, "- %q by %s\n", c.Title, c.Author)
	}
	b.WriteString("\nThey currently have these ingredients available in their kitchen:\n")
	b.WriteString(strings.Join(availableIngredients, ", "))
	b.WriteString("\n")
	if len(dietaryPreferences) > 0 {
		fmt.Fprintf(&b, "\nDietary preferences/restrictions: %s\n", strings.Join(dietaryPreferences, ", "))
	}
	b.WriteString(`
Based on your knowledge of these cookbooks and their recipes, suggest up to 6 recipes from these specific cookbooks that the user could make with the ingredients they have (or are close to having).

For each recipe, respond in this exact JSON format (as a JSON array):
[
  {
    "title": "Recipe Name",
    "cookbookTitle": "Exact Cookbook Title",
    "cookbookAuthor": "Author Name",
    "matchedIngredients": ["ingredient1", "ingredient2"],
    "missingIngredients": ["ingredient3"],
    "matchPercentage": 85,
    "description": "Brief appetizing description of the dish",
    "estimatedTime": "30 min",
    "pageNumber": "p. 142 (approximate)"
  }
]

Important:
- Only suggest recipes that actually exist in or are typical of these cookbooks
- matchPercentage should reflect how many of the recipe's ingredients the user already has
- Sort by matchPercentage descending (best matches first)
- Keep descriptions concise and appetizing
- Return ONLY the JSON array, no other text`)
	return b.String()
}

var youtubeRE = regexp.MustCompile(`youtu\.?be`)

func extractRecipePrompt(url string) string {
	sourceHint := "Analyze this recipe page to extract the full recipe."
	if youtubeRE.MatchString(url) {
		sourceHint = "This is a YouTube cooking video. Analyze the video page, title, description, and any available transcript to extract the full recipe."
	}

	return fmt.Sprintf(`You are a professional chef and recipe analyst. A user wants to cook a recipe they found at this URL:

%s

%s

Extract the complete recipe and create a grocery shopping list.

You MUST respond with ONLY valid JSON in this exact format (no markdown, no extra text):
{
  "recipe": {
    "title": "Recipe Name",
    "sourceUrl": "%s",
    "sourceTitle": "Name of the channel/blog/creator",
    "description": "Brief description of the dish",
    "servings": 4,
    "prepTime": "15 min",
    "cookTime": "30 min",
    "totalTime": "45 min",
    "ingredients": [
      {
        "name": "Ingredient Name",
        "quantity": "2 cups",
        "category": "Produce",
        "notes": "diced"
      }
    ],
    "instructions": [
      "Step 1 description",
      "Step 2 description"
    ],
    "tips": ["Helpful tip 1"]
  },
  "groceryList": [
    {
      "name": "Item Name",
      "quantity": "2 lbs",
      "category": "Produce",
      "notes": "optional note"
    }
  ],
  "totalEstimatedCost": "$25-35"
}

Rules:
- Consolidate duplicate ingredients in the groceryList and use practical grocery quantities
- Categories must be one of: Produce, Meat & Seafood, Dairy & Eggs, Bakery, Pantry Staples, Spices & Seasonings, Frozen, Beverages, Other
- Be specific with quantities for grocery shopping
- Output ONLY the JSON object, nothing else`, url, sourceHint, url)
}

func combineListsPrompt(urls []string) string {
	var list strings.Builder
	for i, u := range urls {
		fmt.Fprintf(&list, "%d. %s\n", i+1, u)
	}

	return fmt.Sprintf(`You are a professional chef and meal-prep expert. A user wants to cook recipes from ALL of the following URLs this week:

%s
Please analyze each URL (they may be YouTube cooking videos, food blogs, or recipe websites). Extract the recipes and create ONE COMBINED, DEDUPLICATED grocery shopping list that covers ALL recipes.

You MUST respond with ONLY valid JSON in this exact format (no markdown, no extra text):
{
  "recipes": [
    {
      "title": "Recipe Name",
      "sourceUrl": "the url",
      "sourceTitle": "Creator name",
      "description": "Brief description",
      "servings": 4,
      "totalTime": "45 min"
    }
  ],
  "combinedList": [
    {
      "name": "Item Name",
      "quantity": "Combined quantity for all recipes",
      "category": "Produce",
      "notes": "Used in: Recipe 1, Recipe 3"
    }
  ],
  "totalEstimatedCost": "$50-70"
}

Rules:
- COMBINE duplicate ingredients (e.g., if two recipes need onions, add the amounts together)
- Use practical grocery store quantities
- In notes, indicate which recipes use this ingredient
- Categories: Produce, Meat & Seafood, Dairy & Eggs, Bakery, Pantry Staples, Spices & Seasonings, Frozen, Beverages, Other
- Output ONLY the JSON object, nothing else`, list.String())
}

func recipeQueryPrompt(query, cuisine string, pantryIngredients []string) string {
	var notes strings.Builder
	if cuisine != "" && cuisine != "All" {
		fmt.Fprintf(&notes, "\nThe user prefers %s cuisine.", cuisine)
	}
	if len(pantryIngredients) > 0 {
		fmt.Fprintf(&notes, "\nThe user already has these ingredients in their pantry: %s. Prefer recipes that use these.", strings.Join(pantryIngredients, ", "))
	}

	return fmt.Sprintf(`You are a world-class chef and recipe recommender. A user is searching for recipes.

User query: %q
%s

Suggest 4-6 recipes that match the query. For each recipe, provide complete details.

Respond with ONLY a JSON array in this exact format:
[
  {
    "title": "Recipe Name",
    "description": "A brief appetizing description",
    "cuisine": "Italian",
    "estimatedTime": "30 min",
    "difficulty": "Easy",
    "servings": 4,
    "ingredients": [
      { "name": "Ingredient", "quantity": "2 cups", "category": "Produce" }
    ],
    "instructions": ["Step 1", "Step 2"],
    "nutritionEstimate": { "calories": 450, "protein": 25, "carbs": 50, "fat": 15 },
    "tags": ["healthy", "quick", "one-pot"],
    "matchScore": 92
  }
]

Rules:
- matchScore (0-100) reflects how well the recipe matches the query and available ingredients
- difficulty: Easy, Medium, or Hard
- Categories: Produce, Meat & Seafood, Dairy & Eggs, Bakery, Pantry Staples, Spices & Seasonings, Frozen, Beverages, Other
- nutrition values in grams (except calories)
- Sort by matchScore descending
- Return ONLY the JSON array`, query, notes.String())
}

func nutritionInsightsPrompt(recentMeals []models.NutritionEntry, profile *models.UserProfile) string {
	var meals strings.Builder
	for _, m := range recentMeals {
		fmt.Fprintf(&meals, "- %s: %d cal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
			m.RecipeName, m.Calories, m.Protein, m.Carbs, m.Fat)
	}

	var profileNote string
	if profile != nil {
		profileNote = fmt.Sprintf("\nUser profile: Age %d, Weight %.0fkg, Height %.0fcm, Goal: %s, Diet: %s",
			profile.Age, profile.Weight, profile.Height, profile.FitnessGoal, profile.DietPreference)
	}

	return fmt.Sprintf(`You are a nutritionist. Analyze this user's recent meals and give personalized insights.

Recent meals:
%s%s

Respond with ONLY valid JSON:
{
  "summary": "One sentence overall nutrition summary",
  "tips": ["Actionable tip 1", "Actionable tip 2", "Actionable tip 3"],
  "warnings": ["Any nutritional concerns"],
  "dailyScore": 75,
  "macroBreakdown": { "protein": 25, "carbs": 50, "fat": 20, "fiber": 5 },
  "recommendations": ["Specific meal/food recommendations"]
}

Rules:
- dailyScore is 0-100 (how healthy the overall intake is)
- macroBreakdown percentages should sum to 100
- Keep tips practical and actionable
- warnings only if there are genuine concerns (empty array otherwise)
- Return ONLY the JSON`, meals.String(), profileNote)
}

func quickIdeasPrompt(pantryIngredients []string) string {
	return fmt.Sprintf(`You are a creative home chef. The user has these ingredients in their pantry:
%s

Suggest 3 quick, easy recipes they can make RIGHT NOW with these ingredients (they may not need all of them).

Respond with ONLY a JSON array:
[
  {
    "title": "Recipe Name",
    "description": "Brief appetizing description",
    "time": "20 min",
    "ingredients": ["ingredient1", "ingredient2"]
  }
]`, strings.Join(pantryIngredients, ", "))
}

func recipeImagePrompt(title, description string) string {
	descHint := ""
	if description != "" {
		descHint = fmt.Sprintf(" The dish is described as: %s.", description)
	}
	return fmt.Sprintf(`A photorealistic, appetizing, top-down food photography shot of %q plated beautifully on a modern ceramic dish.%s Soft natural lighting, shallow depth of field, warm tones, clean background, professional food photography style. No text or watermarks.`, title, descHint)
}

const transcribeInstruction = "Transcribe this audio clip. Return ONLY the spoken text, nothing else. " +
	"If the audio is about food or cooking, keep the exact words. If no speech is detected, return an empty string."

const chatSystemInstruction = `You are CulinaMind AI — a friendly, knowledgeable cooking and food assistant inside a mobile recipe app. Your personality is warm, encouraging, and concise.

You can help users with:
• Recipe suggestions and step-by-step cooking instructions
• Ingredient substitutions and cooking tips
• Nutrition advice and dietary information
• Meal planning and food storage guidance
• Cuisine-specific techniques (Indian, Italian, Mexican, Asian, etc.)

Rules:
- Keep answers concise and mobile-friendly (short paragraphs, bullet points).
- Use emojis sparingly to keep it fun.
- If a question is completely unrelated to food/cooking, politely redirect.
- When suggesting a recipe, include estimated time and difficulty.
- Format ingredient lists and steps clearly.`
