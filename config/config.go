package config

import (
	"os"
)

// Config holds all runtime configuration sourced from the environment.
// Missing API keys are passed through as empty strings; the providers
// reject those with their own auth errors.
type Config struct {
	Port                  string
	DatabaseURL           string
	GeminiAPIKey          string
	RevenueCatAPIKey      string
	RevenueCatWebhookAuth string
}

// Model identifiers for the Gemini API.
const (
	ModelFlash = "gemini-3-flash-preview"
	ModelPro   = "gemini-3-pro-preview"
	ModelImage = "gemini-3-pro-image-preview"
)

// EntitlementID is the single entitlement key gating Pro features.
const EntitlementID = "AIF Pro"

func Load() *Config {
	return &Config{
		Port:                  getEnv("PORT", "3000"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		RevenueCatAPIKey:      getEnv("REVENUECAT_API_KEY", ""),
		RevenueCatWebhookAuth: getEnv("REVENUECAT_WEBHOOK_AUTH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
