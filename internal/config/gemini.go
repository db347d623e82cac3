package config

import (
	"log"
	"os"
)

const (
	defaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-2.5-flash"
)

// GeminiConfig holds the settings for the Gemini text-generation API.
type GeminiConfig struct {
	APIKey string
	APIURL string
	Model  string
}

// NewGeminiConfig reads the Gemini settings from the environment. A missing
// API key is not fatal here: the content service reports it as a
// configuration error on the first generation attempt, so the dashboard can
// show the operator what is wrong instead of the process refusing to start.
func NewGeminiConfig() *GeminiConfig {
	apiKey := os.Getenv("GEMINI_API_KEY")
	apiURL := os.Getenv("GEMINI_API_URL")
	model := os.Getenv("GEMINI_MODEL")
	if apiURL == "" {
		apiURL = defaultGeminiURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set; alert generation will fail until it is configured")
	}
	return &GeminiConfig{APIKey: apiKey, APIURL: apiURL, Model: model}
}
