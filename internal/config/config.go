package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI. An empty API key is allowed: the resolver then serves
	// scripted keyword answers only.
	GeminiAPIKey string
	GeminiModel  string

	// Frontend
	FrontendURL string

	// Chatbot endpoint rate limit (requests per minute per IP)
	ChatbotRateLimit int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Env:              getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		ChatbotRateLimit: getEnvAsIntOrDefault("CHATBOT_RATE_LIMIT", 30),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
