package infra

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup. Generation
// constants (temperature, token budget, day cap) are code constants and do
// not appear here.
type Config struct {
	Port string

	LLMProvider      string
	OpenRouterAPIKey string
	OpenRouterModel  string
	SiteURL          string
	SiteName         string
	GeminiAPIKey     string
	GeminiModel      string

	QlooAPIKey  string
	QlooBaseURL string

	ArchivePath string
}

func LoadConfig() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:             getEnvWithDefault("PORT", "8080"),
		LLMProvider:      getEnvWithDefault("LLM_PROVIDER", "openrouter"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),
		SiteURL:          getEnvWithDefault("SITE_URL", "https://your-app.com"),
		SiteName:         getEnvWithDefault("SITE_NAME", "VibeVoyager"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		QlooAPIKey:       os.Getenv("QLOO_API_KEY"),
		QlooBaseURL:      getEnvWithDefault("QLOO_BASE_URL", "https://hackathon.api.qloo.com"),
		ArchivePath:      getEnvWithDefault("ARCHIVE_PATH", "data/itineraries.json"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
