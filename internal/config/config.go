package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURL     string
	JWTSecret    string
	AppEnv       string
	WgerAPIURL   string
	WgerAPIKey   string
	EdamamAPIURL string
	EdamamAppID  string
	EdamamAppKey string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURL:     getEnv("MONGO_URL", ""),
		JWTSecret:    jwtSecret,
		AppEnv:       normalizeEnv(getEnv("APP_ENV", "production")),
		WgerAPIURL:   getEnv("WGER_API_URL", "https://wger.de/api/v2"),
		WgerAPIKey:   getEnv("WGER_API_KEY", ""),
		EdamamAPIURL: getEnv("EDAMAM_API_URL", "https://api.edamam.com"),
		EdamamAppID:  getEnv("EDAMAM_APP_ID", ""),
		EdamamAppKey: getEnv("EDAMAM_APP_KEY", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
