package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	DBName   string
	Port     string
	GinMode  string
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		MongoURI: getEnv("MONGO_URI", ""),
		DBName:   getEnv("DB_NAME", "portfolio"),
		Port:     getEnv("PORT", "8000"),
		GinMode:  getEnv("GIN_MODE", "debug"),
	}

	// MONGO_URI is optional: the service can boot without a store and the
	// diagnostics endpoint reports the missing connection.
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
