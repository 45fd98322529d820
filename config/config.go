package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// DBResetOnStart drops and recreates the schema with sample data on boot.
	// Development convenience only; defaults to off.
	DBResetOnStart bool
}

func LoadConfig() (*Config, error) {
	// Only effective locally; silently ignored when no .env file exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "5050"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		DBResetOnStart: getEnvBool("DB_RESET_ON_START", false),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
