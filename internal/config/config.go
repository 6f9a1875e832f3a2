package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabasePath   string
	ResetOnStart   bool
	CORSOrigin     string
	AuthRateMax    int
	AuthRateWindow time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		DatabasePath:   getEnv("DATABASE_PATH", "./database.db"),
		ResetOnStart:   getBool("DB_RESET_ON_START", true),
		CORSOrigin:     strings.TrimSpace(os.Getenv("CORS_ORIGIN")),
		AuthRateMax:    getInt("RATE_LIMIT_AUTH_MAX", 60),
		AuthRateWindow: time.Duration(getInt("RATE_LIMIT_AUTH_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
