package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a variable from .env, falling back to the process environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		return os.Getenv(key)
	}
	return os.Getenv(key)
}

func ConfigWithDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
