package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a configuration value by key. A local .env file takes
// effect if present; otherwise values come from the environment.
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}
