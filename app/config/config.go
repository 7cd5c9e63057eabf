package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Admin credentials and the bearer token handed out on login. These are
// compiled-in constants for the single operator this service has; they are
// not a security-grade auth mechanism. Deployments needing real multi-user
// auth must replace the admin gate, not extend it.
const (
	AdminUsername = "admin"
	AdminPassword = "valencia2025"
	AdminToken    = "admin_token_valencia"
)

// Config holds the environment-driven settings for the service.
type Config struct {
	MongoURL   string
	DBName     string
	ListenAddr string
}

// Load reads configuration from the environment, falling back to local
// defaults. A .env file is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURL:   getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:     getEnv("DB_NAME", "valencia_events"),
		ListenAddr: ":" + getEnv("PORT", "8000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
