// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LogConfig selects logger behavior.
type LogConfig struct {
	Level       string
	Environment string
}

// Config is the full server configuration.
type Config struct {
	ServiceName string
	Addr        string
	BaseURL     string
	DBPath      string
	UploadsDir  string
	CartPath    string
	Log         LogConfig
}

// Load reads the environment. Missing variables fall back to local
// development defaults. A .env file, when present, is loaded first.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "lojinha"),
		Addr:        getEnv("ADDR", ":3001"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3001"),
		DBPath:      getEnv("DB_PATH", "db.json"),
		UploadsDir:  getEnv("UPLOADS_DIR", "public/uploads"),
		CartPath:    getEnv("CART_PATH", "cart.json"),
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Environment: getEnv("ENV", "development"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
