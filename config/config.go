package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries process-level settings read from the environment.
type Config struct {
	Env     string
	Port    string
	DataDir string
}

// Load reads .env files if present and falls back to defaults. Missing
// files are not an error.
func Load() Config {
	_ = godotenv.Load(".env", ".env.local")

	return Config{
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		DataDir: getenv("DATA_DIR", "data/badger"),
	}
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
