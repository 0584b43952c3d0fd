package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvDatabasePath names the environment variable overriding the database
// file location.
const EnvDatabasePath = "UNICARONAS_DATABASE"

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; a missing file is not
// an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
