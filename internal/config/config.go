// Package config loads runtime configuration from the environment.
//
// A .env file in the working directory is loaded first when present;
// explicit environment variables win over file values. Every setting has a
// default, so an empty environment is valid.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/shoji1021/classroom/internal/form"
	"github.com/shoji1021/classroom/internal/parser"
	"github.com/shoji1021/classroom/internal/storage"
)

// Config carries the runtime settings shared by the CLI and the server
type Config struct {
	FormURL       string
	DataDir       string
	ReferenceYear int
	Port          string
}

// Load reads configuration from .env and the environment
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough
	_ = godotenv.Load()

	cfg := &Config{
		FormURL:       getEnv("FORM_URL", form.DefaultFormURL),
		DataDir:       getEnv("OUTPUT_DIR", storage.DefaultDataDir),
		ReferenceYear: parser.DefaultReferenceYear,
		Port:          getEnv("PORT", "8080"),
	}

	if v := os.Getenv("REFERENCE_YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing REFERENCE_YEAR: %w", err)
		}
		cfg.ReferenceYear = year
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
