package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application.
type Config struct {
	Addr         string
	Env          string
	ContentDir   string
	SiteFile     string
	ExportDir    string
	HotReload    bool
	APIRateLimit float64
}

const (
	defaultAddr         = ":8080"
	defaultEnv          = "development"
	defaultContentDir   = "content"
	defaultExportDir    = "public"
	defaultAPIRateLimit = 10
)

// New loads configuration from environment variables, reading a .env file first if one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function, applying defaults for unset keys.
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		Addr:         valueOr(getenv("APP_ADDR"), defaultAddr),
		Env:          strings.ToLower(valueOr(getenv("APP_ENV"), defaultEnv)),
		ContentDir:   valueOr(getenv("CONTENT_DIR"), defaultContentDir),
		SiteFile:     getenv("SITE_FILE"),
		ExportDir:    valueOr(getenv("EXPORT_DIR"), defaultExportDir),
		APIRateLimit: defaultAPIRateLimit,
	}

	// Hot reload follows the environment unless set explicitly.
	cfg.HotReload = !cfg.IsProduction()
	if v := getenv("HOT_RELOAD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HotReload = b
		} else {
			log.Printf("Ignoring invalid HOT_RELOAD value %q", v)
		}
	}

	if v := getenv("API_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.APIRateLimit = f
		} else {
			log.Printf("Ignoring invalid API_RATE_LIMIT value %q", v)
		}
	}

	return cfg
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
