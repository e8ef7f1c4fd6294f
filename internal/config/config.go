package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Probe   ProbeConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// CatalogConfig locates the backing stores and the static assets.
type CatalogConfig struct {
	DatabasePath string
	CSVPath      string
	StaticDir    string
	ImagesDir    string
}

// ProbeConfig holds the source availability probe settings. An empty cron
// schedule disables the probe.
type ProbeConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Catalog: CatalogConfig{
			DatabasePath: getenvWithDefault("DATABASE_PATH", "data/products.db"),
			CSVPath:      getenvWithDefault("CSV_PATH", "data/products.csv"),
			StaticDir:    getenvWithDefault("STATIC_DIR", "web/static"),
			ImagesDir:    getenvWithDefault("IMAGES_DIR", "web/static/images"),
		},
		Probe: ProbeConfig{
			CronSchedule: os.Getenv("PROBE_CRON_SCHEDULE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.Catalog.DatabasePath == "":
		return errors.New("DATABASE_PATH must be provided")
	case c.Catalog.CSVPath == "":
		return errors.New("CSV_PATH must be provided")
	case c.Catalog.StaticDir == "":
		return errors.New("STATIC_DIR must be provided")
	case c.Catalog.ImagesDir == "":
		return errors.New("IMAGES_DIR must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
