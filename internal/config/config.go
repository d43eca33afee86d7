// Package config loads the process configuration once at startup into an
// immutable value that is passed explicitly to every component.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"inventaris/internal/models"
)

// Config is the complete, immutable process configuration.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration

	// RabbitMQURL enables catalog event publishing when non-empty.
	RabbitMQURL string

	// CatalogMode selects the authorization policy: models.CatalogModeOwner
	// or models.CatalogModeShared.
	CatalogMode string

	LogLevel  string
	LogPretty bool
}

// Load reads configuration from environment variables with viper defaults.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=inventaris port=5432 sslmode=disable")
	viper.SetDefault("JWT_ISSUER", "inventaris")
	viper.SetDefault("JWT_AUDIENCE", "inventaris-api")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("CATALOG_MODE", models.CatalogModeOwner)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:        viper.GetString("APP_PORT"),
		DatabaseDriver: viper.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    viper.GetString("DATABASE_DSN"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTIssuer:      viper.GetString("JWT_ISSUER"),
		JWTAudience:    viper.GetString("JWT_AUDIENCE"),
		TokenTTL:       viper.GetDuration("TOKEN_TTL"),
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
		CatalogMode:    viper.GetString("CATALOG_MODE"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		LogPretty:      viper.GetBool("LOG_PRETTY"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.CatalogMode != models.CatalogModeOwner && cfg.CatalogMode != models.CatalogModeShared {
		return nil, fmt.Errorf("CATALOG_MODE must be %q or %q, got %q",
			models.CatalogModeOwner, models.CatalogModeShared, cfg.CatalogMode)
	}

	return cfg, nil
}
