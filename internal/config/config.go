package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"

	// EnvDevelopment represents the local development environment.
	EnvDevelopment = "development"

	// CSPStrict and CSPRelaxed are the supported Content Security Policy modes.
	CSPStrict  = "strict"
	CSPRelaxed = "relaxed"

	minSessionSecretLen = 16
)

// ErrInvalidConfig is returned by Validate when a loaded value is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"5000"`

	// Security settings
	HSTSMaxAge    int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode       string `envconfig:"CSP_MODE" default:"relaxed"`
	SessionSecret string `envconfig:"SESSION_SECRET" required:"true"`

	// Upstream completion API
	TogetherAPIKey  string `envconfig:"TOGETHER_API_KEY" required:"true"`
	TogetherBaseURL string `envconfig:"TOGETHER_BASE_URL" default:"https://api.together.xyz/v1/"`
	TogetherModel   string `envconfig:"TOGETHER_MODEL" default:"mistralai/Mixtral-8x7B-Instruct-v0.1"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values envconfig cannot express as tags.
func (c *Config) Validate() error {
	if c.CSPMode != CSPStrict && c.CSPMode != CSPRelaxed {
		return fmt.Errorf("%w: CSP_MODE must be %q or %q, got %q", ErrInvalidConfig, CSPStrict, CSPRelaxed, c.CSPMode)
	}

	if len(c.SessionSecret) < minSessionSecretLen {
		return fmt.Errorf("%w: SESSION_SECRET must be at least %d bytes", ErrInvalidConfig, minSessionSecretLen)
	}

	if c.TogetherAPIKey == "" {
		return fmt.Errorf("%w: TOGETHER_API_KEY is empty", ErrInvalidConfig)
	}

	return nil
}

// IsProduction reports whether the server runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == CSPStrict {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"img-src 'self' data:; " +
			"connect-src 'self'; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:"
}
