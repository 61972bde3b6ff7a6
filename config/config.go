package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codingconcepts/env"
	"github.com/subosito/gotenv"
)

// DefaultBaseURL is the Spoonacular recipes API root.
const DefaultBaseURL = "https://api.spoonacular.com/recipes"

// Config holds all configuration for the recipe finder
type Config struct {
	// Recipe API configuration
	APIKey     string        `env:"SPOONACULAR_API_KEY"`
	APIKeyFile string        `env:"SPOONACULAR_API_KEY_FILE"`
	BaseURL    string        `env:"SPOONACULAR_BASE_URL"`
	Timeout    time.Duration `env:"RECIPE_API_TIMEOUT" default:"0s"`

	// Server configuration (form variant only)
	ServerHost  string   `env:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort  string   `env:"SERVER_PORT" default:"8080"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch Environment(os.Getenv("ENV")) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// GinMode maps the environment onto a gin mode name.
func (e Environment) GinMode() string {
	switch e {
	case Production:
		return "release"
	case Test, CI:
		return "test"
	default:
		return "debug"
	}
}

// LoadConfig reads an optional .env file, then the process environment, then
// falls back to a Docker secret for the API key.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.APIKey == "" {
		key, err := readAPIKey(cfg.APIKeyFile)
		if err != nil {
			return nil, err
		}
		cfg.APIKey = key
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address of the form server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// loadDotEnv applies ENV_FILE (default .env) without overriding variables that are already set.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return gotenv.Load(path)
}

// readAPIKey reads the key from an explicit file, or from the secrets directory
func readAPIKey(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("API key file is empty")
		}
		return key, nil
	}
	return readSecret("spoonacular_api_key"), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
