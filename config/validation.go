package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration can reach the recipe API
func ValidateConfig(cfg *Config) error {
	var errs []error

	if cfg.APIKey == "" {
		errs = append(errs, ValidationError{
			Field:   "SPOONACULAR_API_KEY",
			Message: "must be set directly, via SPOONACULAR_API_KEY_FILE, or as the spoonacular_api_key secret",
		})
	}

	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "SPOONACULAR_BASE_URL", Message: "must be an absolute URL"})
	}

	if cfg.Timeout < 0 {
		errs = append(errs, ValidationError{Field: "RECIPE_API_TIMEOUT", Message: "must not be negative"})
	}

	return errors.Join(errs...)
}

// ValidateServer checks the listen settings; only the form server needs them.
// Port 0 picks a free port.
func ValidateServer(cfg *Config) error {
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 0 || port > 65535 {
		return ValidationError{Field: "SERVER_PORT", Message: "must be a port number"}
	}
	return nil
}
