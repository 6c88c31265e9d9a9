package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RecipesPath string `validate:"required"` // hcl file or directory
	InputsPath  string `validate:"required"` // json, hcl or yaml snapshot
	Step        string `validate:"required"`

	LogFormat string `default:"json" validate:"oneof=text json"`
	LogLevel  string `default:"info" validate:"oneof=debug info warn error"`
}

// NewConfig fills in defaults for unset fields and validates the result.
func NewConfig(cfg Config) (*Config, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply default values: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var errMessages []string
			for _, fieldErr := range validationErrors {
				errMessages = append(errMessages, fmt.Sprintf(
					"field '%s' failed validation (rule: %s)",
					fieldErr.Field(),
					fieldErr.Tag(),
				))
			}
			return nil, fmt.Errorf("config validation failed: %s", strings.Join(errMessages, "; "))
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
