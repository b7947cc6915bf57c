package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	var errors ValidationErrors

	if errs := validateLogging(&cfg.Logging); len(errs) > 0 {
		errors = append(errors, errs...)
	}

	if errs := validateResolver(&cfg.Resolver); len(errs) > 0 {
		errors = append(errors, errs...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// validateLogging validates logging configuration
func validateLogging(cfg *LoggingConfig) ValidationErrors {
	var errors ValidationErrors

	validLevels := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if !contains(validLevels, strings.ToLower(cfg.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   cfg.Level,
			Message: fmt.Sprintf("must be one of: %v", validLevels),
		})
	}

	validColor := []string{"auto", "always", "never"}
	if !contains(validColor, strings.ToLower(cfg.Color)) {
		errors = append(errors, ValidationError{
			Field:   "logging.color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("must be one of: %v", validColor),
		})
	}

	return errors
}

// validateResolver validates resolver configuration
func validateResolver(cfg *ResolverConfig) ValidationErrors {
	var errors ValidationErrors

	if !cfg.StrictEnumTags {
		errors = append(errors, ValidationError{
			Field:   "resolver.strict_enum_tags",
			Value:   cfg.StrictEnumTags,
			Message: "relaxed enum-tag checking is not yet implemented; must be true",
		})
	}

	return errors
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
