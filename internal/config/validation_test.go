package config

import (
	"strings"
	"testing"
)

func TestValidateValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	err := Validate(cfg)
	if err != nil {
		t.Errorf("Valid config should not have validation errors: %v", err)
	}
}

func TestValidateInvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "invalid"

	err := Validate(cfg)
	if err == nil {
		t.Error("Expected validation error for invalid log level")
	}

	if !containsError(err, "must be one of") {
		t.Errorf("Expected 'must be one of' error, got: %v", err)
	}
}

func TestValidateInvalidColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Color = "maybe"

	err := Validate(cfg)
	if err == nil {
		t.Error("Expected validation error for invalid color setting")
	}
}

func TestValidateRelaxedEnumTagsRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolver.StrictEnumTags = false

	err := Validate(cfg)
	if err == nil {
		t.Error("Expected validation error for strict_enum_tags=false")
	}

	if !containsError(err, "relaxed enum-tag checking") {
		t.Errorf("Expected relaxed enum-tag error, got: %v", err)
	}
}

func TestValidateMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "invalid"
	cfg.Resolver.StrictEnumTags = false

	err := Validate(cfg)
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 validation errors, got %d: %v", len(errs), errs)
	}
}

func containsError(err error, substr string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), substr)
}
