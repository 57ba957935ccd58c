package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domainvalidation "github.com/hH-13/tilde/internal/domain/validation"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validateConfig performs comprehensive validation of configuration values.
// Problems with the command and script tables are reported as a
// *validation.ConfigError joined to the other problems.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateStruct(config)...)
	validationErrors = append(validationErrors, validateSources(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateHelpKey(config)...)

	var fieldErr error
	if len(validationErrors) > 0 {
		fieldErr = fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	tablesErr := domainvalidation.ValidateTables(
		config.CommandTable(),
		config.ScriptTable(),
		config.Query.SearchDelimiter,
		config.Query.PathDelimiter,
	)

	return errors.Join(fieldErr, tablesErr)
}

func validateStruct(config *Config) []string {
	err := structValidator.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, describeFieldError(fe))
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "url":
		return fmt.Sprintf("%s must be an absolute URL, got %q", field, fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex colour, got %q", field, fe.Value())
	case "gte", "gt", "lte", "lt", "min":
		return fmt.Sprintf("%s must be %s %s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}

func validateSources(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.Suggestions.Sources))
	for _, s := range config.Suggestions.Sources {
		if seen[s.Name] {
			validationErrors = append(validationErrors,
				fmt.Sprintf("suggestions.sources lists %q more than once", s.Name))
		}
		seen[s.Name] = true
	}
	return validationErrors
}

func validateHistory(config *Config) []string {
	if config.History.Backend == HistoryBackendFile && config.History.Path == "" {
		return []string{"history.path is required for the file backend"}
	}
	return nil
}

func validateHelpKey(config *Config) []string {
	if strings.TrimSpace(config.HelpKey) != config.HelpKey {
		return []string{"help_key cannot have surrounding whitespace"}
	}
	return nil
}
