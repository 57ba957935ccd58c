package validation

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidConfig matches every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")

	ErrEmptyKey             = errors.New("command key cannot be empty")
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrMissingWildcard      = errors.New("missing wildcard command")
	ErrDuplicateWildcard    = errors.New("more than one wildcard command")
	ErrUnknownScriptCommand = errors.New("script references unknown command")
	ErrScriptCycle          = errors.New("script expansion cycle")
	ErrEmptyScript          = errors.New("script has no commands")
	ErrInvalidURL           = errors.New("command url must be an absolute URL")
	ErrInvalidDelimiter     = errors.New("invalid delimiter")
	ErrInvalidColor         = errors.New("color must be a hex color like #RRGGBB")
)

// Problem is one finding of a table validation.
type Problem struct {
	Err    error
	Detail string
}

func (p Problem) String() string {
	if p.Detail == "" {
		return p.Err.Error()
	}
	return p.Err.Error() + ": " + p.Detail
}

// ConfigError aggregates every problem found in the command and script tables.
type ConfigError struct {
	Problems []Problem
}

func (e *ConfigError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, "  - "+p.String())
	}
	return "config validation failed:\n" + strings.Join(lines, "\n")
}

// Is matches ErrInvalidConfig and any contained sentinel.
func (e *ConfigError) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, p := range e.Problems {
		if errors.Is(p.Err, target) {
			return true
		}
	}
	return false
}

func (e *ConfigError) add(err error, detail string) {
	e.Problems = append(e.Problems, Problem{Err: err, Detail: detail})
}

// orNil returns nil when no problem was recorded.
func (e *ConfigError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
