package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCodePatterns indicates an empty code pattern list
	ErrNoCodePatterns = errors.New("no code patterns configured")

	// ErrEmptyOutputPath indicates a missing output path
	ErrEmptyOutputPath = errors.New("empty output path")

	// ErrNegativeIndent indicates a negative base indentation
	ErrNegativeIndent = errors.New("negative output indent")

	// ErrEmptyFilterPattern indicates a blank filter pattern
	ErrEmptyFilterPattern = errors.New("empty filter pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	if len(cfg.Paths.Code) == 0 {
		return ErrNoCodePatterns
	}

	if cfg.Output.Path == "" {
		return ErrEmptyOutputPath
	}

	if cfg.Output.Indent < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndent, cfg.Output.Indent)
	}

	// An empty pattern would match every name and silently disable the
	// filter; treat it as a configuration mistake.
	for _, pattern := range cfg.Filter.Patterns {
		if pattern == "" {
			return ErrEmptyFilterPattern
		}
	}

	return nil
}
