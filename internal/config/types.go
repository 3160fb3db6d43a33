// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/invowk/porter/pkg/types"
)

const (
	// LogLevelDebug traces every lookup.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn only reports problems.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError only reports failures.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidHookConfig is the sentinel error wrapped by InvalidHookConfigError.
	ErrInvalidHookConfig = errors.New("invalid hook config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
	ErrInvalidLoadOptions = errors.New("invalid load options")
	// ErrHookSourceMissing is returned when a hook sets neither env_var nor map.
	ErrHookSourceMissing = errors.New("hook needs exactly one of env_var or map")
	// ErrHookSourceAmbiguous is returned when a hook sets both env_var and map.
	ErrHookSourceAmbiguous = errors.New("hook sets both env_var and map")
)

type (
	// LogLevel is the minimum level the CLI logger prints.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidHookConfigError is returned when a HookConfig has invalid fields.
	// It wraps ErrInvalidHookConfig and carries the hook's position.
	InvalidHookConfigError struct {
		Index       int
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// InvalidLoadOptionsError is returned when LoadOptions has invalid paths.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}

	// HookConfig describes one hook. Unset delimiters fall back to the
	// mapping format defaults.
	HookConfig struct {
		// EnvVar names the environment variable holding the mapping.
		EnvVar string `json:"env_var,omitempty" mapstructure:"env_var" toml:"env_var,omitempty"`
		// Map is an inline mapping string.
		Map string `json:"map,omitempty" mapstructure:"map" toml:"map,omitempty"`
		// EntrySplit separates entries (default ":").
		EntrySplit types.Delimiter `json:"entry_split,omitempty" mapstructure:"entry_split" toml:"entry_split,omitempty"`
		// KeyValueSplit separates names from the location (default "=").
		KeyValueSplit types.Delimiter `json:"key_value_split,omitempty" mapstructure:"key_value_split" toml:"key_value_split,omitempty"`
		// NameSplit separates names sharing a location (default ",", off
		// when that equals another delimiter).
		NameSplit types.Delimiter `json:"name_split,omitempty" mapstructure:"name_split" toml:"name_split,omitempty"`
		// Root grafts the hook's entries below a virtual package.
		Root types.ModuleName `json:"root,omitempty" mapstructure:"root" toml:"root,omitempty"`
	}

	// Config holds the application configuration.
	Config struct {
		// Hooks are consulted in order.
		Hooks []HookConfig `json:"hooks" mapstructure:"hooks" toml:"hooks"`
		// SearchPath is the default search used when no hook handles a name.
		SearchPath []types.FilesystemPath `json:"search_path" mapstructure:"search_path" toml:"search_path"`
		// LogLevel sets the CLI logger level.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level" toml:"log_level"`

		// Source is the file the configuration was read from, if any.
		Source string `json:"-" mapstructure:"-" toml:"-"`
	}
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Hooks:      []HookConfig{},
		SearchPath: []types.FilesystemPath{},
		LogLevel:   LogLevelInfo,
	}
}

// Validate returns an error if the level is not one of the known levels.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Validate checks field-level constraints the mapping parser does not cover.
func (h HookConfig) Validate(index int) error {
	var errs []error
	switch {
	case h.EnvVar == "" && h.Map == "":
		errs = append(errs, ErrHookSourceMissing)
	case h.EnvVar != "" && h.Map != "":
		errs = append(errs, ErrHookSourceAmbiguous)
	}
	if h.Root != "" {
		if err := h.Root.ValidateFlat(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &InvalidHookConfigError{Index: index, FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidHookConfigError.
func (e *InvalidHookConfigError) Error() string {
	return fmt.Sprintf("hooks[%d]: %v", e.Index, errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidHookConfig and the field errors.
func (e *InvalidHookConfigError) Unwrap() []error {
	return append([]error{ErrInvalidHookConfig}, e.FieldErrors...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	var errs []error
	for i, h := range c.Hooks {
		if err := h.Validate(i); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range c.SearchPath {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.LogLevel.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and every field error, so errors.Is finds
// both the umbrella sentinel and specific causes.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidLoadOptionsError.
func (e *InvalidLoadOptionsError) Error() string {
	return fmt.Sprintf("invalid load options: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidLoadOptions for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }
