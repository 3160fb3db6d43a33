// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/invowk/porter/pkg/fspath"
	"github.com/invowk/porter/pkg/types"
)

// EnvOverrides are the PORTER_* variables that take precedence over the file.
type EnvOverrides struct {
	// ConfigFile is used when no --config flag is given.
	ConfigFile string `env:"PORTER_CONFIG"`
	// LogLevel replaces log_level.
	LogLevel string `env:"PORTER_LOG_LEVEL"`
	// MapVar appends a hook reading its mapping from this variable.
	MapVar string `env:"PORTER_MAP_VAR"`
	// Root is the root namespace of the MapVar hook.
	Root string `env:"PORTER_ROOT"`
	// SearchPath replaces search_path; OS list separator.
	SearchPath string `env:"PORTER_SEARCH_PATH"`
}

// ParseEnv reads overrides from environ, or from the process environment
// when environ is nil.
func ParseEnv(environ map[string]string) (EnvOverrides, error) {
	var o EnvOverrides
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// Apply merges the overrides into cfg.
func (o EnvOverrides) Apply(cfg *Config) {
	if o.LogLevel != "" {
		cfg.LogLevel = LogLevel(o.LogLevel)
	}
	if o.SearchPath != "" {
		cfg.SearchPath = fspath.SplitList(o.SearchPath)
	}
	if o.MapVar != "" {
		cfg.Hooks = append(cfg.Hooks, HookConfig{EnvVar: o.MapVar, Root: types.ModuleName(o.Root)})
	}
}
