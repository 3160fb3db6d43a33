// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/invowk/porter/pkg/porter"
)

// Options converts the hook settings into porter options. Unset delimiters
// are left to the mapping defaults.
func (h HookConfig) Options() []porter.Option {
	var opts []porter.Option
	if h.EntrySplit != "" {
		opts = append(opts, porter.WithEntrySplit(h.EntrySplit))
	}
	if h.KeyValueSplit != "" {
		opts = append(opts, porter.WithKeyValueSplit(h.KeyValueSplit))
	}
	if h.NameSplit != "" {
		opts = append(opts, porter.WithNameSplit(h.NameSplit))
	}
	if h.Root != "" {
		opts = append(opts, porter.WithRoot(h.Root))
	}
	return opts
}

// Build constructs the hook. environ supplies env_var lookups; nil uses the
// process environment.
func (h HookConfig) Build(environ porter.Environment, logger *log.Logger) (*porter.Hook, error) {
	opts := h.Options()
	if logger != nil {
		opts = append(opts, porter.WithLogger(logger))
	}
	if h.EnvVar != "" {
		if environ != nil {
			opts = append(opts, porter.WithEnvironment(environ))
		}
		return porter.FromEnv(h.EnvVar, opts...)
	}
	return porter.FromString(h.Map, opts...)
}

// Describe returns a short label for messages: the variable name or "inline map".
func (h HookConfig) Describe() string {
	if h.EnvVar != "" {
		return "$" + h.EnvVar
	}
	return "inline map"
}

// Chain builds every configured hook, in order. The first hook that fails to
// build aborts the chain; nothing is installed half-configured.
func (c *Config) Chain(environ porter.Environment, logger *log.Logger) (*porter.Chain, error) {
	chain := porter.NewChain()
	for i, h := range c.Hooks {
		hook, err := h.Build(environ, logger)
		if err != nil {
			return nil, fmt.Errorf("hooks[%d] (%s): %w", i, h.Describe(), err)
		}
		chain.Register(hook)
	}
	return chain, nil
}
