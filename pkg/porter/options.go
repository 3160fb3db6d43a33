// SPDX-License-Identifier: MPL-2.0

package porter

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/invowk/porter/pkg/pathmap"
	"github.com/invowk/porter/pkg/types"
)

type (
	// Environment looks up environment variables. FromEnv uses the process
	// environment unless WithEnvironment supplies another source.
	Environment interface {
		LookupEnv(key string) (string, bool)
	}

	// EnvironmentFunc adapts a function to Environment.
	EnvironmentFunc func(key string) (string, bool)

	// EnvironmentMap is a fixed Environment, mostly useful in tests.
	EnvironmentMap map[string]string

	// Option configures hook construction.
	Option func(*settings)

	settings struct {
		root    types.ModuleName
		logger  *log.Logger
		parse   []pathmap.Option
		environ Environment
	}

	processEnvironment struct{}
)

// LookupEnv implements Environment.
func (f EnvironmentFunc) LookupEnv(key string) (string, bool) { return f(key) }

// LookupEnv implements Environment.
func (m EnvironmentMap) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (processEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// WithRoot grafts every table entry below root. An empty root disables grafting.
func WithRoot(root types.ModuleName) Option {
	return func(s *settings) { s.root = root }
}

// WithLogger enables debug tracing of lookups.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithEntrySplit sets the entry delimiter used by FromString and FromEnv.
func WithEntrySplit(d types.Delimiter) Option {
	return func(s *settings) { s.parse = append(s.parse, pathmap.WithEntrySplit(d)) }
}

// WithKeyValueSplit sets the name/location delimiter used by FromString and FromEnv.
func WithKeyValueSplit(d types.Delimiter) Option {
	return func(s *settings) { s.parse = append(s.parse, pathmap.WithKeyValueSplit(d)) }
}

// WithNameSplit sets the name-list delimiter used by FromString and FromEnv.
func WithNameSplit(d types.Delimiter) Option {
	return func(s *settings) { s.parse = append(s.parse, pathmap.WithNameSplit(d)) }
}

// WithEnvironment replaces the process environment for FromEnv.
func WithEnvironment(env Environment) Option {
	return func(s *settings) { s.environ = env }
}

func newSettings(opts []Option) settings {
	s := settings{environ: processEnvironment{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
