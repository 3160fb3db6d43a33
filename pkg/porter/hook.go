// SPDX-License-Identifier: MPL-2.0

package porter

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/invowk/porter/pkg/pathmap"
	"github.com/invowk/porter/pkg/types"
)

// Hook answers import requests from one table. It is immutable and safe for
// concurrent use.
type Hook struct {
	table  *pathmap.Table
	graft  Grafter
	logger *log.Logger
}

// New wraps table in a Hook. With WithRoot, the root must be a flat name that
// is not itself a table entry.
func New(table *pathmap.Table, opts ...Option) (*Hook, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	s := newSettings(opts)

	if s.root != "" {
		if err := s.root.ValidateFlat(); err != nil {
			return nil, &InvalidRootError{Root: s.root, Cause: err}
		}
		if loc, ok := table.Lookup(s.root); ok {
			return nil, &RootCollisionError{Root: s.root, Location: loc}
		}
	}

	return &Hook{
		table:  table,
		graft:  NewGrafter(s.root),
		logger: s.logger,
	}, nil
}

// FromString parses raw and wraps the result in a Hook.
func FromString(raw string, opts ...Option) (*Hook, error) {
	s := newSettings(opts)
	table, err := pathmap.Parse(raw, s.parse...)
	if err != nil {
		return nil, err
	}
	return New(table, opts...)
}

// FromEnv reads the mapping from the environment variable envVar. An unset
// variable is an EnvVarNotFoundError; a set but malformed one fails like
// FromString.
func FromEnv(envVar string, opts ...Option) (*Hook, error) {
	s := newSettings(opts)
	raw, ok := s.environ.LookupEnv(envVar)
	if !ok {
		return nil, &EnvVarNotFoundError{Name: envVar}
	}
	hook, err := FromString(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", envVar, err)
	}
	return hook, nil
}

// Table returns the underlying table.
func (h *Hook) Table() *pathmap.Table { return h.table }

// Names returns the names the hook resolves, in sorted order. With a root
// they are grafted below it, so "spam" reads "vendor.spam".
func (h *Hook) Names() []types.ModuleName {
	names := h.table.Names()
	for i, n := range names {
		names[i] = h.graft.Graft(n)
	}
	return names
}

// Root returns the configured root namespace, or "".
func (h *Hook) Root() types.ModuleName { return h.graft.Root() }

// Find implements Finder. It never fails: unknown names, names below the root
// that miss the table and malformed dotted names are all OutcomeNotHandled.
func (h *Hook) Find(name types.ModuleName, _ []types.FilesystemPath) Outcome {
	out := h.find(name)
	if h.logger != nil {
		h.logger.Debug("find module", "name", name, "outcome", out.Kind, "location", out.Location)
	}
	return out
}

func (h *Hook) find(name types.ModuleName) Outcome {
	if h.graft.IsRoot(name) {
		return Outcome{Kind: OutcomeVirtualNamespace, Name: name, Candidate: name}
	}

	if candidate, below := h.graft.Strip(name); below {
		if loc, ok := h.table.Lookup(candidate); ok {
			return Outcome{Kind: OutcomeDirectory, Name: name, Candidate: candidate, Location: loc}
		}
		return NotHandled()
	}

	if loc, ok := h.table.Lookup(name); ok {
		return Outcome{Kind: OutcomeDirectory, Name: name, Candidate: name, Location: loc}
	}
	return NotHandled()
}
