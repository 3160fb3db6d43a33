// SPDX-License-Identifier: MPL-2.0

package porter

import (
	"fmt"

	"github.com/invowk/porter/pkg/types"
)

const (
	// OutcomeNotHandled defers the name to the host's default search.
	OutcomeNotHandled OutcomeKind = iota
	// OutcomeDirectory narrows the search for the module to one directory.
	OutcomeDirectory
	// OutcomeVirtualNamespace asks the host to synthesize a locationless package.
	OutcomeVirtualNamespace
)

type (
	// OutcomeKind tags an Outcome.
	OutcomeKind int

	// Outcome is the answer of a Finder for one module name.
	Outcome struct {
		Kind OutcomeKind
		// Name is the name the host registers the module under. For grafted
		// lookups this is the dotted name that was asked for ("root.spam").
		Name types.ModuleName
		// Candidate is the name to look for inside Location ("spam").
		Candidate types.ModuleName
		// Location is the single directory to search. Empty unless Kind is
		// OutcomeDirectory.
		Location types.FilesystemPath
	}

	// Finder is the contract the host pipeline consumes. parentPath is the
	// package search path of the parent module when the host has one; hooks
	// backed by a table do not need it.
	Finder interface {
		Find(name types.ModuleName, parentPath []types.FilesystemPath) Outcome
	}
)

// NotHandled returns the soft-miss outcome.
func NotHandled() Outcome { return Outcome{Kind: OutcomeNotHandled} }

// Handled reports whether the outcome claims the module.
func (o Outcome) Handled() bool { return o.Kind != OutcomeNotHandled }

// String returns a short, stable description used in logs and CLI output.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeDirectory:
		if o.Candidate != o.Name {
			return fmt.Sprintf("%s -> %s (as %s)", o.Name, o.Location, o.Candidate)
		}
		return fmt.Sprintf("%s -> %s", o.Name, o.Location)
	case OutcomeVirtualNamespace:
		return fmt.Sprintf("%s -> virtual namespace", o.Name)
	default:
		return "not handled"
	}
}

// String returns the kind name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNotHandled:
		return "not-handled"
	case OutcomeDirectory:
		return "directory"
	case OutcomeVirtualNamespace:
		return "virtual-namespace"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}
