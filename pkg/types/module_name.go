// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ModuleSeparator separates package components in a dotted module name.
const ModuleSeparator = "."

var (
	// ErrInvalidModuleName is the sentinel error wrapped by InvalidModuleNameError.
	ErrInvalidModuleName = errors.New("invalid module name")
	// ErrDottedModuleName is returned by ValidateFlat for names containing a separator.
	ErrDottedModuleName = errors.New("module name must not contain separators")
	// ErrEmptyModuleComponent is returned for dotted names such as "a..b" or "a.".
	ErrEmptyModuleComponent = errors.New("module name has an empty component")
)

type (
	// ModuleName is a module identifier as the host asks for it. Import requests
	// may be dotted ("root.spam.eggs"); mapping entries are always flat ("spam").
	ModuleName string

	// InvalidModuleNameError is returned when a ModuleName is empty, whitespace-only
	// or, for flat names, contains a separator.
	InvalidModuleNameError struct {
		Value  ModuleName
		Reason error
	}
)

// String returns the string representation of the ModuleName.
func (n ModuleName) String() string { return string(n) }

// Validate returns an error if the name is empty or whitespace-only.
func (n ModuleName) Validate() error {
	if strings.TrimSpace(string(n)) == "" {
		return &InvalidModuleNameError{Value: n}
	}
	return nil
}

// ValidateFlat is Validate plus a check that the name has no separator.
func (n ModuleName) ValidateFlat() error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.IsDotted() {
		return &InvalidModuleNameError{Value: n, Reason: ErrDottedModuleName}
	}
	return nil
}

// IsDotted reports whether the name contains a separator.
func (n ModuleName) IsDotted() bool {
	return strings.Contains(string(n), ModuleSeparator)
}

// Parent returns the name without its last component, or "" for a top-level name.
func (n ModuleName) Parent() ModuleName {
	idx := strings.LastIndex(string(n), ModuleSeparator)
	if idx < 0 {
		return ""
	}
	return n[:idx]
}

// Base returns the last component of the name.
func (n ModuleName) Base() ModuleName {
	idx := strings.LastIndex(string(n), ModuleSeparator)
	if idx < 0 {
		return n
	}
	return n[idx+len(ModuleSeparator):]
}

// Lineage returns every prefix of the name, outermost first:
// "a.b.c" yields ["a", "a.b", "a.b.c"].
func (n ModuleName) Lineage() []ModuleName {
	parts := strings.Split(string(n), ModuleSeparator)
	out := make([]ModuleName, 0, len(parts))
	for i := range parts {
		out = append(out, ModuleName(strings.Join(parts[:i+1], ModuleSeparator)))
	}
	return out
}

// Error implements the error interface for InvalidModuleNameError.
func (e *InvalidModuleNameError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("invalid module name %q: %v", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid module name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidModuleName and, when set, the specific reason.
func (e *InvalidModuleNameError) Unwrap() []error {
	if e.Reason != nil {
		return []error{ErrInvalidModuleName, e.Reason}
	}
	return []error{ErrInvalidModuleName}
}
