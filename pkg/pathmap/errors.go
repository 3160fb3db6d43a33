// SPDX-License-Identifier: MPL-2.0

package pathmap

import (
	"errors"
	"fmt"

	"github.com/invowk/porter/pkg/types"
)

var (
	// ErrInvalidMapping is wrapped by every parse error so callers can detect
	// a bad mapping without switching on the specific cause.
	ErrInvalidMapping = errors.New("invalid module mapping")
	// ErrMalformedEntry is the sentinel error wrapped by MalformedEntryError.
	ErrMalformedEntry = fmt.Errorf("%w: malformed entry", ErrInvalidMapping)
	// ErrEmptyName is the sentinel error wrapped by EmptyNameError.
	ErrEmptyName = fmt.Errorf("%w: empty module name", ErrInvalidMapping)
	// ErrEmptyLocation is the sentinel error wrapped by EmptyLocationError.
	ErrEmptyLocation = fmt.Errorf("%w: empty location", ErrInvalidMapping)
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = fmt.Errorf("%w: invalid module name", ErrInvalidMapping)
	// ErrDuplicateName is the sentinel error wrapped by DuplicateNameError.
	ErrDuplicateName = fmt.Errorf("%w: duplicate module name", ErrInvalidMapping)
)

type (
	// MalformedEntryError is returned when an entry does not contain exactly
	// one key/value delimiter.
	MalformedEntryError struct {
		Index     int
		Entry     string
		Separator types.Delimiter
		Count     int
	}

	// EmptyNameError is returned when the name side of an entry, or one name in
	// a name list, is empty after trimming.
	EmptyNameError struct {
		Index int
		Entry string
	}

	// EmptyLocationError is returned when the location side of an entry is
	// empty after trimming.
	EmptyLocationError struct {
		Index int
		Entry string
	}

	// InvalidNameError is returned when a configured name is not a flat module
	// name (for example "ham.eggs").
	InvalidNameError struct {
		Index int
		Name  types.ModuleName
		Cause error
	}

	// DuplicateNameError is returned when the same name appears twice.
	DuplicateNameError struct {
		Name   types.ModuleName
		First  types.FilesystemPath
		Second types.FilesystemPath
	}
)

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("entry %d (%q): expected exactly one %q separator, found %d",
		e.Index, e.Entry, e.Separator, e.Count)
}

// Unwrap returns ErrMalformedEntry for errors.Is() compatibility.
func (e *MalformedEntryError) Unwrap() error { return ErrMalformedEntry }

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("entry %d (%q): module name is empty", e.Index, e.Entry)
}

// Unwrap returns ErrEmptyName for errors.Is() compatibility.
func (e *EmptyNameError) Unwrap() error { return ErrEmptyName }

func (e *EmptyLocationError) Error() string {
	return fmt.Sprintf("entry %d (%q): location is empty", e.Index, e.Entry)
}

// Unwrap returns ErrEmptyLocation for errors.Is() compatibility.
func (e *EmptyLocationError) Unwrap() error { return ErrEmptyLocation }

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Cause)
}

// Unwrap returns ErrInvalidName and the underlying validation error.
func (e *InvalidNameError) Unwrap() []error { return []error{ErrInvalidName, e.Cause} }

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("module %q is mapped twice (%s and %s)", e.Name, e.First, e.Second)
}

// Unwrap returns ErrDuplicateName for errors.Is() compatibility.
func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }
