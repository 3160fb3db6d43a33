// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

const (
	// DefaultEntrySplit separates entries in a serialized mapping.
	DefaultEntrySplit Delimiter = ":"
	// DefaultKeyValueSplit separates the name side from the location side of an entry.
	DefaultKeyValueSplit Delimiter = "="
	// DefaultNameSplit separates several names sharing one location.
	DefaultNameSplit Delimiter = ","
)

// ErrInvalidDelimiter is the sentinel error wrapped by InvalidDelimiterError.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

type (
	// Delimiter is a non-empty separator string used by the mapping format.
	// Delimiters are not checked against path characters: choosing one that
	// appears inside locations is a caller error the parser cannot detect.
	Delimiter string

	// InvalidDelimiterError is returned when a delimiter is empty or when two
	// roles share the same delimiter.
	InvalidDelimiterError struct {
		Role  string
		Value Delimiter
		// Conflict names the other role when two delimiters are equal.
		Conflict string
	}
)

// String returns the string representation of the Delimiter.
func (d Delimiter) String() string { return string(d) }

// Validate returns an error if the delimiter is empty.
func (d Delimiter) Validate() error {
	if d == "" {
		return &InvalidDelimiterError{Value: d}
	}
	return nil
}

// Error implements the error interface for InvalidDelimiterError.
func (e *InvalidDelimiterError) Error() string {
	switch {
	case e.Conflict != "":
		return fmt.Sprintf("invalid %s delimiter %q: same as %s delimiter", e.Role, e.Value, e.Conflict)
	case e.Role != "":
		return fmt.Sprintf("invalid %s delimiter: must be non-empty", e.Role)
	default:
		return "invalid delimiter: must be non-empty"
	}
}

// Unwrap returns ErrInvalidDelimiter for errors.Is() compatibility.
func (e *InvalidDelimiterError) Unwrap() error { return ErrInvalidDelimiter }
