// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCUEPath is returned when a CUEPath is empty or blank.
var ErrInvalidCUEPath = errors.New("invalid CUE path")

// CUEPath is a JSON-style path into a CUE value, e.g. "hooks[0].root".
type CUEPath string

// Validate rejects empty and whitespace-only paths.
func (p CUEPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidCUEPath, string(p))
	}
	return nil
}

// String returns the path text.
func (p CUEPath) String() string { return string(p) }
