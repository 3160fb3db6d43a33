// SPDX-License-Identifier: MPL-2.0

package porter

import (
	"errors"
	"fmt"

	"github.com/invowk/porter/pkg/types"
)

var (
	// ErrRootCollision is the sentinel error wrapped by RootCollisionError.
	ErrRootCollision = errors.New("root namespace collides with a mapped module")
	// ErrInvalidRoot is the sentinel error wrapped by InvalidRootError.
	ErrInvalidRoot = errors.New("invalid root namespace")
	// ErrEnvVarNotFound is the sentinel error wrapped by EnvVarNotFoundError.
	ErrEnvVarNotFound = errors.New("environment variable not found")
	// ErrNilTable is returned by New when no table is given.
	ErrNilTable = errors.New("nil module table")
)

type (
	// RootCollisionError is returned when the root namespace is also a table entry.
	RootCollisionError struct {
		Root     types.ModuleName
		Location types.FilesystemPath
	}

	// InvalidRootError is returned when the root is not a flat module name.
	InvalidRootError struct {
		Root  types.ModuleName
		Cause error
	}

	// EnvVarNotFoundError is returned by FromEnv when the variable is unset.
	EnvVarNotFoundError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *RootCollisionError) Error() string {
	return fmt.Sprintf("root namespace %q is also mapped to %s", e.Root, e.Location)
}

// Unwrap returns ErrRootCollision for errors.Is() compatibility.
func (e *RootCollisionError) Unwrap() error { return ErrRootCollision }

// Error implements the error interface.
func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid root namespace %q: %v", e.Root, e.Cause)
}

// Unwrap returns ErrInvalidRoot and the underlying validation error.
func (e *InvalidRootError) Unwrap() []error { return []error{ErrInvalidRoot, e.Cause} }

// Error implements the error interface.
func (e *EnvVarNotFoundError) Error() string {
	return fmt.Sprintf("failed to find '%s' in environment", e.Name)
}

// Unwrap returns ErrEnvVarNotFound for errors.Is() compatibility.
func (e *EnvVarNotFoundError) Unwrap() error { return ErrEnvVarNotFound }
