// SPDX-License-Identifier: MPL-2.0

package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/porter/pkg/fspath"
	"github.com/invowk/porter/pkg/types"
)

var (
	// ErrModuleNotFound is the sentinel error wrapped by ModuleNotFoundError.
	ErrModuleNotFound = errors.New("module not found")
	// ErrNotAPackage is the sentinel error wrapped by NotAPackageError.
	ErrNotAPackage = errors.New("parent is not a package")
)

type (
	// ModuleNotFoundError is returned when no directory provides the module.
	ModuleNotFoundError struct {
		Name     types.ModuleName
		Searched []types.FilesystemPath
	}

	// NotAPackageError is returned when importing a submodule of a plain module.
	NotAPackageError struct {
		Name   types.ModuleName
		Parent types.ModuleName
	}
)

// Error implements the error interface.
func (e *ModuleNotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("no module named %q", e.Name)
	}
	return fmt.Sprintf("no module named %q (searched %s)", e.Name, strings.Join(fspath.Strings(e.Searched), ", "))
}

// Unwrap returns ErrModuleNotFound for errors.Is() compatibility.
func (e *ModuleNotFoundError) Unwrap() error { return ErrModuleNotFound }

// Error implements the error interface.
func (e *NotAPackageError) Error() string {
	return fmt.Sprintf("cannot import %q: %q is not a package", e.Name, e.Parent)
}

// Unwrap returns ErrNotAPackage for errors.Is() compatibility.
func (e *NotAPackageError) Unwrap() error { return ErrNotAPackage }
