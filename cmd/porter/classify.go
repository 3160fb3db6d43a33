// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io/fs"

	"github.com/invowk/porter/internal/config"
	"github.com/invowk/porter/internal/host"
	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/internal/scan"
	"github.com/invowk/porter/pkg/pathmap"
	"github.com/invowk/porter/pkg/porter"
	"github.com/invowk/porter/pkg/types"
)

// classifyError maps an error to its catalog issue, or 0 when none fits.
// Root and mapping errors wrap module name causes, so they are checked first.
func classifyError(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return ae.Issue
	}

	switch {
	case errors.Is(err, types.ErrInvalidDelimiter):
		return issue.InvalidDelimiterId
	case errors.Is(err, porter.ErrEnvVarNotFound):
		return issue.EnvVarNotFoundId
	case errors.Is(err, porter.ErrInvalidRoot):
		return issue.InvalidRootId
	case errors.Is(err, porter.ErrRootCollision):
		return issue.RootCollisionId
	case errors.Is(err, pathmap.ErrInvalidMapping):
		return issue.MalformedMappingId
	case errors.Is(err, host.ErrModuleNotFound):
		return issue.ModuleNotFoundId
	case errors.Is(err, host.ErrNotAPackage):
		return issue.NotAPackageId
	case errors.Is(err, types.ErrInvalidModuleName):
		return issue.InvalidModuleNameId
	case errors.Is(err, scan.ErrNoModules):
		return issue.NoModulesFoundId
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrInvalidLogLevel):
		return issue.ConfigLoadFailedId
	case errors.Is(err, fs.ErrPermission):
		return issue.PermissionDeniedId
	case errors.Is(err, fs.ErrNotExist):
		return issue.FileNotFoundId
	default:
		return 0
	}
}
