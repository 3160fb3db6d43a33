// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"

	"mvdan.cc/sh/v3/shell"

	"github.com/invowk/porter/pkg/types"
)

// expandSearchPath expands $VAR and ${VAR} references in search path entries
// with POSIX shell rules, as inside double quotes. Mapping strings are left
// verbatim.
func expandSearchPath(paths []types.FilesystemPath, environ map[string]string) ([]types.FilesystemPath, error) {
	getenv := os.Getenv
	if environ != nil {
		getenv = func(key string) string { return environ[key] }
	}

	out := make([]types.FilesystemPath, 0, len(paths))
	for i, p := range paths {
		expanded, err := shell.Expand(string(p), getenv)
		if err != nil {
			return nil, fmt.Errorf("search_path[%d] %q: %w", i, p, err)
		}
		out = append(out, types.FilesystemPath(expanded))
	}
	return out, nil
}
