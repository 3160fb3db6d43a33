// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, so mapping locations and search
// path entries keep their type across the scanner and the host loader.
package fspath

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/invowk/porter/pkg/types"
)

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments such as module names or OS-provided file names.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// Abs wraps filepath.Abs for FilesystemPath. Returns an error if the
// underlying OS call fails.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// SplitList splits a search-path string using the OS list separator
// (":" on Unix, ";" on Windows), dropping empty and whitespace-only elements.
func SplitList(list string) []types.FilesystemPath {
	var out []types.FilesystemPath
	for _, p := range filepath.SplitList(list) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, types.FilesystemPath(p))
	}
	return out
}

// Strings converts typed paths back to plain strings.
func Strings(paths []types.FilesystemPath) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = string(p)
	}
	return out
}
