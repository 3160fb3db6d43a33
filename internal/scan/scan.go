// SPDX-License-Identifier: MPL-2.0

// Package scan builds a module mapping from an ordered search path, so an
// existing search-path setup can be turned into a table once and then
// resolved in constant time.
//
// Entries are visited in order and the first directory that provides a name
// keeps it, which is the answer a linear search would have given. Later
// providers of the same name are reported as shadowed.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/invowk/porter/internal/artifact"
	"github.com/invowk/porter/pkg/pathmap"
	"github.com/invowk/porter/pkg/types"
)

type (
	// Skipped is a search-path entry that contributed nothing.
	Skipped struct {
		Path   types.FilesystemPath
		Reason string
	}

	// Shadowed is a module provided by more than one directory.
	Shadowed struct {
		Name types.ModuleName
		// Winner is the directory that keeps the name.
		Winner types.FilesystemPath
		// Loser is the later directory whose copy is never reached.
		Loser types.FilesystemPath
	}

	// Result is the outcome of a scan.
	Result struct {
		Entries  []pathmap.Entry
		Skipped  []Skipped
		Shadowed []Shadowed
	}
)

// ErrNoModules is returned by Result.Table when the scan found nothing.
var ErrNoModules = errors.New("no modules found on search path")

// Scan lists the modules of every directory in searchPath. Missing entries
// and plain files (zip archives, for instance) are skipped and reported.
func Scan(ctx context.Context, fsys afero.Fs, searchPath []types.FilesystemPath) (*Result, error) {
	res := &Result{}
	owner := make(map[types.ModuleName]types.FilesystemPath)

	for _, dir := range searchPath {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan canceled: %w", err)
		}

		info, err := fsys.Stat(string(dir))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			res.Skipped = append(res.Skipped, Skipped{Path: dir, Reason: "does not exist"})
			continue
		case err != nil:
			res.Skipped = append(res.Skipped, Skipped{Path: dir, Reason: err.Error()})
			continue
		case !info.IsDir():
			res.Skipped = append(res.Skipped, Skipped{Path: dir, Reason: "not a directory"})
			continue
		}

		names, err := artifact.ModuleNames(fsys, dir)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{Path: dir, Reason: err.Error()})
			continue
		}

		for _, name := range names {
			if winner, taken := owner[name]; taken {
				res.Shadowed = append(res.Shadowed, Shadowed{Name: name, Winner: winner, Loser: dir})
				continue
			}
			owner[name] = dir
			res.Entries = append(res.Entries, pathmap.Entry{Name: name, Location: dir})
		}
	}

	return res, nil
}

// Encode serializes the entries in the mapping format, grouping names by
// directory when name lists are on.
func (r *Result) Encode(opts ...pathmap.Option) string {
	return pathmap.Encode(r.Entries, pathmap.NewOptions(opts...))
}

// Table parses the encoded result back into a table. It fails when the scan
// found nothing or when a directory contains one of the delimiters.
func (r *Result) Table(opts ...pathmap.Option) (*pathmap.Table, error) {
	if len(r.Entries) == 0 {
		return nil, ErrNoModules
	}
	return pathmap.Parse(r.Encode(opts...), opts...)
}
