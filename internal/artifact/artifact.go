// SPDX-License-Identifier: MPL-2.0

// Package artifact knows which files in a directory make up a module: a
// package directory with a marker file, a native extension, a source file or
// a compiled file. The host loader and the mapping scanner share these rules.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/invowk/porter/pkg/fspath"
	"github.com/invowk/porter/pkg/types"
)

const (
	// SourceSuffix marks a source module.
	SourceSuffix = ".py"
	// CompiledSuffix marks a compiled module.
	CompiledSuffix = ".pyc"
	// ExtensionSuffix marks a native extension module.
	ExtensionSuffix = ".so"
	// PackageMarker is the file that turns a directory into a package.
	PackageMarker = "__init__.py"
)

const (
	// KindPackage is a directory containing PackageMarker.
	KindPackage Kind = iota + 1
	// KindExtension is a native extension.
	KindExtension
	// KindSource is a source file.
	KindSource
	// KindCompiled is a compiled file.
	KindCompiled
)

type (
	// Kind identifies what backs a module.
	Kind int

	// Artifact is the file that backs one module.
	Artifact struct {
		Kind Kind
		// File is the file to load: the source, compiled or extension file, or
		// the package marker for packages.
		File types.FilesystemPath
		// Dir is the package directory for KindPackage and empty otherwise. It
		// becomes the search path for the package's submodules.
		Dir types.FilesystemPath
	}
)

// lookupOrder is the precedence used by Find when several artifacts exist.
var lookupOrder = []Kind{KindPackage, KindExtension, KindSource, KindCompiled}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPackage:
		return "package"
	case KindExtension:
		return "extension"
	case KindSource:
		return "source"
	case KindCompiled:
		return "compiled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsPackage reports whether the artifact is a package directory.
func (a Artifact) IsPackage() bool { return a.Kind == KindPackage }

// Find looks for the artifact backing name inside dir. It reports false when
// nothing matches. Filesystem errors other than "does not exist" are returned
// unchanged so permission problems surface to the caller.
func Find(fsys afero.Fs, dir types.FilesystemPath, name types.ModuleName) (Artifact, bool, error) {
	for _, kind := range lookupOrder {
		candidate := candidateFor(dir, name, kind)
		info, err := fsys.Stat(string(candidate.File))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Artifact{}, false, err
		}
		if info.IsDir() {
			continue
		}
		return candidate, true, nil
	}
	return findTaggedExtension(fsys, dir, name)
}

// findTaggedExtension matches platform-tagged extensions such as
// "fast.cpython-312-x86_64-linux-gnu.so".
func findTaggedExtension(fsys afero.Fs, dir types.FilesystemPath, name types.ModuleName) (Artifact, bool, error) {
	pattern := filepath.Join(string(dir), string(name)+".*"+ExtensionSuffix)
	matches, err := afero.Glob(fsys, pattern)
	if err != nil || len(matches) == 0 {
		return Artifact{}, false, err
	}
	slices.Sort(matches)
	return Artifact{Kind: KindExtension, File: types.FilesystemPath(matches[0])}, true, nil
}

func candidateFor(dir types.FilesystemPath, name types.ModuleName, kind Kind) Artifact {
	switch kind {
	case KindPackage:
		pkgDir := fspath.JoinStr(dir, string(name))
		return Artifact{Kind: kind, File: fspath.JoinStr(pkgDir, PackageMarker), Dir: pkgDir}
	case KindExtension:
		return Artifact{Kind: kind, File: fspath.JoinStr(dir, string(name)+ExtensionSuffix)}
	case KindSource:
		return Artifact{Kind: kind, File: fspath.JoinStr(dir, string(name)+SourceSuffix)}
	default:
		return Artifact{Kind: kind, File: fspath.JoinStr(dir, string(name)+CompiledSuffix)}
	}
}

// ModuleNames lists the module names dir provides, sorted and without
// duplicates. Entries that cannot be flat module names are skipped.
func ModuleNames(fsys afero.Fs, dir types.FilesystemPath) ([]types.ModuleName, error) {
	infos, err := afero.ReadDir(fsys, string(dir))
	if err != nil {
		return nil, err
	}

	seen := make(map[types.ModuleName]bool)
	var names []types.ModuleName
	for _, info := range infos {
		name, ok := moduleNameOf(fsys, dir, info)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func moduleNameOf(fsys afero.Fs, dir types.FilesystemPath, info fs.FileInfo) (types.ModuleName, bool) {
	base := info.Name()
	var name string

	switch {
	case info.IsDir():
		marker := fspath.JoinStr(dir, base, PackageMarker)
		if ok, err := afero.Exists(fsys, string(marker)); err != nil || !ok {
			return "", false
		}
		name = base
	case strings.HasSuffix(base, SourceSuffix):
		name = strings.TrimSuffix(base, SourceSuffix)
	case strings.HasSuffix(base, CompiledSuffix):
		name = strings.TrimSuffix(base, CompiledSuffix)
	case strings.HasSuffix(base, ExtensionSuffix):
		// Tagged extensions ("fast.cpython-312-x86_64-linux-gnu.so") import as "fast".
		name, _, _ = strings.Cut(strings.TrimSuffix(base, ExtensionSuffix), ".")
	default:
		return "", false
	}

	mod := types.ModuleName(name)
	if name == "__init__" || mod.ValidateFlat() != nil {
		return "", false
	}
	return mod, true
}
