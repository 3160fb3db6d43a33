// SPDX-License-Identifier: MPL-2.0

package host

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/invowk/porter/internal/artifact"
	"github.com/invowk/porter/pkg/porter"
	"github.com/invowk/porter/pkg/types"
)

type (
	// Importer loads modules into a Registry.
	Importer struct {
		fs         afero.Fs
		finder     porter.Finder
		registry   *Registry
		searchPath []types.FilesystemPath
		logger     *log.Logger
	}

	// ImporterOption configures an Importer.
	ImporterOption func(*Importer)
)

// WithRegistry shares an existing registry instead of creating one.
func WithRegistry(r *Registry) ImporterOption {
	return func(im *Importer) { im.registry = r }
}

// WithLogger traces each load.
func WithLogger(logger *log.Logger) ImporterOption {
	return func(im *Importer) { im.logger = logger }
}

// NewImporter returns an Importer that consults finder before searching
// searchPath in order. A nil finder means every name uses the default search.
func NewImporter(fsys afero.Fs, finder porter.Finder, searchPath []types.FilesystemPath, opts ...ImporterOption) *Importer {
	if finder == nil {
		finder = porter.NewChain()
	}
	im := &Importer{
		fs:         fsys,
		finder:     finder,
		searchPath: slices.Clone(searchPath),
	}
	for _, opt := range opts {
		opt(im)
	}
	if im.registry == nil {
		im.registry = NewRegistry()
	}
	return im
}

// Registry returns the registry modules are installed into.
func (im *Importer) Registry() *Registry { return im.registry }

// Import loads name and its parents, returning the module for name. Modules
// already in the registry are returned without consulting the finder again.
func (im *Importer) Import(ctx context.Context, name types.ModuleName) (*Module, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	lineage := name.Lineage()
	for _, n := range lineage {
		if n.Base() == "" {
			return nil, &types.InvalidModuleNameError{Value: name, Reason: types.ErrEmptyModuleComponent}
		}
	}

	var parent *Module
	for _, n := range lineage {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import %s canceled: %w", name, err)
		}
		if m, ok := im.registry.Get(n); ok {
			parent = m
			continue
		}
		if parent != nil && !parent.IsPackage() {
			return nil, &NotAPackageError{Name: n, Parent: parent.Name}
		}

		m, err := im.load(n, parent)
		if err != nil {
			return nil, err
		}
		parent = im.registry.Install(m)
	}
	return parent, nil
}

func (im *Importer) load(name types.ModuleName, parent *Module) (*Module, error) {
	var parentPath []types.FilesystemPath
	if parent != nil {
		parentPath = parent.Path
	}

	out := im.finder.Find(name, parentPath)
	switch out.Kind {
	case porter.OutcomeVirtualNamespace:
		im.trace("synthesized virtual package", out.Name, "")
		return &Module{Name: out.Name, Origin: OriginVirtual, Path: []types.FilesystemPath{}}, nil

	case porter.OutcomeDirectory:
		a, ok, err := artifact.Find(im.fs, out.Location, out.Candidate.Base())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ModuleNotFoundError{Name: out.Name, Searched: []types.FilesystemPath{out.Location}}
		}
		im.trace("loaded from mapped directory", out.Name, a.File)
		return newModule(out.Name, OriginFinder, a), nil
	}

	search := im.searchPath
	if parent != nil {
		search = parent.Path
	}
	for _, dir := range search {
		a, ok, err := artifact.Find(im.fs, dir, name.Base())
		if err != nil {
			return nil, err
		}
		if ok {
			im.trace("loaded from search path", name, a.File)
			return newModule(name, OriginSearch, a), nil
		}
	}
	return nil, &ModuleNotFoundError{Name: name, Searched: slices.Clone(search)}
}

func newModule(name types.ModuleName, origin Origin, a artifact.Artifact) *Module {
	m := &Module{Name: name, Origin: origin, Kind: a.Kind, File: a.File}
	if a.IsPackage() {
		m.Path = []types.FilesystemPath{a.Dir}
	}
	return m
}

func (im *Importer) trace(msg string, name types.ModuleName, file types.FilesystemPath) {
	if im.logger == nil {
		return
	}
	im.logger.Debug(msg, "module", name, "file", file)
}
