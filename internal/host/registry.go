// SPDX-License-Identifier: MPL-2.0

package host

import (
	"maps"
	"slices"
	"sync"

	"github.com/invowk/porter/internal/artifact"
	"github.com/invowk/porter/pkg/types"
)

const (
	// OriginFinder means a finder narrowed the search to one directory.
	OriginFinder Origin = "finder"
	// OriginSearch means the module was found by the default linear search.
	OriginSearch Origin = "search"
	// OriginVirtual means the module was synthesized with no backing file.
	OriginVirtual Origin = "virtual"
)

type (
	// Origin records how a module was located.
	Origin string

	// Module is a loaded module as the registry holds it.
	Module struct {
		Name   types.ModuleName
		Origin Origin
		Kind   artifact.Kind
		// File is the backing file; empty for virtual packages.
		File types.FilesystemPath
		// Path is the package search path. It is nil for plain modules and
		// non-nil (possibly empty) for packages, virtual ones included.
		Path []types.FilesystemPath
	}

	// Registry maps dotted names to loaded modules. Modules installed here,
	// virtual packages included, belong to the registry.
	Registry struct {
		mu      sync.RWMutex
		modules map[types.ModuleName]*Module
	}
)

// IsPackage reports whether the module can have submodules.
func (m *Module) IsPackage() bool { return m.Path != nil }

// IsVirtual reports whether the module was synthesized.
func (m *Module) IsVirtual() bool { return m.Origin == OriginVirtual }

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[types.ModuleName]*Module)}
}

// Get returns the module registered under name.
func (r *Registry) Get(name types.ModuleName) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// Install registers m under its name, keeping an existing module if another
// import got there first. It returns the module now registered.
func (r *Registry) Install(m *Module) *Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.modules[m.Name]; ok {
		return existing
	}
	r.modules[m.Name] = m
	return m
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []types.ModuleName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.modules))
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
