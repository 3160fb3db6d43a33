// SPDX-License-Identifier: MPL-2.0

package porter

import (
	"strings"

	"github.com/invowk/porter/pkg/types"
)

// Grafter maps names below a root namespace onto flat table names. The zero
// value is inert: it never matches and never rewrites.
type Grafter struct {
	root   types.ModuleName
	prefix string
}

// NewGrafter returns a Grafter for root. An empty root yields an inert Grafter.
func NewGrafter(root types.ModuleName) Grafter {
	if root == "" {
		return Grafter{}
	}
	return Grafter{root: root, prefix: string(root) + types.ModuleSeparator}
}

// Root returns the configured root, or "" when inert.
func (g Grafter) Root() types.ModuleName { return g.root }

// Inert reports whether no root is configured.
func (g Grafter) Inert() bool { return g.root == "" }

// IsRoot reports whether name is exactly the root.
func (g Grafter) IsRoot(name types.ModuleName) bool {
	return !g.Inert() && name == g.root
}

// Strip removes the "root." prefix. It reports false when the name is not
// below the root or when nothing is left after the prefix ("root.").
func (g Grafter) Strip(name types.ModuleName) (types.ModuleName, bool) {
	if g.Inert() {
		return "", false
	}
	rest, ok := strings.CutPrefix(string(name), g.prefix)
	if !ok || rest == "" {
		return "", false
	}
	return types.ModuleName(rest), true
}

// Graft places a flat name below the root. Inert grafters return name unchanged.
func (g Grafter) Graft(name types.ModuleName) types.ModuleName {
	if g.Inert() {
		return name
	}
	return types.ModuleName(g.prefix + string(name))
}
