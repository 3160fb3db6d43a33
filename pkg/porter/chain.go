// SPDX-License-Identifier: MPL-2.0

package porter

import "github.com/invowk/porter/pkg/types"

// Chain consults finders in registration order; the first handled outcome wins.
// Register is not safe to call concurrently with Find: build the chain first,
// then hand it to the host.
type Chain struct {
	finders []Finder
}

// NewChain returns a chain of the given finders. Nil finders are ignored.
func NewChain(finders ...Finder) *Chain {
	c := &Chain{}
	for _, f := range finders {
		c.Register(f)
	}
	return c
}

// Register appends f to the chain.
func (c *Chain) Register(f Finder) {
	if f == nil {
		return
	}
	c.finders = append(c.finders, f)
}

// Len returns the number of registered finders.
func (c *Chain) Len() int { return len(c.finders) }

// Find implements Finder.
func (c *Chain) Find(name types.ModuleName, parentPath []types.FilesystemPath) Outcome {
	for _, f := range c.finders {
		if out := f.Find(name, parentPath); out.Handled() {
			return out
		}
	}
	return NotHandled()
}
