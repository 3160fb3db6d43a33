// SPDX-License-Identifier: MPL-2.0

// Package host is a small stand-in for a runtime's import machinery. It owns
// the module registry and the file I/O, and asks a porter.Finder where each
// module lives before falling back to a linear scan of the search path.
//
// Importing "a.b.c" imports "a" and "a.b" first. Submodules that no finder
// claims are searched for in their parent package's directory, the way a
// package's own search path works in the runtimes porter targets.
package host
