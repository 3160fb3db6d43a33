// SPDX-License-Identifier: MPL-2.0

// Package porter routes module imports to a single directory using a
// precomputed table instead of a linear scan over every search location.
//
// A Hook wraps one pathmap.Table and, optionally, a root namespace. The host
// import pipeline calls Find once per module name; the hook answers with an
// Outcome:
//
//   - OutcomeDirectory: load the module from exactly this directory.
//   - OutcomeVirtualNamespace: synthesize an empty package for the root name.
//   - OutcomeNotHandled: the name is not ours, continue with default search.
//
// With a root configured, every table entry also appears nested below it:
// given root "pkg" and entry spam=/d, "pkg" resolves to a virtual package and
// "pkg.spam" resolves to /d under the name "pkg.spam". Flat names are still
// looked up as-is, so "spam" keeps resolving to /d.
//
// The checks run in a fixed order: exact root, then "root." rewrite, then flat
// lookup. A name under the root that misses the table is not handled; it is
// never retried as a flat name.
//
// Hooks are immutable after construction. Configuration problems are reported
// by New, FromString and FromEnv, never at first import. Hooks can be stacked
// in a Chain, which consults them in registration order.
package porter
