// SPDX-License-Identifier: MPL-2.0

// Package pathmap parses the compact module mapping format into an immutable
// lookup table.
//
// A mapping is a list of entries joined by an entry delimiter (":" by
// default). Each entry holds one or more flat module names, a key/value
// delimiter ("=" by default) and the directory those modules live in:
//
//	spam,ham=/dev/modules:shop=/dev/shop
//
// Several names may share one location when separated by the name delimiter
// ("," by default); this is the shape produced by scanning a search path.
//
// Parsing never touches the filesystem. Whether a location exists is only
// discovered when a loader opens it, so building a table stays cheap even for
// large mappings on slow filesystems. Delimiters are taken verbatim: if a
// location contains the entry delimiter (a Windows drive letter and ":", for
// example) the caller has to pick a different one.
//
// Every name maps to exactly one location. Duplicate names are rejected with
// DuplicateNameError rather than resolved by first- or last-write-wins.
package pathmap
