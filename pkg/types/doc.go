// SPDX-License-Identifier: MPL-2.0

// Package types holds the small validated value types shared by the mapping
// parser, the resolver and the CLI: module names, filesystem locations,
// delimiters and exit codes.
//
// Each type exposes Validate() returning a typed error that wraps a package
// sentinel, so callers can use errors.Is for detection and errors.As for detail.
package types
