// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions. It may link to a catalog Issue, a Markdown page rendered with
// glamour by 'porter check --explain'.
package issue
