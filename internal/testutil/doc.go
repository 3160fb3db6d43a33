// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail the test
// immediately instead of returning errors.
//
// Helpers cover in-memory module trees (MemTree, MustWriteFiles), real
// files on disk (MustWriteFile, MustMkdirAll) and environment variables
// (MustSetenv).
package testutil
