// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MemTree returns an in-memory filesystem holding the given files.
// Each file's content is a single comment line naming its own path, so
// tests can tell which candidate an importer actually loaded.
func MemTree(t testing.TB, files ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	MustWriteFiles(t, fsys, files...)
	return fsys
}

// MustWriteFiles writes each file into fsys, creating parent directories.
func MustWriteFiles(t testing.TB, fsys afero.Fs, files ...string) {
	t.Helper()
	for _, f := range files {
		if err := afero.WriteFile(fsys, f, []byte("# "+f+"\n"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
}

// MustWriteFile writes content to path on the real filesystem, creating
// parent directories, and returns path.
func MustWriteFile(t testing.TB, path, content string) string {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// MustMkdirAll creates a directory along with any necessary parents.
func MustMkdirAll(t testing.TB, path string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(path, perm); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// MustSetenv sets the environment variable key to value.
// It returns a cleanup function that restores the original value (or unsets it).
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return func() {
		if hadValue {
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		} else {
			if err := os.Unsetenv(key); err != nil {
				t.Errorf("failed to unset env %s: %v", key, err)
			}
		}
	}
}
