// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestMemTree(t *testing.T) {
	t.Parallel()

	fsys := MemTree(t, "/mods/spam.py", "/mods/ham/__init__.py")

	data, err := afero.ReadFile(fsys, "/mods/spam.py")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got, want := string(data), "# /mods/spam.py\n"; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}

	info, err := fsys.Stat("/mods/ham")
	if err != nil {
		t.Fatalf("Stat error: %v", err)
	}
	if !info.IsDir() {
		t.Error("/mods/ham should be a directory")
	}
}

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.cue")
	if got := MustWriteFile(t, path, "log_level: \"info\"\n"); got != path {
		t.Errorf("MustWriteFile() = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "log_level: \"info\"\n" {
		t.Errorf("content = %q", data)
	}
}

func TestMustSetenv(t *testing.T) {
	const key = "PORTER_TESTUTIL_SETENV"

	cleanup := MustSetenv(t, key, "first")
	if got := os.Getenv(key); got != "first" {
		t.Fatalf("Getenv() = %q, want first", got)
	}
	cleanup()
	if _, ok := os.LookupEnv(key); ok {
		t.Error("variable should be unset after cleanup")
	}
}
