// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/invowk/porter/pkg/fspath"
	"github.com/invowk/porter/pkg/types"
)

func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := fspath.JoinStr(types.FilesystemPath("modules"), "ham", "__init__.py")
	want := types.FilesystemPath(filepath.Join("modules", "ham", "__init__.py"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	got := fspath.Clean(types.FilesystemPath("modules/./ham/../spam"))
	want := types.FilesystemPath(filepath.Clean("modules/./ham/../spam"))
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(types.FilesystemPath("modules"))
	if err != nil {
		t.Fatalf("Abs() error: %v", err)
	}
	if !filepath.IsAbs(string(got)) {
		t.Errorf("Abs() = %q, want absolute path", got)
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	sep := string(filepath.ListSeparator)
	list := strings.Join([]string{"/a", "", "  ", "/b"}, sep)
	got := fspath.SplitList(list)
	want := []types.FilesystemPath{"/a", "/b"}
	if !slices.Equal(got, want) {
		t.Errorf("SplitList() = %v, want %v", got, want)
	}
	if got := fspath.SplitList(""); len(got) != 0 {
		t.Errorf("SplitList(\"\") = %v, want empty", got)
	}
	if got := fspath.Strings(want); !slices.Equal(got, []string{"/a", "/b"}) {
		t.Errorf("Strings() = %v", got)
	}
}
