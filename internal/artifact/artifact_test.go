// SPDX-License-Identifier: MPL-2.0

package artifact

import (
	"errors"
	"os"
	"slices"
	"testing"

	"github.com/spf13/afero"

	"github.com/invowk/porter/internal/testutil"
	"github.com/invowk/porter/pkg/types"
)

func TestFind(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	testutil.MustWriteFiles(t, fsys,
		"/mods/spam.py",
		"/mods/spam.pyc",
		"/mods/ham/__init__.py",
		"/mods/ham/eggs.py",
		"/mods/shop.pyc",
		"/mods/fast.so",
		"/mods/fast.py",
		"/mods/tagged.cpython-312-x86_64-linux-gnu.so",
		"/mods/empty/readme.txt",
	)

	tests := []struct {
		name     types.ModuleName
		wantOK   bool
		wantKind Kind
		wantFile types.FilesystemPath
		wantDir  types.FilesystemPath
	}{
		{"spam", true, KindSource, "/mods/spam.py", ""},
		{"ham", true, KindPackage, "/mods/ham/__init__.py", "/mods/ham"},
		{"shop", true, KindCompiled, "/mods/shop.pyc", ""},
		{"fast", true, KindExtension, "/mods/fast.so", ""},
		{"tagged", true, KindExtension, "/mods/tagged.cpython-312-x86_64-linux-gnu.so", ""},
		{"empty", false, 0, "", ""},
		{"parrot", false, 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()

			got, ok, err := Find(fsys, "/mods", tt.name)
			if err != nil {
				t.Fatalf("Find(%q) error: %v", tt.name, err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Kind != tt.wantKind || got.File != tt.wantFile || got.Dir != tt.wantDir {
				t.Errorf("Find(%q) = %+v, want kind %v file %q dir %q", tt.name, got, tt.wantKind, tt.wantFile, tt.wantDir)
			}
			if got.IsPackage() != (tt.wantKind == KindPackage) {
				t.Errorf("IsPackage() = %v", got.IsPackage())
			}
		})
	}
}

func TestFind_MissingDirectoryIsMiss(t *testing.T) {
	t.Parallel()

	_, ok, err := Find(afero.NewMemMapFs(), "/nowhere", "spam")
	if err != nil || ok {
		t.Errorf("Find in missing dir = (%v, %v), want (false, nil)", ok, err)
	}
}

type deniedFs struct{ afero.Fs }

func (deniedFs) Stat(name string) (os.FileInfo, error) {
	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
}

func TestFind_PropagatesOtherErrors(t *testing.T) {
	t.Parallel()

	_, _, err := Find(deniedFs{afero.NewMemMapFs()}, "/mods", "spam")
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("Find error = %v, want permission error", err)
	}
}

func TestModuleNames(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	testutil.MustWriteFiles(t, fsys,
		"/mods/spam.py",
		"/mods/spam.pyc",
		"/mods/ham/__init__.py",
		"/mods/notpkg/data.txt",
		"/mods/shop.pyc",
		"/mods/fast.cpython-312-x86_64-linux-gnu.so",
		"/mods/__init__.py",
		"/mods/dotted.name.py",
		"/mods/README.md",
	)

	got, err := ModuleNames(fsys, "/mods")
	if err != nil {
		t.Fatalf("ModuleNames error: %v", err)
	}
	want := []types.ModuleName{"fast", "ham", "shop", "spam"}
	if !slices.Equal(got, want) {
		t.Errorf("ModuleNames() = %v, want %v", got, want)
	}

	if _, err := ModuleNames(fsys, "/missing"); err == nil {
		t.Error("ModuleNames on missing dir returned nil error")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	for k, want := range map[Kind]string{
		KindPackage:   "package",
		KindExtension: "extension",
		KindSource:    "source",
		KindCompiled:  "compiled",
		Kind(0):       "Kind(0)",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
