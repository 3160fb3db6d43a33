// SPDX-License-Identifier: MPL-2.0

package porter

import (
	"testing"

	"github.com/invowk/porter/pkg/types"
)

func TestGrafter_Inert(t *testing.T) {
	t.Parallel()

	for _, g := range []Grafter{{}, NewGrafter("")} {
		if !g.Inert() {
			t.Error("Inert() = false for empty root")
		}
		if g.IsRoot("") || g.IsRoot("pkg") {
			t.Error("inert grafter matched a root")
		}
		if _, ok := g.Strip("pkg.spam"); ok {
			t.Error("inert grafter rewrote a name")
		}
		if got := g.Graft("spam"); got != "spam" {
			t.Errorf("Graft(spam) = %q, want unchanged", got)
		}
	}
}

func TestGrafter_Strip(t *testing.T) {
	t.Parallel()

	g := NewGrafter("pkg")
	tests := []struct {
		in     types.ModuleName
		want   types.ModuleName
		wantOK bool
	}{
		{"pkg.spam", "spam", true},
		{"pkg.ham.eggs", "ham.eggs", true},
		{"pkg.", "", false},
		{"pkg", "", false},
		{"pkgspam", "", false},
		{"spam", "", false},
		{"other.pkg.spam", "", false},
	}
	for _, tt := range tests {
		got, ok := g.Strip(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Strip(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}

	if !g.IsRoot("pkg") || g.IsRoot("pkg.spam") {
		t.Error("IsRoot mismatch")
	}
	if got := g.Graft("spam"); got != "pkg.spam" {
		t.Errorf("Graft(spam) = %q, want pkg.spam", got)
	}
	if g.Root() != "pkg" {
		t.Errorf("Root() = %q", g.Root())
	}
}
