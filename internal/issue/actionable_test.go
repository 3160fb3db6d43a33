// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// joinedError mimics the mapping errors that unwrap to a sentinel plus a
// more specific cause.
type joinedError struct {
	msg  string
	errs []error
}

func (e *joinedError) Error() string { return e.msg }
func (e *joinedError) Unwrap() []error { return e.errs }

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{"operation only", &ActionableError{Operation: "load configuration"}, "failed to load configuration"},
		{
			"with resource",
			&ActionableError{Operation: "build hook", Resource: "hooks[0] $PORTER_MAP"},
			"failed to build hook: hooks[0] $PORTER_MAP",
		},
		{
			"with cause",
			&ActionableError{Operation: "resolve module", Cause: errors.New("no such directory")},
			"failed to resolve module: no such directory",
		},
		{
			"full",
			&ActionableError{Operation: "load configuration", Resource: "/etc/porter.cue", Cause: errors.New("boom")},
			"failed to load configuration: /etc/porter.cue: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("env var missing")
	err := NewErrorContext().
		WithOperation("build hook").
		Wrap(fmt.Errorf("PORTER_MAP: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should reach the wrapped sentinel")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find the ActionableError")
	}
	if ae.Operation != "build hook" {
		t.Errorf("Operation = %q", ae.Operation)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "parse mapping",
		Resource:    "--map",
		Suggestions: []string{"Separate entries with ':'", "Use exactly one '=' per entry"},
		Cause:       errors.New("entry 1 \"b\" has 0 '='"),
	}

	plain := err.Format(false)
	wantPlain := "failed to parse mapping: --map: entry 1 \"b\" has 0 '='\n" +
		"\n  • Separate entries with ':'" +
		"\n  • Use exactly one '=' per entry"
	if plain != wantPlain {
		t.Errorf("Format(false) =\n%s\nwant\n%s", plain, wantPlain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Error("non-verbose output should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.HasPrefix(verbose, wantPlain) {
		t.Errorf("verbose output should start with the plain output, got:\n%s", verbose)
	}
	if !strings.Contains(verbose, "Error chain:\n  1. entry 1 \"b\" has 0 '='") {
		t.Errorf("verbose output missing chain:\n%s", verbose)
	}
}

func TestActionableError_FormatFollowsMultiErrors(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("hooks[0]: %w", &joinedError{
		msg: "invalid name \"a.b\"",
		errs: []error{
			errors.New("invalid mapping"),
			errors.New("names must not contain '.'"),
		},
	})
	err := &ActionableError{Operation: "build hook", Cause: cause}

	got := err.Format(true)
	want := "Error chain:" +
		"\n  1. hooks[0]: invalid name \"a.b\"" +
		"\n  2. invalid name \"a.b\"" +
		"\n  3. invalid mapping" +
		"\n  4. names must not contain '.'"
	if !strings.HasSuffix(got, want) {
		t.Errorf("Format(true) =\n%s\nwant suffix\n%s", got, want)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	ae := NewErrorContext().
		WithOperation("scan search path").
		WithResource("/srv/lib").
		WithSuggestion("Check the directory permissions").
		WithSuggestion("Pass the directories to scan explicitly").
		WithIssue(PermissionDeniedId).
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "scan search path" || ae.Resource != "/srv/lib" {
		t.Errorf("Operation/Resource = %q/%q", ae.Operation, ae.Resource)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("Suggestions = %v, want 2 entries", ae.Suggestions)
	}
	if ae.Cause != cause {
		t.Errorf("Cause = %v, want %v", ae.Cause, cause)
	}
	if ae.Issue != PermissionDeniedId {
		t.Errorf("Issue = %v, want %v", ae.Issue, PermissionDeniedId)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithResource("/srv/lib").Wrap(errors.New("x"))
	if ae := ctx.Build(); ae != nil {
		t.Errorf("Build() = %v, want nil without an operation", ae)
	}
	if err := ctx.BuildError(); err != nil {
		t.Errorf("BuildError() = %v, want untyped nil", err)
	}
}

func TestErrorContext_BuildIsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithOperation("load configuration").WithSuggestion("first")
	first := ctx.Build()

	ctx.WithSuggestion("second").WithResource("later.cue")
	second := ctx.Build()

	if len(first.Suggestions) != 1 || first.Resource != "" {
		t.Errorf("first build changed after reuse: %+v", first)
	}
	if len(second.Suggestions) != 2 || second.Resource != "later.cue" {
		t.Errorf("second build = %+v", second)
	}
}

func TestActionableError_CatalogIssue(t *testing.T) {
	t.Parallel()

	if got := (&ActionableError{Operation: "x"}).CatalogIssue(); got != nil {
		t.Errorf("CatalogIssue() without an id = %v, want nil", got)
	}

	ae := NewErrorContext().WithOperation("x").WithIssue(RootCollisionId).Build()
	is := ae.CatalogIssue()
	if is == nil {
		t.Fatal("CatalogIssue() = nil")
	}
	if is.Id() != RootCollisionId {
		t.Errorf("CatalogIssue().Id() = %v, want %v", is.Id(), RootCollisionId)
	}
}
