// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/pkg/types"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the file").
		Wrap(cause).
		BuildError()

	if got := formatErrorForDisplay(cause, false); got != "boom" {
		t.Errorf("plain error = %q", got)
	}
	got := formatErrorForDisplay(ae, false)
	if !strings.Contains(got, "failed to load configuration: boom") || !strings.Contains(got, "Check the file") {
		t.Errorf("actionable error = %q", got)
	}
	if strings.Contains(got, "Error chain") {
		t.Error("non-verbose output should not include the error chain")
	}
	if !strings.Contains(formatErrorForDisplay(ae, true), "Error chain") {
		t.Error("verbose output should include the error chain")
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	silent := &ExitError{Code: types.ExitUnresolved}
	if silent.Error() != "exit status 3" || !silent.Reported() {
		t.Errorf("silent ExitError = %q, Reported() = %v", silent.Error(), silent.Reported())
	}

	cause := errors.New("boom")
	wrapped := &ExitError{Code: types.ExitFailure, Err: cause}
	if !errors.Is(wrapped, cause) || wrapped.Error() != "boom" || wrapped.Reported() {
		t.Errorf("wrapped ExitError = %v", wrapped)
	}
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{"success", nil, types.ExitOK},
		{"unresolved", &ExitError{Code: types.ExitUnresolved}, types.ExitUnresolved},
		{"wrapped exit error", fmt.Errorf("resolve: %w", &ExitError{Code: types.ExitUnresolved}), types.ExitUnresolved},
		{"plain error", errors.New("unknown flag"), types.ExitFailure},
	}
	for _, tt := range tests {
		if got := exitCodeOf(tt.err); got != tt.want {
			t.Errorf("%s: exitCodeOf() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
