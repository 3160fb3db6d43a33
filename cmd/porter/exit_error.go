// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/invowk/porter/pkg/types"
)

// ExitError carries a command's exit code back to Execute so RunE handlers
// never call os.Exit themselves.
type ExitError struct {
	Code types.ExitCode
	// Err is nil once the failure has been printed to the user.
	Err error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Reported reports whether the failure was already printed.
func (e *ExitError) Reported() bool {
	return e.Err == nil
}

// exitCodeOf maps a command error to the process exit code: success for nil,
// the carried code for an ExitError and ExitFailure for anything else.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}
