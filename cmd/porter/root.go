// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the porter command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "porter",
		Short: "Map module names to directories",
		Long: TitleStyle.Render("porter") + SubtitleStyle.Render(" - Map module names to directories") + `

porter resolves module names through mapping hooks before the default
search path is consulted. A mapping is a string like

  spam=/srv/spam:ham,eggs=/srv/shared

read from an environment variable or from the configuration. A hook may
graft its names below a virtual root package, so 'vendor.spam' resolves
to /srv/spam.

` + SubtitleStyle.Render("Examples:") + `
  porter resolve spam vendor.ham     Show what the hooks decide
  porter import vendor.ham.util      Load through hooks and search path
  porter scan ./lib ./plugins        Emit a mapping for directories
  porter check --explain             Validate every configured hook
  porter config show                 Show the effective configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "show the full error chain")
	rootCmd.PersistentFlags().StringVar(&app.flags.configFile, "config", "", "config file (default is $HOME/.config/porter/config.cue)")
	rootCmd.PersistentFlags().StringVar(&app.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newResolveCommand(app))
	rootCmd.AddCommand(newImportCommand(app))
	rootCmd.AddCommand(newScanCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the command's exit code. It is called
// by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		if code := exitCodeOf(err); !code.IsSuccess() {
			os.Exit(int(code))
		}
	}
}

// errorHandler leaves already-reported ExitErrors alone and defers the rest
// to fang's styled output.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Reported() {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// formatErrorForDisplay renders actionable errors with their suggestions and,
// when verbose, the wrapped cause chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// reportError prints err to stderr and returns a silent ExitError carrying code.
// In verbose mode the linked catalog guide follows the message.
func (a *App) reportError(err error, code types.ExitCode) error {
	fmt.Fprintf(a.stderr, "%s %s\n", errorIcon, formatErrorForDisplay(err, a.flags.verbose))

	var ae *issue.ActionableError
	if a.flags.verbose && errors.As(err, &ae) {
		if guide := ae.CatalogIssue(); guide != nil {
			if rendered, rerr := guide.Render("notty"); rerr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}
	return &ExitError{Code: code}
}
