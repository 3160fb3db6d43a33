// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/internal/scan"
	"github.com/invowk/porter/pkg/fspath"
	"github.com/invowk/porter/pkg/types"
)

func newScanCommand(app *App) *cobra.Command {
	var flags hookFlags

	cmd := &cobra.Command{
		Use:   "scan [dir...]",
		Short: "Print a mapping for the modules found in directories",
		Long: `List the packages and modules of each directory and print them as a
mapping string. Earlier directories win when a name appears twice, as in
a search path. Without arguments, the configured search_path is scanned.

The output can be used as-is in a mapping variable:

  export PORTER_MAP="$(porter scan ./lib ./plugins)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Context())
			if err != nil {
				return app.reportError(err, types.ExitFailure)
			}

			dirs := cfg.SearchPath
			if len(args) > 0 {
				dirs = make([]types.FilesystemPath, 0, len(args))
				for _, arg := range args {
					abs, err := fspath.Abs(types.FilesystemPath(arg))
					if err != nil {
						return app.reportError(err, types.ExitFailure)
					}
					dirs = append(dirs, abs)
				}
			}

			res, err := scan.Scan(cmd.Context(), app.Fs, dirs)
			if err != nil {
				return app.reportError(err, types.ExitFailure)
			}

			for _, s := range res.Skipped {
				fmt.Fprintf(app.stderr, "%s skipped %s: %s\n", warningIcon, s.Path, s.Reason)
			}
			for _, s := range res.Shadowed {
				fmt.Fprintf(app.stderr, "%s %s in %s is shadowed by %s\n", warningIcon, NameStyle.Render(string(s.Name)), s.Loser, s.Winner)
			}

			opts := flags.mapOptions()
			// Parsing the output back catches directories containing a delimiter.
			if _, err := res.Table(opts...); err != nil {
				return app.reportError(issue.NewErrorContext().
					WithOperation("scan").
					WithIssue(classifyError(err)).
					WithSuggestion("Pick delimiters that do not appear in the scanned paths").
					Wrap(err).
					BuildError(), types.ExitFailure)
			}

			fmt.Fprintln(app.stdout, res.Encode(opts...))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.entrySplit, "entry-split", "", "entry delimiter (default \":\")")
	cmd.Flags().StringVar(&flags.keyValueSplit, "key-value-split", "", "names/directory delimiter (default \"=\")")
	cmd.Flags().StringVar(&flags.nameSplit, "name-split", "", "name list delimiter (default \",\")")
	return cmd
}
