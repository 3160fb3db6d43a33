// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/invowk/porter/pkg/types"
)

func newResolveCommand(app *App) *cobra.Command {
	var flags hookFlags

	cmd := &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Show what the hooks decide for module names",
		Long: `Run module names through the configured hooks, in order, and print
the first decision: a directory, a virtual namespace, or not handled.

Exits with status 3 when any name is not handled.`,
		Example: `  porter resolve spam pkg.spam
  porter resolve --map 'spam=/srv/spam' --root pkg pkg pkg.spam`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, _, _, err := app.finder(cmd.Context(), &flags)
			if err != nil {
				return app.reportLoadError(err)
			}

			unresolved := 0
			for _, arg := range args {
				name := types.ModuleName(arg)
				if err := name.Validate(); err != nil {
					return app.reportError(err, types.ExitFailure)
				}
				out := chain.Find(name, nil)
				if !out.Handled() {
					unresolved++
				}
				app.printOutcome(name, out)
			}

			if unresolved > 0 {
				return &ExitError{Code: types.ExitUnresolved}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
