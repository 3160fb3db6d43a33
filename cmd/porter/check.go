// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/pkg/porter"
	"github.com/invowk/porter/pkg/types"
)

func newCheckCommand(app *App) *cobra.Command {
	var (
		explain bool
		style   string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and every configured hook",
		Long: `Load the configuration and construct every hook, reporting each
failure. With --explain, print the guide for every kind of failure found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var explained []issue.Id

			cfg, err := app.LoadConfig(cmd.Context())
			if err != nil {
				fmt.Fprintf(app.stdout, "%s %s\n", errorIcon, formatErrorForDisplay(err, app.flags.verbose))
				explained = append(explained, classifyError(err))
				return app.finishCheck(explain, style, explained)
			}

			fmt.Fprintf(app.stdout, "%s config: %s\n", successIcon, describeSource(cfg))

			logger := app.Logger(cfg)
			if len(cfg.Hooks) == 0 {
				fmt.Fprintf(app.stdout, "%s no hooks configured\n", infoIcon)
			}
			built := make([]*porter.Hook, 0, len(cfg.Hooks))
			for i, h := range cfg.Hooks {
				hook, err := h.Build(app.Environment(), logger)
				if err != nil {
					fmt.Fprintf(app.stdout, "%s hooks[%d] %s: %v\n", errorIcon, i, h.Describe(), err)
					if id := classifyError(err); !slices.Contains(explained, id) {
						explained = append(explained, id)
					}
					continue
				}
				fmt.Fprintf(app.stdout, "%s hooks[%d] %s: %s\n", successIcon, i, h.Describe(), describeHook(hook))
				if j := sameHook(built, hook); j >= 0 {
					fmt.Fprintf(app.stdout, "%s hooks[%d] repeats hooks[%d] and never resolves anything new\n", warningIcon, i, j)
				}
				built = append(built, hook)
			}

			return app.finishCheck(explain, style, explained)
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "print the guide for each kind of failure")
	cmd.Flags().StringVar(&style, "style", "dark", "glamour style for --explain (dark, light, notty, ascii)")
	return cmd
}

func describeHook(h *porter.Hook) string {
	names := h.Names()
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, string(n))
	}
	desc := fmt.Sprintf("%d name(s)", len(names))
	if len(parts) > 0 {
		desc += " [" + strings.Join(parts, ", ") + "]"
	}
	if root := h.Root(); root != "" {
		desc += " under " + NameStyle.Render(string(root))
	}
	return desc
}

// sameHook returns the index of the first hook in earlier with the same root
// and table as h, or -1.
func sameHook(earlier []*porter.Hook, h *porter.Hook) int {
	for i, prev := range earlier {
		if prev.Root() == h.Root() && prev.Table().Equal(h.Table()) {
			return i
		}
	}
	return -1
}

// finishCheck renders the guides for the collected issues and turns any
// failure into exit status 1.
func (a *App) finishCheck(explain bool, style string, ids []issue.Id) error {
	if len(ids) == 0 {
		return nil
	}
	if explain {
		for _, id := range ids {
			is := issue.Get(id)
			if is == nil {
				continue
			}
			rendered, err := is.Render(style)
			if err != nil {
				return a.reportError(err, types.ExitFailure)
			}
			fmt.Fprint(a.stdout, rendered)
		}
	}
	return &ExitError{Code: types.ExitFailure}
}
