// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/porter/internal/host"
	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/pkg/fspath"
	"github.com/invowk/porter/pkg/types"
)

func newImportCommand(app *App) *cobra.Command {
	var (
		flags      hookFlags
		searchPath []string
	)

	cmd := &cobra.Command{
		Use:   "import <name>...",
		Short: "Load modules through the hooks and the search path",
		Long: `Import module names the way a host would: parents first, each name
offered to the hooks before the default search. Prints the artifact each
name was loaded from.

Exits with status 3 when a module cannot be found.`,
		Example: `  porter import vendor.ham.util
  porter import --search-path ./lib json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, cfg, logger, err := app.finder(cmd.Context(), &flags)
			if err != nil {
				return app.reportLoadError(err)
			}

			search := cfg.SearchPath
			if len(searchPath) > 0 {
				search = make([]types.FilesystemPath, 0, len(searchPath))
				for _, p := range searchPath {
					search = append(search, types.FilesystemPath(p))
				}
			}

			importer := host.NewImporter(app.Fs, chain, search, host.WithLogger(logger))
			for _, arg := range args {
				m, err := importer.Import(cmd.Context(), types.ModuleName(arg))
				if err != nil {
					code := types.ExitFailure
					if errors.Is(err, host.ErrModuleNotFound) {
						code = types.ExitUnresolved
					}
					return app.reportError(importError(arg, err), code)
				}
				app.printModule(m)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVar(&searchPath, "search-path", nil, "directories searched when no hook handles a name (default: configured search_path)")
	return cmd
}

// importError attaches the catalog issue for a failed import.
func importError(name string, err error) error {
	return issue.NewErrorContext().
		WithOperation("import " + name).
		WithIssue(classifyError(err)).
		Wrap(err).
		BuildError()
}

func (a *App) printModule(m *host.Module) {
	name := NameStyle.Render(string(m.Name))
	if m.IsVirtual() {
		fmt.Fprintf(a.stdout, "%s %s %s\n", successIcon, name, VirtualStyle.Render("(virtual package)"))
		return
	}
	fmt.Fprintf(a.stdout, "%s %s %s %s\n", successIcon, name, m.File,
		SubtitleStyle.Render(fmt.Sprintf("(%s, %s)", m.Kind, m.Origin)))
	if m.IsPackage() && len(m.Path) > 0 {
		fmt.Fprintf(a.stdout, "  %s path: %s\n", infoIcon, strings.Join(fspath.Strings(m.Path), ", "))
	}
}
