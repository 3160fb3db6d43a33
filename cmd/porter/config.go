// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/porter/internal/config"
	"github.com/invowk/porter/pkg/types"
)

// newConfigCommand creates the `porter config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage porter configuration",
		Long: `Manage porter configuration.

Configuration is stored in:
  - Linux: ~/.config/porter/config.cue
  - macOS: ~/Library/Application Support/porter/config.cue
  - Windows: %APPDATA%\porter\config.cue

PORTER_CONFIG or --config select another file. PORTER_LOG_LEVEL,
PORTER_SEARCH_PATH, PORTER_MAP_VAR and PORTER_ROOT override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Context())
			if err != nil {
				return app.reportError(err, types.ExitFailure)
			}
			fmt.Fprintf(app.stderr, "%s %s\n", infoIcon, SubtitleStyle.Render("source: ")+describeSource(cfg))

			switch format {
			case "cue":
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			case "toml":
				out, err := config.GenerateTOML(cfg)
				if err != nil {
					return app.reportError(err, types.ExitFailure)
				}
				fmt.Fprint(app.stdout, out)
			default:
				return fmt.Errorf("unknown format %q (valid: cue, toml)", format)
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&format, "format", "cue", "output format: cue or toml")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Context())
			if err != nil {
				return app.reportError(err, types.ExitFailure)
			}
			if cfg.Source != "" {
				fmt.Fprintln(app.stdout, cfg.Source)
				return nil
			}
			path, err := app.defaultConfigPath()
			if err != nil {
				return app.reportError(err, types.ExitFailure)
			}
			fmt.Fprintln(app.stdout, path)
			fmt.Fprintf(app.stderr, "%s %s\n", infoIcon, SubtitleStyle.Render("file does not exist; defaults apply"))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(app.configDir)
			if err != nil {
				return app.reportError(err, types.ExitFailure)
			}
			fmt.Fprintf(app.stdout, "%s %s\n", successIcon, path)
			return nil
		},
	})

	return cfgCmd
}

func (a *App) defaultConfigPath() (string, error) {
	if a.configDir == "" {
		return config.DefaultConfigPath()
	}
	return filepath.Join(string(a.configDir), config.ConfigFileName+"."+config.ConfigFileExt), nil
}

func describeSource(cfg *config.Config) string {
	if cfg.Source == "" {
		return SubtitleStyle.Render("(using defaults)")
	}
	return cfg.Source
}
