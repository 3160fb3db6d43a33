// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/invowk/porter/internal/config"
	"github.com/invowk/porter/pkg/porter"
	"github.com/invowk/porter/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. All command constructors
	// receive an App reference.
	App struct {
		Config    config.Provider
		Fs        afero.Fs
		configDir types.FilesystemPath
		env       map[string]string
		stdout    io.Writer
		stderr    io.Writer
		flags     rootFlags
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config    config.Provider
		Fs        afero.Fs
		// ConfigDir replaces the platform config directory when set.
		ConfigDir types.FilesystemPath
		// Env replaces the process environment for PORTER_* overrides and
		// env_var hooks when non-nil.
		Env       map[string]string
		Stdout    io.Writer
		Stderr    io.Writer
	}

	rootFlags struct {
		configFile string
		logLevel   string
		verbose    bool
	}
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:    deps.Config,
		Fs:        deps.Fs,
		configDir: deps.ConfigDir,
		env:       deps.Env,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Fs == nil {
		app.Fs = afero.NewOsFs()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// LoadConfig loads the effective configuration: file, PORTER_* overrides,
// then the --log-level flag.
func (a *App) LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(a.flags.configFile),
		ConfigDirPath:  a.configDir,
		Env:            a.env,
	})
	if err != nil {
		return nil, err
	}
	if a.flags.logLevel != "" {
		level := config.LogLevel(a.flags.logLevel)
		if err := level.Validate(); err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

// Logger returns the CLI logger at the configured level.
func (a *App) Logger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(a.stderr, log.Options{
		Prefix: "porter",
	})
	if level, err := log.ParseLevel(string(cfg.LogLevel)); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// Environment is the lookup env_var hooks read their mapping from.
func (a *App) Environment() porter.Environment {
	if a.env == nil {
		return nil
	}
	return porter.EnvironmentMap(a.env)
}
