// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/pkg/cueutil"
	"github.com/invowk/porter/pkg/types"
)

const (
	// AppName names the directory porter uses inside the user config dir.
	AppName = "porter"
	// ConfigFileName and ConfigFileExt make up "config.cue".
	ConfigFileName = "config"
	ConfigFileExt  = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns porter's directory under os.UserConfigDir:
// $XDG_CONFIG_HOME/porter (falling back to ~/.config/porter) on Linux,
// ~/Library/Application Support/porter on macOS and %AppData%\porter on Windows.
//
//nolint:revive // config.ConfigDir reads better at call sites than config.Dir
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate the user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultConfigPath returns the config file path inside ConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading: explicit file, then
// PORTER_CONFIG, then the config directory, then the current directory. A
// missing file is not an error; defaults apply.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	overrides, err := ParseEnv(opts.Env)
	if err != nil {
		return nil, err
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("hooks", defaults.Hooks)
	v.SetDefault("search_path", defaults.SearchPath)
	v.SetDefault("log_level", defaults.LogLevel)

	resolvedPath, err := locateConfigFile(opts, overrides)
	if err != nil {
		return nil, err
	}
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, cueLoadError(resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = resolvedPath
	overrides.Apply(&cfg)

	if cfg.SearchPath, err = expandSearchPath(cfg.SearchPath, opts.Env); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("expand search path").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Give every hook exactly one of env_var or map").
			WithSuggestion("Root namespaces must be plain names without dots").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// locateConfigFile picks the file to load: --config, then PORTER_CONFIG,
// then config.cue in the config directory, then config.cue in the working
// directory. It returns "" when only defaults apply. An explicitly named file
// that does not exist is an error.
func locateConfigFile(opts LoadOptions, overrides EnvOverrides) (string, error) {
	explicit := string(opts.ConfigFilePath)
	if explicit == "" {
		explicit = overrides.ConfigFile
	}
	if explicit != "" {
		if !fileExists(explicit) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(explicit).
				WithSuggestion("Check the --config flag or PORTER_CONFIG for typos").
				WithSuggestion("Run 'porter config init' to create the default file").
				WithIssue(issue.FileNotFoundId).
				Wrap(fmt.Errorf("config file not found: %w", fs.ErrNotExist)).
				BuildError()
		}
		return explicit, nil
	}

	name := ConfigFileName + "." + ConfigFileExt
	candidates := []string{name}
	dir := string(opts.ConfigDirPath)
	if dir == "" {
		// Without a home directory only the working directory is searched.
		dir, _ = ConfigDir()
	}
	if dir != "" {
		candidates = []string{filepath.Join(dir, name), name}
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// cueLoadError picks suggestions by failure kind: too large, schema
// violations (naming the offending fields) or syntax.
func cueLoadError(path string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithIssue(issue.ConfigLoadFailedId)

	var ve *cueutil.ValidationError
	switch {
	case errors.Is(err, cueutil.ErrFileTooLarge):
		ctx.WithSuggestion("A porter config is a few lines long; check that the path points at the right file")
	case errors.As(err, &ve) && len(ve.Paths()) > 0:
		for _, p := range ve.Paths() {
			ctx.WithSuggestion(fmt.Sprintf("Fix the value of %s", p))
		}
		ctx.WithSuggestion("Run 'porter config show' to see a valid configuration")
	default:
		ctx.WithSuggestion("Check that the file contains valid CUE syntax")
	}

	return ctx.Wrap(err).BuildError()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Config decodes to map[string]any rather than a struct so Viper keeps its
// defaults for fields the file leaves out.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := cueutil.ParseAndDecodeString[map[string]any](
		configSchema,
		data,
		"#Config",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists reports whether path names a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CreateDefaultConfig writes a default config file into dir (ConfigDir when
// dir is empty) unless one already exists, and returns its path.
func CreateDefaultConfig(dir types.FilesystemPath) (string, error) {
	cfgPath := filepath.Join(string(dir), ConfigFileName+"."+ConfigFileExt)
	if dir == "" {
		var err error
		if cfgPath, err = DefaultConfigPath(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, nil
}

// GenerateTOML renders the configuration as TOML, for tools that do not read CUE.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(data), nil
}

// GenerateCUE generates a CUE representation of the configuration.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// porter configuration file\n\n")
	fmt.Fprintf(&sb, "log_level: %q\n", cfg.LogLevel)

	if len(cfg.SearchPath) > 0 {
		sb.WriteString("\nsearch_path: [\n")
		for _, p := range cfg.SearchPath {
			fmt.Fprintf(&sb, "\t%q,\n", p)
		}
		sb.WriteString("]\n")
	}

	sb.WriteString("\nhooks: [")
	if len(cfg.Hooks) == 0 {
		sb.WriteString("]\n")
		return sb.String()
	}
	sb.WriteString("\n")
	for _, h := range cfg.Hooks {
		var fields []string
		if h.EnvVar != "" {
			fields = append(fields, fmt.Sprintf("env_var: %q", h.EnvVar))
		}
		if h.Map != "" {
			fields = append(fields, fmt.Sprintf("map: %q", h.Map))
		}
		if h.EntrySplit != "" {
			fields = append(fields, fmt.Sprintf("entry_split: %q", h.EntrySplit))
		}
		if h.KeyValueSplit != "" {
			fields = append(fields, fmt.Sprintf("key_value_split: %q", h.KeyValueSplit))
		}
		if h.NameSplit != "" {
			fields = append(fields, fmt.Sprintf("name_split: %q", h.NameSplit))
		}
		if h.Root != "" {
			fields = append(fields, fmt.Sprintf("root: %q", h.Root))
		}
		fmt.Fprintf(&sb, "\t{%s},\n", strings.Join(fields, ", "))
	}
	sb.WriteString("]\n")

	return sb.String()
}
