// SPDX-License-Identifier: MPL-2.0

// Package config loads porter's configuration using Viper with CUE as the file format.
//
// Configuration is read from config.cue in the platform config directory
// (~/.config/porter on Linux, ~/Library/Application Support/porter on macOS,
// %APPDATA%\porter on Windows), from the current directory, or from an
// explicit path. The file is validated against an embedded CUE schema
// (config_schema.cue) before being merged over Viper defaults.
//
// A small set of PORTER_* environment variables override file values; they
// are parsed with caarlos0/env (see EnvOverrides).
//
// The configuration describes an ordered list of hooks. Chain turns it into a
// porter.Chain, constructing every hook eagerly so a broken mapping is
// reported before any module is resolved.
package config
