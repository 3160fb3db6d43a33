// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/invowk/porter/pkg/types"
)

func TestLogLevel_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   LogLevel
		wantErr bool
	}{
		{LogLevelDebug, false},
		{LogLevelInfo, false},
		{LogLevelWarn, false},
		{LogLevelError, false},
		{"", true},
		{"trace", true},
		{"INFO", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			err := tt.level.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LogLevel(%q).Validate() error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidLogLevel) {
				t.Errorf("error should wrap ErrInvalidLogLevel, got: %v", err)
			}
		})
	}
}

func TestHookConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hook    HookConfig
		wantErr error
	}{
		{name: "env var", hook: HookConfig{EnvVar: "PORTER_MAP"}},
		{name: "inline map with root", hook: HookConfig{Map: "spam=/d", Root: "vendor"}},
		{name: "no source", hook: HookConfig{}, wantErr: ErrHookSourceMissing},
		{name: "both sources", hook: HookConfig{EnvVar: "X", Map: "a=/b"}, wantErr: ErrHookSourceAmbiguous},
		{name: "dotted root", hook: HookConfig{Map: "a=/b", Root: "a.b"}, wantErr: types.ErrDottedModuleName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.hook.Validate(3)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidHookConfig) {
				t.Errorf("error should wrap ErrInvalidHookConfig, got: %v", err)
			}
			var hookErr *InvalidHookConfigError
			if !errors.As(err, &hookErr) || hookErr.Index != 3 {
				t.Errorf("error should carry index 3, got: %v", err)
			}
		})
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Hooks:      []HookConfig{{}, {EnvVar: "OK"}, {EnvVar: "X", Map: "a=/b"}},
		SearchPath: []types.FilesystemPath{"/ok", "  "},
		LogLevel:   "loud",
	}

	err := cfg.Validate()
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got %T", err)
	}
	if len(cfgErr.FieldErrors) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(cfgErr.FieldErrors), err)
	}
	for _, target := range []error{ErrInvalidConfig, ErrInvalidLogLevel, types.ErrInvalidFilesystemPath, ErrHookSourceAmbiguous} {
		if !errors.Is(err, target) {
			t.Errorf("error should wrap %v", target)
		}
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
