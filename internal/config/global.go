// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the platform config directory when set. Tests
// use it because os.UserHomeDir ignores HOME on some platforms.
var configDirOverride string

// SetConfigDirOverride makes ConfigDir return dir until the returned restore
// function is called:
//
//	t.Cleanup(config.SetConfigDirOverride(t.TempDir()))
func SetConfigDirOverride(dir string) (restore func()) {
	prev := configDirOverride
	configDirOverride = dir
	return func() { configDirOverride = prev }
}
