package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, defaults and format validations.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing entry point.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Bad homepage URL.
	cfg = &Config{
		EntryPoint:  "zubax_serial_updater",
		HomepageURL: "not a url",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Okay; defaults are applied.
	cfg = &Config{
		EntryPoint: "zubax_serial_updater",
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultAppName, cfg.AppName)
	require.Equal(t, DefaultPayloadPattern, cfg.PayloadPattern)
	require.Equal(t, DefaultInstallDirTemplate, cfg.InstallDirTemplate)
	require.Equal(t, DefaultShortcutName, cfg.ShortcutName)
	require.Equal(t, DefaultToolTimeout, cfg.ToolTimeout)
	require.Equal(t, DefaultHomepageURL, cfg.HomepageURL)
	require.Empty(t, cfg.InstallerCommand)
}

// TestLoadOrInit ensures a missing settings file is created with defaults
// and an existing one is loaded as-is.
func TestLoadOrInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg, err := LoadOrInit(path)
	require.NoError(t, err)
	require.Equal(t, DefaultAppName, cfg.EntryPoint)

	// The defaults were persisted.
	_, err = os.Stat(path)
	require.NoError(t, err)

	cfg.PayloadPattern = "*.img"
	require.NoError(t, Save(path, cfg))

	loaded, err := LoadOrInit(path)
	require.NoError(t, err)
	require.Equal(t, "*.img", loaded.PayloadPattern)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		EntryPoint:     "zubax_serial_updater",
		PayloadPattern: "*.img",
		FreezeCommand:  "freeze-tool",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.EntryPoint, loaded.EntryPoint)
	require.Equal(t, "*.img", loaded.PayloadPattern)
	require.Equal(t, "freeze-tool", loaded.FreezeCommand)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
