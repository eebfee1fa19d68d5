package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the distribution settings shared by the build commands.
// It externalizes what used to be hard-coded branding and installer
// constants so target paths can be varied without touching logic.
type Config struct {
	// AppName is the name of the frozen executable and installer package.
	AppName string `yaml:"app_name"`
	// AppDescription is the human-readable product description embedded in the package.
	AppDescription string `yaml:"app_description"`
	// Vendor is the publisher name used in installer metadata.
	Vendor string `yaml:"vendor"`
	// HomepageURL is the product URL embedded in installer metadata.
	HomepageURL string `yaml:"homepage_url"`
	// EntryPoint is the program frozen into the standalone executable.
	EntryPoint string `yaml:"entry_point"`
	// IconPath is the icon resource attached to the executable and its shortcut.
	IconPath string `yaml:"icon"`
	// PayloadPattern is the glob matching firmware images bundled with the executable.
	PayloadPattern string `yaml:"payload_pattern"`
	// StagingDir is where payloads are staged and build artifacts land.
	StagingDir string `yaml:"staging_dir"`
	// FreezeCommand is the external tool that produces the standalone executable.
	FreezeCommand string `yaml:"freeze_command"`
	// InstallerCommand is the external tool that wraps the executable into an
	// installer package. Empty means "platform default", which only exists on
	// Windows.
	InstallerCommand string `yaml:"installer_command"`
	// InstallDirTemplate is the installer's target directory template.
	InstallDirTemplate string `yaml:"install_dir"`
	// ShortcutName is the display name of the generated shortcut.
	ShortcutName string `yaml:"shortcut_name"`
	// ShortcutDir is the well-known folder receiving the shortcut.
	ShortcutDir string `yaml:"shortcut_dir"`
	// ToolTimeout bounds a single delegated toolchain invocation.
	ToolTimeout time.Duration `yaml:"tool_timeout"`
	// Force is set at runtime by the CLI to bypass the fingerprint cache.
	// It is not persisted to YAML.
	Force bool `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default filename for distribution settings.
	DefaultConfigFilename = "updater-dist-settings.yaml"

	// DefaultAppName matches the entry point of the shipped updater.
	DefaultAppName = "zubax_serial_updater"

	// DefaultAppDescription is the product description embedded in packages.
	DefaultAppDescription = "Zubax serial firmware updater"

	// DefaultVendor is the publisher recorded in installer metadata.
	DefaultVendor = "Zubax"

	// DefaultHomepageURL is the product URL recorded in installer metadata.
	DefaultHomepageURL = "http://zubax.com"

	// DefaultIconFilename is the icon resource shipped next to the entry point.
	DefaultIconFilename = "icon.ico"

	// DefaultPayloadPattern matches firmware images in the working directory.
	DefaultPayloadPattern = "*.bin"

	// DefaultStagingDir collects staged inputs and build artifacts.
	DefaultStagingDir = "build"

	// DefaultFreezeCommand is the freezing toolchain invoked to produce the executable.
	DefaultFreezeCommand = "cxfreeze"

	// DefaultInstallerCommand is the installer toolchain used on Windows
	// when no explicit installer_command is configured.
	DefaultInstallerCommand = "msibuild"

	// DefaultInstallDirTemplate is the installer target path template.
	DefaultInstallDirTemplate = `[ProgramFilesFolder]\Zubax\serial_updater`

	// DefaultShortcutName is the display name of the generated shortcut.
	DefaultShortcutName = "Zubax Serial Updater"

	// DefaultShortcutDir places the shortcut into the start menu.
	DefaultShortcutDir = "ProgramMenuFolder"

	// DefaultToolTimeout bounds delegated toolchain invocations.
	DefaultToolTimeout = 5 * time.Minute

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errEntryPointRequired is returned when no entry point is configured.
	errEntryPointRequired = errors.New("entry point must be provided")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrInit loads configuration from the provided path, creating and
// persisting a default configuration when the file does not exist yet.
func LoadOrInit(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg = &Config{
		EntryPoint: DefaultAppName,
	}

	if err := Save(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting,
// applying defaults for everything optional.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.EntryPoint == "" {
		return errEntryPointRequired
	}

	if cfg.AppName == "" {
		cfg.AppName = DefaultAppName
	}

	if cfg.AppDescription == "" {
		cfg.AppDescription = DefaultAppDescription
	}

	if cfg.Vendor == "" {
		cfg.Vendor = DefaultVendor
	}

	if cfg.IconPath == "" {
		cfg.IconPath = DefaultIconFilename
	}

	if cfg.PayloadPattern == "" {
		cfg.PayloadPattern = DefaultPayloadPattern
	}

	if cfg.StagingDir == "" {
		cfg.StagingDir = DefaultStagingDir
	}

	if cfg.FreezeCommand == "" {
		cfg.FreezeCommand = DefaultFreezeCommand
	}

	if cfg.InstallDirTemplate == "" {
		cfg.InstallDirTemplate = DefaultInstallDirTemplate
	}

	if cfg.ShortcutName == "" {
		cfg.ShortcutName = DefaultShortcutName
	}

	if cfg.ShortcutDir == "" {
		cfg.ShortcutDir = DefaultShortcutDir
	}

	if cfg.ToolTimeout <= 0 {
		cfg.ToolTimeout = DefaultToolTimeout
	}

	if cfg.HomepageURL == "" {
		cfg.HomepageURL = DefaultHomepageURL

		return nil
	}

	if _, err := url.ParseRequestURI(cfg.HomepageURL); err != nil {
		return fmt.Errorf("invalid homepage URL: %w", err)
	}

	return nil
}
