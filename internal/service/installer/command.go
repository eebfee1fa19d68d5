package installer

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/zubax/updater-dist/internal/config"
	"github.com/zubax/updater-dist/internal/domain/dist"
	"github.com/zubax/updater-dist/internal/logger"
	"github.com/zubax/updater-dist/internal/service/builder"
	"github.com/zubax/updater-dist/internal/service/common"
	"github.com/zubax/updater-dist/internal/version"
)

// Options contains inputs for the build-installer entry point.
type Options struct {
	// ConfigPath is an optional path to the distribution settings.
	ConfigPath string
	// Force bypasses the fingerprint cache and always re-freezes.
	Force bool
}

var (
	// errBuildRunning indicates another build invocation holds the marker.
	errBuildRunning = errors.New("another build is running now")
	// errInstallerUnsupported indicates the platform has no installer
	// toolchain and none was configured.
	errInstallerUnsupported = errors.New("no installer toolchain for this platform")
)

// Run executes the build-installer workflow: freeze the executable first,
// then wrap it into a platform installer package.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "build-installer")

	if common.IsBuildRunningNow(ctx) {
		return errBuildRunning
	}

	if err := common.CreateBuildMarker(); err != nil {
		return fmt.Errorf("create build marker: %w", err)
	}

	defer common.RemoveBuildMarker()

	cfg, err := config.LoadOrInit(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cfg.Force = opts.Force

	// Resolve the installer toolchain before freezing anything: an installer
	// build that cannot finish should not do half the work.
	command, err := installerCommand(cfg)
	if err != nil {
		return err
	}

	result, err := builder.Execute(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	installerOpts := &dist.InstallerOptions{
		InitialTargetDir: cfg.InstallDirTemplate,
		ShortcutName:     cfg.ShortcutName,
		ShortcutDir:      cfg.ShortcutDir,
		Vendor:           cfg.Vendor,
		HomepageURL:      cfg.HomepageURL,
		Version:          version.Short(),
	}

	args := append(installerOpts.Args(),
		"--app="+cfg.AppName,
		"--staging-dir="+result.StagingDir,
	)

	logger.InfoKV(ctx, "Wrapping executable into installer package", "command", command)

	if err = common.RunTool(ctx, cfg.ToolTimeout, command, args...); err != nil {
		return fmt.Errorf("build installer: %w", err)
	}

	logger.Info(ctx, "Installer build completed successfully")

	return nil
}

// installerCommand resolves which toolchain wraps the executable. The
// platform default only exists on Windows; elsewhere the operator must
// configure installer_command explicitly.
func installerCommand(cfg *config.Config) (string, error) {
	if cfg.InstallerCommand != "" {
		return cfg.InstallerCommand, nil
	}

	if runtime.GOOS == "windows" {
		return config.DefaultInstallerCommand, nil
	}

	return "", fmt.Errorf("%w: %s (set installer_command to override)", errInstallerUnsupported, runtime.GOOS)
}
