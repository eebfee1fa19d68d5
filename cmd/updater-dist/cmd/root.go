package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zubax/updater-dist/internal/config"
	"github.com/zubax/updater-dist/internal/logger"
	"github.com/zubax/updater-dist/internal/service/builder"
	"github.com/zubax/updater-dist/internal/service/installer"
	"github.com/zubax/updater-dist/internal/version"
)

var (
	// configPath to the distribution settings YAML file.
	configPath string

	// logLevel is the minimum level for console logging.
	logLevel string

	// force bypasses the fingerprint cache and always re-freezes.
	force bool

	// rootCmd represents the base command for producing distributions.
	rootCmd = &cobra.Command{
		Use:   "updater-dist",
		Short: "Package the Zubax serial firmware updater for distribution",
		Long: "Discover firmware payload binaries, freeze the updater into a " +
			"standalone executable via the configured toolchain, and optionally " +
			"wrap it into a platform installer package.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}
		},
	}

	// buildExeCmd freezes the executable.
	buildExeCmd = &cobra.Command{
		Use:   "build-exe",
		Short: "Freeze the updater into a standalone executable",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &builder.Options{
				ConfigPath: configPath,
				Force:      force,
			}

			return builder.Run(ctx, options)
		},
	}

	// buildInstallerCmd freezes the executable and wraps it into an installer.
	buildInstallerCmd = &cobra.Command{
		Use:   "build-installer",
		Short: "Freeze the updater and wrap it into an installer package",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &installer.Options{
				ConfigPath: configPath,
				Force:      force,
			}

			return installer.Run(ctx, options)
		},
	}
)

// Execute runs the updater-dist CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "minimum console log level")
	rootCmd.PersistentFlags().BoolVarP(&force, "force", "f", false, "bypass the fingerprint cache and rebuild")

	rootCmd.AddCommand(buildExeCmd, buildInstallerCmd)
}
