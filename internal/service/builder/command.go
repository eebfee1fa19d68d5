package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zubax/updater-dist/internal/config"
	"github.com/zubax/updater-dist/internal/domain/dist"
	"github.com/zubax/updater-dist/internal/logger"
	"github.com/zubax/updater-dist/internal/repository/fingerprint"
	"github.com/zubax/updater-dist/internal/service/common"
)

// Options contains inputs for the build-exe entry point.
type Options struct {
	// ConfigPath is an optional path to the distribution settings
	// (defaults to updater-dist-settings.yaml, created when absent).
	ConfigPath string
	// Force bypasses the fingerprint cache and always re-freezes.
	Force bool
}

// Result describes the outcome of a build for callers that chain further
// steps (the installer workflow).
type Result struct {
	// StagingDir is where the artifacts and the manifest were written.
	StagingDir string
	// Payloads are the firmware images bundled into the distribution.
	Payloads []string
	// Subsystem is the subsystem the executable was frozen for.
	Subsystem dist.Subsystem
	// Skipped reports that the freeze was skipped because the input
	// fingerprints matched the previous successful build.
	Skipped bool
}

// builder holds the state of a single build execution.
// It is unexported—callers should use Run or Execute.
type builder struct {
	// cfg holds the distribution configuration.
	cfg *config.Config
	// payloads is the discovered firmware image set.
	payloads []string
	// subsystem is the platform subsystem the executable targets.
	subsystem dist.Subsystem
	// buildOpts is the assembled freeze options record.
	buildOpts *dist.BuildOptions
	// executable is the assembled executable descriptor.
	executable *dist.Executable
	// freezeArgs is the full argument vector handed to the freeze tool.
	freezeArgs []string
	// snapshot fingerprints this run's inputs and options.
	snapshot *fingerprint.Snapshot
	// repo persists fingerprints between runs.
	repo fingerprint.Repository
}

// errBuildRunning indicates that an attempt was made to start a build while
// another one is already running.
var errBuildRunning = errors.New("another build is running now")

// Run executes the build-exe workflow. It is the CLI entry point: it guards
// against concurrent builds and persists effective settings.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "build-exe")

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

	if _, err = Execute(ctx, cfg); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info(ctx, "Build completed successfully")

	return nil
}

// Execute runs the build workflow with an already-validated configuration.
// Callers own marker handling; the installer workflow reuses this directly.
func Execute(ctx context.Context, cfg *config.Config) (*Result, error) {
	b, err := newBuilder(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return b.run(ctx)
}

// newBuilder discovers inputs and assembles the packaging configuration.
// Payload discovery failing is fatal: it happens before any toolchain call.
func newBuilder(ctx context.Context, cfg *config.Config) (*builder, error) {
	logger.InfoKV(ctx, "Discovering payload binaries", "pattern", cfg.PayloadPattern)

	payloads, err := dist.DiscoverPayloads(".", cfg.PayloadPattern)
	if err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Found payload binaries", "payloads", strings.Join(payloads, ", "))

	subsystem := dist.SubsystemFor(runtime.GOOS)
	logger.InfoKV(ctx, "Selected platform subsystem", "goos", runtime.GOOS, "subsystem", string(subsystem))

	b := &builder{
		cfg:       cfg,
		payloads:  payloads,
		subsystem: subsystem,
		buildOpts: dist.NewBuildOptions(payloads),
		executable: &dist.Executable{
			EntryPoint:   cfg.EntryPoint,
			Icon:         cfg.IconPath,
			ShortcutName: cfg.ShortcutName,
			ShortcutDir:  cfg.ShortcutDir,
			Base:         subsystem,
		},
		repo: fingerprint.NewFileRepository(filepath.Join(cfg.StagingDir, fingerprint.DefaultFilename)),
	}

	b.freezeArgs = b.assembleFreezeArgs()

	return b, nil
}

// assembleFreezeArgs renders the full argument vector for the freeze tool.
func (b *builder) assembleFreezeArgs() []string {
	args := append([]string(nil), b.executable.Args()...)
	args = append(args, b.buildOpts.Args()...)
	args = append(args, "--target-dir="+b.cfg.StagingDir)

	return args
}

// run executes the assembled build: fingerprint, stage, freeze, manifest.
func (b *builder) run(ctx context.Context) (*Result, error) {
	result := &Result{
		StagingDir: b.cfg.StagingDir,
		Payloads:   b.payloads,
		Subsystem:  b.subsystem,
	}

	if err := b.computeSnapshot(ctx); err != nil {
		return nil, fmt.Errorf("fingerprint inputs: %w", err)
	}

	if b.canSkipFreeze(ctx) {
		result.Skipped = true
		return result, nil
	}

	if err := os.MkdirAll(b.cfg.StagingDir, dist.DefaultFileMode); err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}

	logger.Info(ctx, "Staging payload binaries")

	if err := b.stagePayloads(ctx); err != nil {
		return nil, fmt.Errorf("stage payloads: %w", err)
	}

	logger.InfoKV(ctx, "Freezing executable", "command", b.cfg.FreezeCommand)

	if err := common.RunTool(ctx, b.cfg.ToolTimeout, b.cfg.FreezeCommand, b.freezeArgs...); err != nil {
		return nil, fmt.Errorf("freeze executable: %w", err)
	}

	logger.InfoKV(ctx, "Writing release manifest", "path", b.manifestPath())

	if err := b.writeManifest(ctx); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	if err := b.repo.Save(ctx, b.snapshot); err != nil {
		return nil, fmt.Errorf("save fingerprints: %w", err)
	}

	b.printNextSteps(ctx)

	return result, nil
}

// manifestPath returns where the release manifest lands.
func (b *builder) manifestPath() string {
	return filepath.Join(b.cfg.StagingDir, dist.ManifestFilename)
}

// canSkipFreeze reports whether the previous build's fingerprints match this
// run's inputs and the manifest is still in place.
func (b *builder) canSkipFreeze(ctx context.Context) bool {
	if b.cfg.Force {
		logger.Info(ctx, "Fingerprint cache bypassed by --force")
		return false
	}

	stored, err := b.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, fingerprint.ErrNotFound) {
			logger.Warnf(ctx, "Unable to read stored fingerprints: %v", err)
		}

		return false
	}

	if !b.snapshot.Equal(stored) {
		logger.Info(ctx, "Inputs changed since the last build")
		return false
	}

	if _, err = os.Stat(b.manifestPath()); err != nil {
		return false
	}

	logger.Info(ctx, "Inputs unchanged since the last successful build, skipping freeze")

	return true
}

// writeManifest fills and persists the release manifest next to the artifacts.
func (b *builder) writeManifest(ctx context.Context) error {
	manifest := dist.NewManifest()
	manifest.AppName = b.cfg.AppName
	manifest.Subsystem = b.subsystem
	manifest.Payloads = append([]string(nil), b.payloads...)

	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	manifest.BuiltBy = actor

	if err = b.fillChecksums(ctx, manifest); err != nil {
		return err
	}

	contents, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}

	return os.WriteFile(b.manifestPath(), contents, dist.DefaultFileMode)
}

// printNextSteps logs human-readable guidance for distributing the artifacts.
func (b *builder) printNextSteps(ctx context.Context) {
	files := make([]string, 0, len(b.payloads)+1)
	files = append(files, b.payloads...)
	files = append(files, dist.ManifestFilename)
	sort.Strings(files)

	var sb strings.Builder

	sb.WriteString("Distribution staged under ")
	sb.WriteString(b.cfg.StagingDir)
	sb.WriteString(". Upload the following files together with the frozen executable:\n")

	for i, name := range files {
		if i > 0 {
			sb.WriteString(",\n")
		}

		sb.WriteString(name)
	}

	logger.Info(ctx, sb.String())
}
