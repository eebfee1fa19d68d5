package builder

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/zubax/updater-dist/internal/domain/dist"
	"github.com/zubax/updater-dist/internal/logger"
)

// stagePayloads copies the discovered firmware images verbatim into the
// staging directory. Placement is atomic with checksum verification so a
// crashed build never leaves a half-written payload next to the executable.
func (b *builder) stagePayloads(ctx context.Context) error {
	for _, name := range b.payloads {
		logger.InfoKV(ctx, "Staging payload", "file", name)

		data, err := os.ReadFile(filepath.Clean(name))
		if err != nil {
			return err
		}

		checksum, err := dist.GetFileChecksum(name)
		if err != nil {
			return err
		}

		target := filepath.Join(b.cfg.StagingDir, name)

		if _, err = os.Stat(target); err != nil && errors.Is(err, os.ErrNotExist) {
			if _, err = os.Create(filepath.Clean(target)); err != nil {
				return err
			}
		}

		options := goupdate.Options{
			TargetPath: target,
			TargetMode: dist.DefaultFileMode,
			Checksum:   checksum,
			Hash:       dist.DefaultChecksumFunction,
		}

		if err = goupdate.Apply(bytes.NewReader(data), options); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}

		oldFileName := target + ".old"
		if _, err = os.Stat(oldFileName); err == nil {
			_ = os.Remove(oldFileName)
		}
	}

	return nil
}

// fillChecksums records the checksums of every staged distribution file into
// the manifest: the payloads and, when the toolchain produced it where
// expected, the frozen executable itself.
func (b *builder) fillChecksums(ctx context.Context, manifest *dist.Manifest) error {
	for _, name := range b.payloads {
		checksum, err := dist.GetFileChecksum(filepath.Join(b.cfg.StagingDir, name))
		if err != nil {
			return fmt.Errorf("checksum %s: %w", name, err)
		}

		manifest.Files[name] = base64.StdEncoding.EncodeToString(checksum)
	}

	executable := b.cfg.AppName + dist.ExecutableExtension(runtime.GOOS)
	executablePath := filepath.Join(b.cfg.StagingDir, executable)

	checksum, err := dist.GetFileChecksum(executablePath)
	if err != nil {
		// Toolchains differ in how they name the frozen binary. The manifest
		// stays useful without it; the payload checksums are the contract.
		logger.WarnKV(ctx, "Frozen executable not found for checksumming", "path", executablePath)

		return nil
	}

	manifest.Files[executable] = base64.StdEncoding.EncodeToString(checksum)

	return nil
}
