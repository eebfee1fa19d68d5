package common

import (
	"context"
	"errors"
	"os"
	"runtime"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/zubax/updater-dist/internal/domain/dist"
	"github.com/zubax/updater-dist/internal/logger"
)

const (
	// MarkerFilename marks that a build is running right now to avoid
	// parallel invocations clobbering the staging directory.
	MarkerFilename = "updater-dist-build-marker.bin"

	// baseBuilderExecutable is this tool's executable name; platform helpers
	// append the extension when needed.
	baseBuilderExecutable = "updater-dist"

	// markerLifetime is the period after which a stale build marker is ignored.
	markerLifetime = 30 * time.Minute
)

// IsBuildRunningNow checks presence of a marker file and attempts recovery if it looks stale.
func IsBuildRunningNow(ctx context.Context) bool {
	logger.Info(ctx, "Checking for the presence of a build marker")

	fileInfo, err := os.Stat(MarkerFilename)
	if err == nil {
		if time.Since(fileInfo.ModTime()) <= markerLifetime {
			return true
		}

		logger.Info(ctx, "The build marker is too old, attempting cleanup")

		if err = terminateProcessByName(builderExecutable()); err != nil {
			return true
		}

		if err = os.Remove(MarkerFilename); err != nil {
			return true
		}

		return false
	}

	if errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "Build marker not found, continuing")
		return false
	}

	logger.Infof(ctx, "Unable to read build marker: %v", err)

	return false
}

// CreateBuildMarker writes the marker file claiming the current build slot.
func CreateBuildMarker() error {
	marker, err := os.Create(MarkerFilename)
	if err != nil {
		return err
	}

	return marker.Close()
}

// RemoveBuildMarker releases the build slot. Missing markers are ignored.
func RemoveBuildMarker() {
	if _, err := os.Stat(MarkerFilename); err == nil {
		_ = os.Remove(MarkerFilename)
	}
}

// terminateProcessByName tries to kill processes with the provided executable name.
func terminateProcessByName(processName string) error {
	processList, err := ps.Processes()
	if err != nil {
		return err
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != processName {
			continue
		}

		var runningProcess *os.Process

		runningProcess, err = os.FindProcess(process.Pid())
		if err != nil {
			return err
		}

		if err = runningProcess.Kill(); err != nil {
			return err
		}
	}

	return nil
}

func builderExecutable() string {
	return baseBuilderExecutable + dist.ExecutableExtension(runtime.GOOS)
}
