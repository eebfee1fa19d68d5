package common

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for the duration of the test,
// standing in for t.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// TestBuildMarkerLifecycle checks creation, detection and removal of the marker.
func TestBuildMarkerLifecycle(t *testing.T) {
	chdir(t, t.TempDir())

	ctx := context.Background()
	require.False(t, IsBuildRunningNow(ctx))

	require.NoError(t, CreateBuildMarker())
	require.True(t, IsBuildRunningNow(ctx))

	RemoveBuildMarker()
	require.False(t, IsBuildRunningNow(ctx))

	// Removing an absent marker is a no-op.
	RemoveBuildMarker()
}

// TestStaleMarkerIsRecovered ensures an old marker does not block new builds.
func TestStaleMarkerIsRecovered(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, CreateBuildMarker())

	stale := time.Now().Add(-2 * markerLifetime)
	require.NoError(t, os.Chtimes(MarkerFilename, stale, stale))

	require.False(t, IsBuildRunningNow(context.Background()))

	// Recovery removed the marker.
	_, err := os.Stat(MarkerFilename)
	require.ErrorIs(t, err, os.ErrNotExist)
}
