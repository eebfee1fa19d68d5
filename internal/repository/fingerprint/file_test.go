package fingerprint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileRepository_SaveLoadRoundtrip checks persistence and the not-found sentinel.
func TestFileRepository_SaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fingerprints.json")
	repo := NewFileRepository(path)

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	snapshot := NewSnapshot()
	snapshot.Inputs["firmware_v1.bin"] = "00000000deadbeef"
	snapshot.Options = "0123456789abcdef"

	require.NoError(t, repo.Save(ctx, snapshot))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, snapshot.Equal(loaded))
}

// TestSnapshotEqual covers nil handling and input/option sensitivity.
func TestSnapshotEqual(t *testing.T) {
	t.Parallel()

	a := NewSnapshot()
	a.Inputs["x.bin"] = "aa"
	a.Options = "opts"

	b := NewSnapshot()
	b.Inputs["x.bin"] = "aa"
	b.Options = "opts"

	require.True(t, a.Equal(b))

	b.Options = "changed"
	require.False(t, a.Equal(b))

	b.Options = "opts"
	b.Inputs["y.bin"] = "bb"
	require.False(t, a.Equal(b))

	require.False(t, a.Equal(nil))
	require.False(t, (*Snapshot)(nil).Equal(a))
}

// TestComputeFileFingerprint ensures fingerprints track content, not metadata.
func TestComputeFileFingerprint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pathA := filepath.Join(dir, "a.bin")
	pathB := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(pathA, []byte{1, 2, 3}, 0o600))
	require.NoError(t, os.WriteFile(pathB, []byte{1, 2, 3}, 0o600))

	fpA, err := ComputeFileFingerprint(pathA)
	require.NoError(t, err)

	fpB, err := ComputeFileFingerprint(pathB)
	require.NoError(t, err)
	require.Equal(t, fpA, fpB)

	require.NoError(t, os.WriteFile(pathB, []byte{1, 2, 4}, 0o600))

	fpB, err = ComputeFileFingerprint(pathB)
	require.NoError(t, err)
	require.NotEqual(t, fpA, fpB)
}

// TestComputeOptionsFingerprint ensures element boundaries are preserved.
func TestComputeOptionsFingerprint(t *testing.T) {
	t.Parallel()

	require.NotEqual(t,
		ComputeOptionsFingerprint([]string{"ab", "c"}),
		ComputeOptionsFingerprint([]string{"a", "bc"}))

	require.Equal(t,
		ComputeOptionsFingerprint([]string{"--base=Win32GUI"}),
		ComputeOptionsFingerprint([]string{"--base=Win32GUI"}))
}
