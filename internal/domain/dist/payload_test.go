package dist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDiscoverPayloads_Empty ensures an empty directory aborts with the
// sentinel error.
func TestDiscoverPayloads_Empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	payloads, err := DiscoverPayloads(dir, "*.bin")
	require.ErrorIs(t, err, ErrNoPayloadBinaries)
	require.Nil(t, payloads)
}

// TestDiscoverPayloads_MatchesExactly ensures the result equals the matching
// set: sorted, no omissions, no duplicates, no extras.
func TestDiscoverPayloads_MatchesExactly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"firmware_v2.bin", "firmware_v1.bin", "readme.txt", "icon.ico"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0xDE, 0xAD}, 0o600))
	}

	payloads, err := DiscoverPayloads(dir, "*.bin")
	require.NoError(t, err)
	require.Equal(t, []string{"firmware_v1.bin", "firmware_v2.bin"}, payloads)
}

// TestDiscoverPayloads_SingleBinary covers the canonical single-payload case.
func TestDiscoverPayloads_SingleBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "firmware_v1.bin"), []byte{0x01}, 0o600))

	payloads, err := DiscoverPayloads(dir, "*.bin")
	require.NoError(t, err)
	require.Equal(t, []string{"firmware_v1.bin"}, payloads)
}
