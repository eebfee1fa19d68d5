package dist

import (
	"crypto/sha512"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGetFileChecksum verifies the checksum matches a direct SHA-512 of the contents.
func TestGetFileChecksum(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "firmware_v1.bin")
	contents := []byte("not actual firmware")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	checksum, err := GetFileChecksum(path)
	require.NoError(t, err)

	expected := sha512.Sum512(contents)
	require.Equal(t, expected[:], checksum)

	_, err = GetFileChecksum(filepath.Join(dir, "missing.bin"))
	require.Error(t, err)
}
