package fingerprint

import (
	"fmt"
	"io"
	"maps"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Snapshot captures the fingerprints of everything that feeds a freeze:
// the input files and the rendered toolchain options. Two equal snapshots
// mean the freeze would produce the same artifact again.
type Snapshot struct {
	// Inputs maps input file names to their content fingerprints.
	Inputs map[string]string `json:"inputs"`
	// Options fingerprints the rendered toolchain argument vector.
	Options string `json:"options"`
	// ComputedAt is when the snapshot was taken. Ignored by Equal.
	ComputedAt time.Time `json:"computed_at"`
}

// defaultMapCapacity is the default initial capacity for maps.
const defaultMapCapacity = 16

// NewSnapshot produces an empty snapshot stamped with the current time.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Inputs:     make(map[string]string, defaultMapCapacity),
		ComputedAt: time.Now().UTC(),
	}
}

// Equal reports whether two snapshots describe the same inputs and options.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return false
	}

	if s.Options != other.Options {
		return false
	}

	return maps.Equal(s.Inputs, other.Inputs)
}

// ComputeFileFingerprint returns the XXH64 fingerprint of a file's content.
func ComputeFileFingerprint(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller.
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	hasher := xxhash.New()
	if _, err = io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeOptionsFingerprint returns the XXH64 fingerprint of an argument
// vector. A zero byte separates elements so that ["ab","c"] and ["a","bc"]
// fingerprint differently.
func ComputeOptionsFingerprint(args []string) string {
	hasher := xxhash.New()

	for _, arg := range args {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
