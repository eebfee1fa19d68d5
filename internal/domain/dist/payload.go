package dist

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// ErrNoPayloadBinaries signals that no firmware images matched the payload
// pattern. The build must abort before any toolchain invocation.
var ErrNoPayloadBinaries = errors.New("could not find payload binaries")

// DiscoverPayloads returns the file names in dir matching the provided glob
// pattern, sorted and duplicate-free. An empty result is an error: a
// distribution without firmware images is useless to the updater.
func DiscoverPayloads(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("match payload pattern %q: %w", pattern, err)
	}

	seen := make(map[string]struct{}, len(matches))
	payloads := make([]string, 0, len(matches))

	for _, match := range matches {
		name := filepath.Base(match)
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		payloads = append(payloads, name)
	}

	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: pattern %q in %s", ErrNoPayloadBinaries, pattern, dir)
	}

	sort.Strings(payloads)

	return payloads, nil
}
