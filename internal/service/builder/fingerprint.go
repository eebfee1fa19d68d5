package builder

import (
	"context"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zubax/updater-dist/internal/logger"
	"github.com/zubax/updater-dist/internal/repository/fingerprint"
)

// computeSnapshot fingerprints the build inputs in parallel: each payload
// file, the entry point when it exists on disk, and the rendered freeze
// argument vector.
func (b *builder) computeSnapshot(ctx context.Context) error {
	snapshot := fingerprint.NewSnapshot()
	snapshot.Options = fingerprint.ComputeOptionsFingerprint(b.freezeArgs)

	inputs := append([]string(nil), b.payloads...)

	// The entry point is only fingerprinted when present; its absence is the
	// freeze tool's problem, not the descriptor's.
	if _, err := os.Stat(b.cfg.EntryPoint); err == nil {
		inputs = append(inputs, b.cfg.EntryPoint)
	} else {
		logger.DebugKV(ctx, "Entry point not present locally, not fingerprinted", "entry_point", b.cfg.EntryPoint)
	}

	var mu sync.Mutex

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for _, name := range inputs {
		name := name

		group.Go(func() error {
			fp, err := fingerprint.ComputeFileFingerprint(name)
			if err != nil {
				return err
			}

			mu.Lock()
			snapshot.Inputs[name] = fp
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	b.snapshot = snapshot

	return nil
}
