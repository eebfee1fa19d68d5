package common

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/zubax/updater-dist/internal/logger"
)

// RunTool invokes an external toolchain command bounded by the provided
// timeout. Output is only surfaced on failure: the descriptor consumes
// nothing from a successful tool run beyond its exit status.
func RunTool(ctx context.Context, timeout time.Duration, command string, args ...string) error {
	toolCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.InfoKV(ctx, "Invoking toolchain command", "command", command, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(toolCtx, command, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(output))
		if trimmed == "" {
			return fmt.Errorf("%s: %w", command, err)
		}

		return fmt.Errorf("%s: %w: %s", command, err, trimmed)
	}

	logger.DebugKV(ctx, "Toolchain command finished", "command", command)

	return nil
}
