//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"

	"github.com/zubax/updater-dist/internal/domain/dist"
)

// DetectActor gathers host and user information for the release manifest,
// so a distribution can be traced back to the machine that produced it.
func DetectActor() (*dist.Actor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	return &dist.Actor{
		Hostname: hostname,
		Username: currentUser.Username,
	}, nil
}
