package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSubsystemFor verifies the platform capability lookup: windows gets the
// GUI subsystem, everything else falls back to console.
func TestSubsystemFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, SubsystemGUI, SubsystemFor("windows"))

	for _, goos := range []string{"linux", "darwin", "freebsd", "js", ""} {
		require.Equal(t, SubsystemConsole, SubsystemFor(goos))
	}

	// The lookup is pure: repeated calls agree.
	require.Equal(t, SubsystemFor("windows"), SubsystemFor("windows"))
}

// TestTargetBase checks the freeze target rendered per subsystem.
func TestTargetBase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Win32GUI", SubsystemGUI.TargetBase())
	require.Equal(t, "Console", SubsystemConsole.TargetBase())
}
