package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewBuildOptions checks that the bundled package list is fixed and the
// include-files list mirrors the payload set.
func TestNewBuildOptions(t *testing.T) {
	t.Parallel()

	opts := NewBuildOptions([]string{"firmware_v1.bin"})
	require.Equal(t, []string{"serial", "tkinter"}, opts.Packages)
	require.True(t, opts.IncludeMSVCRuntime)
	require.Equal(t, []string{"firmware_v1.bin"}, opts.IncludeFiles)

	// The package list does not depend on the payload set.
	empty := NewBuildOptions(nil)
	require.Equal(t, []string{"serial", "tkinter"}, empty.Packages)
	require.Empty(t, empty.IncludeFiles)

	// Mutating the options must not leak into the caller's slice.
	payloads := []string{"a.bin", "b.bin"}
	opts = NewBuildOptions(payloads)
	opts.IncludeFiles[0] = "mutated"
	require.Equal(t, "a.bin", payloads[0])
}

// TestBuildOptionsArgs verifies the rendered argument vector.
func TestBuildOptionsArgs(t *testing.T) {
	t.Parallel()

	opts := NewBuildOptions([]string{"firmware_v1.bin", "firmware_v2.bin"})

	args := opts.Args()
	require.Contains(t, args, "--packages=serial,tkinter")
	require.Contains(t, args, "--include-msvcr")
	require.Contains(t, args, "--include-files=firmware_v1.bin,firmware_v2.bin")

	opts.IncludeMSVCRuntime = false
	opts.IncludeFiles = nil
	args = opts.Args()
	require.Equal(t, []string{"--packages=serial,tkinter"}, args)
}

// TestExecutableArgs verifies the executable descriptor rendering.
func TestExecutableArgs(t *testing.T) {
	t.Parallel()

	exe := &Executable{
		EntryPoint:   "zubax_serial_updater",
		Icon:         "icon.ico",
		ShortcutName: "Zubax Serial Updater",
		ShortcutDir:  "ProgramMenuFolder",
		Base:         SubsystemGUI,
	}

	args := exe.Args()
	require.Contains(t, args, "--script=zubax_serial_updater")
	require.Contains(t, args, "--base=Win32GUI")
	require.Contains(t, args, "--icon=icon.ico")
	require.Contains(t, args, "--shortcut-name=Zubax Serial Updater")
	require.Contains(t, args, "--shortcut-dir=ProgramMenuFolder")
}

// TestInstallerOptionsArgs verifies the installer record rendering.
func TestInstallerOptionsArgs(t *testing.T) {
	t.Parallel()

	opts := &InstallerOptions{
		InitialTargetDir: `[ProgramFilesFolder]\Zubax\serial_updater`,
		ShortcutName:     "Zubax Serial Updater",
		ShortcutDir:      "ProgramMenuFolder",
		Vendor:           "Zubax",
		HomepageURL:      "http://zubax.com",
		Version:          "1.0.0",
	}

	args := opts.Args()
	require.Contains(t, args, `--initial-target-dir=[ProgramFilesFolder]\Zubax\serial_updater`)
	require.Contains(t, args, "--vendor=Zubax")
	require.Contains(t, args, "--version=1.0.0")
}
