package dist

import (
	"strings"
)

// Base runtime packages bundled into every frozen executable: the serial
// transport the updater flashes over and the GUI toolkit it renders with.
const (
	serialPackage = "serial"
	guiPackage    = "tkinter"
)

// BundledPackages returns the runtime packages frozen into the executable.
// The list is fixed: it does not vary by platform or payload contents.
func BundledPackages() []string {
	return []string{serialPackage, guiPackage}
}

// BuildOptions describes what the freeze step bundles into the executable.
// The record is assembled once per build and consumed by a single toolchain
// invocation.
type BuildOptions struct {
	// Packages are the runtime packages bundled into the executable.
	Packages []string
	// IncludeMSVCRuntime bundles the platform C runtime with the executable.
	IncludeMSVCRuntime bool
	// IncludeFiles are the payload files distributed next to the executable.
	IncludeFiles []string
}

// NewBuildOptions assembles build options for the provided payload set.
func NewBuildOptions(payloads []string) *BuildOptions {
	return &BuildOptions{
		Packages:           BundledPackages(),
		IncludeMSVCRuntime: true,
		IncludeFiles:       append([]string(nil), payloads...),
	}
}

// Args renders the record as toolchain command arguments.
func (o *BuildOptions) Args() []string {
	args := []string{
		"--packages=" + strings.Join(o.Packages, ","),
	}

	if o.IncludeMSVCRuntime {
		args = append(args, "--include-msvcr")
	}

	if len(o.IncludeFiles) > 0 {
		args = append(args, "--include-files="+strings.Join(o.IncludeFiles, ","))
	}

	return args
}

// Executable describes the frozen binary produced by the freeze step.
type Executable struct {
	// EntryPoint is the program frozen into the executable.
	EntryPoint string
	// Icon is the icon resource attached to the executable.
	Icon string
	// ShortcutName is the display name of the generated shortcut.
	ShortcutName string
	// ShortcutDir is the well-known folder receiving the shortcut.
	ShortcutDir string
	// Base is the subsystem the executable attaches to.
	Base Subsystem
}

// Args renders the descriptor as toolchain command arguments.
func (e *Executable) Args() []string {
	return []string{
		"--script=" + e.EntryPoint,
		"--base=" + e.Base.TargetBase(),
		"--icon=" + e.Icon,
		"--shortcut-name=" + e.ShortcutName,
		"--shortcut-dir=" + e.ShortcutDir,
	}
}

// InstallerOptions describes how the frozen executable is wrapped into a
// platform installer package.
type InstallerOptions struct {
	// InitialTargetDir is the installer's target directory template.
	InitialTargetDir string
	// ShortcutName is the display name of the installed shortcut.
	ShortcutName string
	// ShortcutDir is the well-known folder receiving the shortcut.
	ShortcutDir string
	// Vendor is the publisher recorded in installer metadata.
	Vendor string
	// HomepageURL is the product URL recorded in installer metadata.
	HomepageURL string
	// Version is the package version recorded in installer metadata.
	Version string
}

// Args renders the record as toolchain command arguments.
func (o *InstallerOptions) Args() []string {
	return []string{
		"--initial-target-dir=" + o.InitialTargetDir,
		"--shortcut-name=" + o.ShortcutName,
		"--shortcut-dir=" + o.ShortcutDir,
		"--vendor=" + o.Vendor,
		"--url=" + o.HomepageURL,
		"--version=" + o.Version,
	}
}
