package dist

// Subsystem selects how the frozen executable attaches to the platform:
// with a graphical subsystem or a plain console.
type Subsystem string

const (
	// SubsystemGUI produces a windowed executable with no console attached.
	SubsystemGUI Subsystem = "gui"
	// SubsystemConsole produces a regular console executable.
	SubsystemConsole Subsystem = "console"
)

// guiCapablePlatforms lists platforms whose freeze target supports a
// dedicated GUI subsystem. Everything absent from the map gets the
// console default.
//
//nolint:gochecknoglobals // Static capability lookup table.
var guiCapablePlatforms = map[string]struct{}{
	"windows": {},
}

// SubsystemFor returns the subsystem for the provided platform identifier
// (runtime.GOOS). It is a pure capability lookup with no side effects.
func SubsystemFor(goos string) Subsystem {
	if _, ok := guiCapablePlatforms[goos]; ok {
		return SubsystemGUI
	}

	return SubsystemConsole
}

// ExecutableExtension returns the executable suffix for the provided
// platform identifier: ".exe" on Windows, empty elsewhere.
func ExecutableExtension(goos string) string {
	if goos == "windows" {
		return ".exe"
	}

	return ""
}

// TargetBase returns the freeze toolchain's base target for the subsystem.
func (s Subsystem) TargetBase() string {
	if s == SubsystemGUI {
		return "Win32GUI"
	}

	return "Console"
}
