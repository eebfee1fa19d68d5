package dist

import (
	"github.com/zubax/updater-dist/internal/version"
)

// ManifestFilename stores the release manifest written next to the artifacts.
const ManifestFilename = "updater-dist-manifest.yaml"

// defaultMapCapacity is the default initial capacity for maps and slices.
const defaultMapCapacity = 16

// Actor identifies who produced a distribution.
type Actor struct {
	// Hostname is the machine name where the build ran.
	Hostname string `yaml:"hostname"`
	// Username is the system user who ran the build.
	Username string `yaml:"username"`
}

// Manifest contains metadata about a produced distribution. It is uploaded
// alongside the artifacts so update clients can verify what they download.
type Manifest struct {
	// VersionNumber is the semantic version of this release.
	VersionNumber string `yaml:"version"`
	// AppName is the name of the frozen executable.
	AppName string `yaml:"app"`
	// Subsystem records which subsystem the executable was frozen for.
	Subsystem Subsystem `yaml:"subsystem"`
	// Files maps distributed file names to their base64-encoded checksums.
	Files map[string]string `yaml:"files"`
	// Payloads lists the firmware images bundled into the distribution.
	Payloads []string `yaml:"payloads"`
	// BuiltBy records who produced the distribution.
	BuiltBy *Actor `yaml:"built_by,omitempty"`
}

// NewManifest produces a Manifest initialized with defaults.
func NewManifest() *Manifest {
	return &Manifest{
		VersionNumber: version.Short(),
		Files:         make(map[string]string, defaultMapCapacity),
	}
}
