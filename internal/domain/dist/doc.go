// Package dist holds the build-time records describing a distribution of the
// serial firmware updater: the discovered payload set, the freeze and
// installer option records, the executable descriptor with its platform
// subsystem, and the release manifest with file checksums.
//
// Nothing here talks to hardware. The records are assembled once per build
// and rendered into argument vectors for the delegated packaging toolchain.
package dist
