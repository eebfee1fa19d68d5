// Package builder implements the build-exe workflow: it discovers firmware
// payload binaries, selects the platform subsystem, stages the payloads,
// delegates freezing to the configured toolchain command, and writes a
// checksummed release manifest next to the artifacts.
//
// The one locally-defined failure is an empty payload set, which aborts the
// build before any toolchain invocation. Everything the toolchain reports is
// propagated unmodified.
package builder
