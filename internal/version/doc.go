// Package version exposes build metadata injected at link time and a helper
// to attach a `version` subcommand to cobra roots. The packaged release
// manifest records the same version string so updates can be compared.
package version
