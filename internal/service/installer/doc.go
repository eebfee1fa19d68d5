// Package installer implements the build-installer workflow. It runs the
// executable build first, then renders the installer options record
// (target directory template, shortcut placement, publisher metadata) into
// the installer toolchain's argument vector and invokes it.
package installer
