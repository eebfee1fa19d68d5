// Package config defines distribution settings used by the build commands and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type externalizes branding, installer placement and toolchain
// commands that would otherwise be embedded literals in the build workflow.
package config
