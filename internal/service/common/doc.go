// Package common holds helpers shared by the build services: actor detection
// for the release manifest and the marker file guarding against concurrent
// build invocations.
package common
