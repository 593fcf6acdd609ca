// Package version holds the current release version of terminarz.
package version

// Version is the semver release string, overridable at build time with
// -ldflags "-X github.com/zaplanuj/terminarz/internal/version.Version=...".
var Version = "0.3.0"
