// Package appmeta exposes the build-time identity of the Basalt desktop
// application: its name and semantic version, fixed at packaging time.
package appmeta

// Name is the application name reported to the host framework.
var Name = "Basalt"

// Version is set at build time via ldflags.
var Version = "0.1.0-dev"

// devVersion is the sentinel left in place when no version was injected.
const devVersion = "0.1.0-dev"

// Metadata is an immutable snapshot of the application identity. It is
// shared read-only across all command invocations.
type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Current returns the metadata baked into this build.
func Current() Metadata {
	return Metadata{Name: Name, Version: Version}
}

// IsDev reports whether this build carries the development version
// sentinel, i.e. no release version was injected at build time.
func (m Metadata) IsDev() bool {
	return m.Version == devVersion
}
