// Package version exposes the kopen release string.
package version

// Version is set at build time with
// -ldflags "-X github.com/indaco/kopen/internal/version.Version=1.2.3".
var Version = "dev"

// GetVersion returns the current kopen version.
func GetVersion() string {
	return Version
}
