package version

// current is the release version, overridden at build time via
// -ldflags "-X github.com/indaco/cargodex/internal/version.current=...".
var current = "0.1.0"

// GetVersion returns the current cargodex version string, without the "v" prefix.
func GetVersion() string {
	return current
}
