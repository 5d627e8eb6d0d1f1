// Package version reports the build of the running binary.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for the API binary.
func Info() BuildInfo { return For("veritas-api") }

// For returns the build information stamped into this binary under the given
// service name. version, commit and date are set at link time:
//
//	-ldflags "-X 'veritas/internal/core/version.version=v0.1.0'
//	          -X 'veritas/internal/core/version.commit=abcd'
//	          -X 'veritas/internal/core/version.date=2026-10-17'"
func For(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
