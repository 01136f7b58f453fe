// Package version reports what build is running
package version

// BuildInfo identifies a build
type BuildInfo struct {
	Service string `json:"service" example:"hidegrade-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit"  example:"9f1c2ab"`
	Date    string `json:"date"    example:"2024-06-10"`
}

// Service is the name every binary reports
const Service = "hidegrade-api"

// set with -ldflags "-X hidegrade/internal/core/version.version=v0.3.0 -X ...commit=... -X ...date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
}
