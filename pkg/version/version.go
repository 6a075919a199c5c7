// Package version exposes the build metadata stamped into the binary at
// release time. All three variables default to "unknown" for plain go-build
// binaries and are overridden through -ldflags "-X ..." by the release
// pipeline.
package version

import "fmt"

var (
	Version    = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Info is the JSON-friendly view of the stamped build metadata.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}

// String renders the metadata on one line for terminal output.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildDate)
}
