// Package build describes the running binary.
package build

import "fmt"

// Info is filled from ldflags by the main package.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

const repoURL = "https://github.com/bnema/quadspace"

// RepoURL is the project home page.
func RepoURL() string { return repoURL }

// Short renders "version (commit)", dropping unknown parts.
func (i Info) Short() string {
	switch {
	case i.Version == "":
		return "dev"
	case i.Commit == "" || i.Commit == "unknown":
		return i.Version
	default:
		return fmt.Sprintf("%s (%.7s)", i.Version, i.Commit)
	}
}
