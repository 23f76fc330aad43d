// Command quadspace opens four web apps in a 2x2 grid, switched by workspace.
package main

import (
	"runtime"

	"github.com/bnema/quadspace/internal/cli/cmd"
	"github.com/bnema/quadspace/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
