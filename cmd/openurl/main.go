// Command openurl opens a URL in the system default browser, optionally
// appending sanitized query parameters.
package main

import (
	"context"
	"os"

	"github.com/jongio/openurl-core/cliout"
	"github.com/jongio/openurl-core/version"
)

// Set via ldflags at release time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	info := version.New("openurl")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	cmd := newRootCommand(info)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
