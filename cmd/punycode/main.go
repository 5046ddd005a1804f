package main

import (
	"os"

	"github.com/npillmayer/punycode/internal/cli"
)

// Set by goreleaser via ldflags.
var (
	commit  = "HEAD"
	version = "latest"
)

func main() {
	if err := cli.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
