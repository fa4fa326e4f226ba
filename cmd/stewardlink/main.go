// Package main provides the entry point for the stewardlink CLI tool.
package main

import (
	"github.com/ugrc/stewardlink/cmd/stewardlink/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
