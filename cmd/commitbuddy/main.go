/*
Copyright © 2025 huimingz

CommitBuddy - Interactive Conventional Commits assistant
*/
package main

import (
	"os"

	"github.com/huimingz/commitbuddy-go/internal/cli"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, GitCommit, BuildTime)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
