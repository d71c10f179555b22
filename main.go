package main

import "github.com/yushkumar524/BiasLabPrototype/cmd"

// Populated by -ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
