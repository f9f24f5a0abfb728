package main

import (
	"log"
	"os"

	"github.com/ironsheep/recolor/cmd/recolor/commands"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logging goes to stderr; stdout carries the per-file completion lines
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("RECOLOR_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("recolor v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	info := commands.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}
	if err := commands.Execute(info, commands.Options{Debug: debug}); err != nil {
		os.Exit(1)
	}
}
