package main

// Populated via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)
