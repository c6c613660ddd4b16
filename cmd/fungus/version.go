package main

// Build information, injected at link time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
