// Package main provides the entry point for the cc-mcp-admin CLI tool.
package main

import "github.com/signal-slot/cc-mcp-admin/cmd/cc-mcp-admin/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd.Execute(version, commit)
}
