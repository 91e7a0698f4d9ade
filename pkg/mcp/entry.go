package mcp

// Entry pairs a server record with the project that declared it.
// Entries are built during aggregation and never mutated afterwards;
// installs clone the server before rewriting anything.
type Entry struct {
	Server        Server
	SourceProject string
}
