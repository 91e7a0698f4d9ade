// Package registry merges server records from every configuration source
// into a unified by-name view and applies add/remove decisions back to the
// global registry file. The merged view is rebuilt from scratch on every
// invocation; nothing is cached across runs.
package registry

import (
	"sort"

	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
	"github.com/signal-slot/cc-mcp-admin/pkg/sources"
)

// Registry maps a server name to every record declared for it, across all
// projects and both sources. Each slice is sorted by source project so
// output and baseline selection are reproducible regardless of map
// iteration order.
type Registry map[string][]mcp.Entry

// Collect builds a Registry from the global registry contents and the
// discovered per-project overrides. All contributions are retained; a name
// declared by three projects yields three entries. Pure transformation, no
// I/O.
func Collect(global *sources.Global, overrides map[string]sources.ProjectFile) Registry {
	reg := make(Registry)

	if global != nil {
		for projectPath, cfg := range global.Projects {
			for name, server := range cfg.MCPServers {
				reg[name] = append(reg[name], mcp.Entry{
					Server:        server,
					SourceProject: projectPath,
				})
			}
		}
	}

	for projectPath, file := range overrides {
		for name, server := range file.MCPServers {
			reg[name] = append(reg[name], mcp.Entry{
				Server:        server,
				SourceProject: projectPath,
			})
		}
	}

	for name := range reg {
		entries := reg[name]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].SourceProject < entries[j].SourceProject
		})
		reg[name] = entries
	}

	return reg
}

// Names returns all server names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entries for a name, or false when no project declares
// it.
func (r Registry) Lookup(name string) ([]mcp.Entry, bool) {
	entries, ok := r[name]
	return entries, ok && len(entries) > 0
}

// ActiveView returns the servers effective for one project directory: the
// global registry's block for that project overlaid with its override
// file. The override wins on name collision. The view answers membership
// questions only; mutations always target the global registry.
func ActiveView(global *sources.Global, override *sources.ProjectFile, projectPath string) map[string]mcp.Server {
	view := make(map[string]mcp.Server)

	if global != nil {
		if cfg, ok := global.Projects[projectPath]; ok {
			for name, server := range cfg.MCPServers {
				view[name] = server
			}
		}
	}

	if override != nil {
		for name, server := range override.MCPServers {
			view[name] = server
		}
	}

	return view
}
