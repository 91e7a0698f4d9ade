package cmd

import (
	"sort"

	"github.com/signal-slot/cc-mcp-admin/internal/config"
	"github.com/signal-slot/cc-mcp-admin/pkg/logging"
	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
	"github.com/signal-slot/cc-mcp-admin/pkg/registry"
	"github.com/signal-slot/cc-mcp-admin/pkg/sources"
)

// workspace is everything a command needs for one invocation: the merged
// registry across all sources, the servers effective in the working
// directory, and a store for mutations. Rebuilt per invocation.
type workspace struct {
	cfg      *config.Config
	global   *sources.Global
	registry registry.Registry
	// active maps name to the server effective in cfg.WorkDir.
	active map[string]mcp.Server
	// localOverride is the working directory's .mcp.json, nil when absent
	// or unparseable. Used to refuse removals of read-only records.
	localOverride *sources.ProjectFile
	store         *registry.Store
}

// loadWorkspace reads both sources and builds the merged views. The global
// registry failing to load is fatal; everything else degrades gracefully.
func loadWorkspace() (*workspace, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	global, err := sources.LoadGlobal(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}

	overrides := sources.DiscoverOverrides(global)
	logging.Debug().
		Int("projects", len(global.Projects)).
		Int("overrides", len(overrides)).
		Msg("collected configuration sources")

	// The working directory's override applies even when the global
	// registry has never heard of this project.
	localOverride, err := sources.LoadProjectFile(cfg.OverridePath(cfg.WorkDir))
	if err != nil {
		localOverride = nil
	}

	return &workspace{
		cfg:           cfg,
		global:        global,
		registry:      registry.Collect(global, overrides),
		active:        registry.ActiveView(global, localOverride, cfg.WorkDir),
		localOverride: localOverride,
		store:         registry.NewStore(cfg.RegistryPath),
	}, nil
}

// enabledHere reports whether name is effective in the working directory.
func (ws *workspace) enabledHere(name string) bool {
	_, ok := ws.active[name]
	return ok
}

// sortedKeys returns a map's keys in sorted order for stable rendering.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// inLocalOverride reports whether name is declared by the working
// directory's own .mcp.json, which this tool never writes.
func (ws *workspace) inLocalOverride(name string) bool {
	if ws.localOverride == nil {
		return false
	}
	_, ok := ws.localOverride.MCPServers[name]
	return ok
}
