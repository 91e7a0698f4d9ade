// Package sources reads the two on-disk configuration sources: the global
// registry (~/.claude.json) and optional per-project override files
// (.mcp.json). The global registry is required; override files are best
// effort and contribute nothing when missing or malformed.
package sources

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/logging"
	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
)

// OverrideFilename is the per-project override file probed inside each
// project directory known to the global registry.
const OverrideFilename = ".mcp.json"

// ProjectConfig is one project's block inside the global registry.
type ProjectConfig struct {
	MCPServers map[string]mcp.Server `json:"mcpServers"`
}

// Global is the typed view of the global registry document. Unknown
// top-level fields are not represented here; mutation goes through the
// generic document in registry.Store so they survive writes.
type Global struct {
	Projects map[string]ProjectConfig `json:"projects"`
}

// ProjectFile is a per-project override document.
type ProjectFile struct {
	MCPServers map[string]mcp.Server `json:"mcpServers"`
}

// LoadGlobal reads and parses the global registry. Failure here is fatal
// for the invocation: the registry is both the primary source and the only
// mutation target.
func LoadGlobal(path string) (*Global, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapRegistry("read", path, err)
	}

	var g Global
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, errors.WrapRegistry("parse", path, err)
	}
	return &g, nil
}

// LoadProjectFile reads and parses one per-project override file.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var f ProjectFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &f, nil
}

// DiscoverOverrides probes every project path known to the global registry
// for an override file and returns the ones that parsed, keyed by project
// path. Missing or malformed files are skipped: a broken .mcp.json in one
// project must not hide every other project's records.
func DiscoverOverrides(global *Global) map[string]ProjectFile {
	overrides := make(map[string]ProjectFile)
	if global == nil {
		return overrides
	}

	for projectPath := range global.Projects {
		path := filepath.Join(projectPath, OverrideFilename)
		f, err := LoadProjectFile(path)
		if err != nil {
			if !stderrors.Is(err, fs.ErrNotExist) {
				logging.Debug().Err(err).Str("path", path).Msg("skipping unreadable project override")
			}
			continue
		}
		overrides[projectPath] = *f
	}
	return overrides
}
