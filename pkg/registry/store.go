package registry

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/logging"
	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
)

// Store applies add/remove decisions to the global registry file. It works
// on the document as generic JSON rather than the typed sources.Global
// view so that every unrelated field in the file, known or not, survives
// the rewrite. Read-modify-write is not atomic; concurrent instances
// racing on the file is an accepted limitation of single-user use.
type Store struct {
	path string
}

// NewStore returns a store for the global registry at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Install copies the chosen entry's server into destProject's server map,
// rewriting any argument that embeds the origin project's path to
// reference the destination instead. Intermediate structure (projects
// object, project entry, server map) is created as needed. Installing a
// name that already exists under destProject overwrites it. The adapted
// server is returned for display.
func (s *Store) Install(name string, entry mcp.Entry, destProject string) (mcp.Server, error) {
	server := entry.Server.Clone()
	for i, arg := range server.Args {
		if strings.Contains(arg, entry.SourceProject) {
			server.Args[i] = strings.ReplaceAll(arg, entry.SourceProject, destProject)
		}
	}

	doc, err := s.read()
	if err != nil {
		return mcp.Server{}, err
	}

	projects, ok := doc["projects"].(map[string]any)
	if !ok {
		projects = make(map[string]any)
		doc["projects"] = projects
	}
	project, ok := projects[destProject].(map[string]any)
	if !ok {
		project = make(map[string]any)
		projects[destProject] = project
	}
	servers, ok := project["mcpServers"].(map[string]any)
	if !ok {
		servers = make(map[string]any)
		project["mcpServers"] = servers
	}

	// Round-trip through JSON so the stored value matches the generic
	// document instead of carrying a typed struct.
	raw, err := json.Marshal(server)
	if err != nil {
		return mcp.Server{}, errors.WrapParse("json", s.path, err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return mcp.Server{}, errors.WrapParse("json", s.path, err)
	}
	servers[name] = generic

	logging.Debug().
		Str("name", name).
		Str("from", entry.SourceProject).
		Str("to", destProject).
		Msg("installing server into global registry")

	if err := s.write(doc); err != nil {
		return mcp.Server{}, err
	}
	return server, nil
}

// Uninstall removes name from destProject's server map. An absent name is
// a no-op at this layer; callers are expected to have checked membership
// through the active project view first.
func (s *Store) Uninstall(name string, destProject string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}

	if projects, ok := doc["projects"].(map[string]any); ok {
		if project, ok := projects[destProject].(map[string]any); ok {
			if servers, ok := project["mcpServers"].(map[string]any); ok {
				delete(servers, name)
			}
		}
	}

	logging.Debug().
		Str("name", name).
		Str("project", destProject).
		Msg("removing server from global registry")

	return s.write(doc)
}

func (s *Store) read() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.WrapRegistry("read", s.path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapRegistry("parse", s.path, err)
	}
	return doc, nil
}

func (s *Store) write(doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.WrapParse("json", s.path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.WrapRegistry("write", s.path, err)
	}
	return nil
}
