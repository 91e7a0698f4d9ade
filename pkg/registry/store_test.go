package registry_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
	"github.com/signal-slot/cc-mcp-admin/pkg/registry"
	"github.com/signal-slot/cc-mcp-admin/pkg/sources"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".claude.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestInstall(t *testing.T) {
	t.Run("rewrites origin paths to the destination", func(t *testing.T) {
		path := writeRegistry(t, `{"projects": {}}`)
		store := registry.NewStore(path)

		entry := mcp.Entry{
			Server: mcp.Server{
				Command: "uvx",
				Args:    []string{"serena", "--project", "/origin/data"},
			},
			SourceProject: "/origin",
		}

		installed, err := store.Install("serena", entry, "/dest")
		require.NoError(t, err)
		assert.Equal(t, []string{"serena", "--project", "/dest/data"}, installed.Args)

		// Fresh aggregation sees the record under the destination project.
		global, err := sources.LoadGlobal(path)
		require.NoError(t, err)
		reg := registry.Collect(global, nil)
		entries, ok := reg.Lookup("serena")
		require.True(t, ok)
		require.Len(t, entries, 1)
		assert.Equal(t, "/dest", entries[0].SourceProject)
		assert.Equal(t, []string{"serena", "--project", "/dest/data"}, entries[0].Server.Args)
	})

	t.Run("creates intermediate structure", func(t *testing.T) {
		path := writeRegistry(t, `{}`)
		store := registry.NewStore(path)

		_, err := store.Install("foo", mcp.Entry{
			Server:        mcp.Server{Command: "run"},
			SourceProject: "/origin",
		}, "/dest")
		require.NoError(t, err)

		doc := readDoc(t, path)
		projects := doc["projects"].(map[string]any)
		project := projects["/dest"].(map[string]any)
		servers := project["mcpServers"].(map[string]any)
		assert.Contains(t, servers, "foo")
	})

	t.Run("preserves unknown fields", func(t *testing.T) {
		path := writeRegistry(t, `{
			"numStartups": 42,
			"projects": {
				"/other": {
					"mcpServers": {"bar": {"command": "keep"}},
					"history": ["one", "two"]
				}
			}
		}`)
		store := registry.NewStore(path)

		_, err := store.Install("foo", mcp.Entry{
			Server:        mcp.Server{Command: "run"},
			SourceProject: "/origin",
		}, "/dest")
		require.NoError(t, err)

		doc := readDoc(t, path)
		assert.Equal(t, float64(42), doc["numStartups"])

		other := doc["projects"].(map[string]any)["/other"].(map[string]any)
		assert.Equal(t, []any{"one", "two"}, other["history"])
		assert.Contains(t, other["mcpServers"].(map[string]any), "bar")
	})

	t.Run("overwrites an existing name", func(t *testing.T) {
		path := writeRegistry(t, `{"projects": {"/dest": {"mcpServers": {"foo": {"command": "old"}}}}}`)
		store := registry.NewStore(path)

		_, err := store.Install("foo", mcp.Entry{
			Server:        mcp.Server{Command: "new"},
			SourceProject: "/origin",
		}, "/dest")
		require.NoError(t, err)

		global, err := sources.LoadGlobal(path)
		require.NoError(t, err)
		entries, _ := registry.Collect(global, nil).Lookup("foo")
		require.Len(t, entries, 1)
		assert.Equal(t, "new", entries[0].Server.Command)
	})

	t.Run("missing registry is fatal", func(t *testing.T) {
		store := registry.NewStore(filepath.Join(t.TempDir(), "nope.json"))
		_, err := store.Install("foo", mcp.Entry{SourceProject: "/o"}, "/d")
		assert.ErrorIs(t, err, pkgerrors.ErrRegistryUnreadable)
	})

	t.Run("malformed registry is fatal", func(t *testing.T) {
		path := writeRegistry(t, `{not json`)
		_, err := registry.NewStore(path).Install("foo", mcp.Entry{SourceProject: "/o"}, "/d")
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrRegistryUnreadable)
	})
}

func TestUninstall(t *testing.T) {
	const content = `{
		"firstStartTime": "2025-01-01T00:00:00Z",
		"projects": {
			"/p": {"mcpServers": {"foo": {"command": "run"}, "bar": {"command": "stay"}}},
			"/q": {"mcpServers": {"foo": {"command": "run"}}}
		}
	}`

	t.Run("removes only the targeted pair", func(t *testing.T) {
		path := writeRegistry(t, content)
		require.NoError(t, registry.NewStore(path).Uninstall("foo", "/p"))

		doc := readDoc(t, path)
		projects := doc["projects"].(map[string]any)
		p := projects["/p"].(map[string]any)["mcpServers"].(map[string]any)
		q := projects["/q"].(map[string]any)["mcpServers"].(map[string]any)

		assert.NotContains(t, p, "foo")
		assert.Contains(t, p, "bar")
		assert.Contains(t, q, "foo")
		assert.Equal(t, "2025-01-01T00:00:00Z", doc["firstStartTime"])
	})

	t.Run("absent name is a no-op", func(t *testing.T) {
		path := writeRegistry(t, content)
		require.NoError(t, registry.NewStore(path).Uninstall("ghost", "/p"))

		doc := readDoc(t, path)
		p := doc["projects"].(map[string]any)["/p"].(map[string]any)["mcpServers"].(map[string]any)
		assert.Len(t, p, 2)
	})

	t.Run("absent project is a no-op", func(t *testing.T) {
		path := writeRegistry(t, content)
		require.NoError(t, registry.NewStore(path).Uninstall("foo", "/nowhere"))
	})
}
