package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signal-slot/cc-mcp-admin/pkg/differ"
	pkgerrors "github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/registry"
	"github.com/signal-slot/cc-mcp-admin/pkg/resolver"
	"github.com/signal-slot/cc-mcp-admin/pkg/sources"
)

// End-to-end flows over a real registry file: aggregate, resolve, install,
// re-aggregate.

func TestAddEquivalentConfigsNeedsNoHint(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"projects": {
			"/A": {"mcpServers": {"foo": {"command": "run", "args": ["/A/data"]}}},
			"/B": {"mcpServers": {"foo": {"command": "run", "args": ["/B/data"]}}}
		}
	}`), 0o644))

	global, err := sources.LoadGlobal(path)
	require.NoError(t, err)
	reg := registry.Collect(global, nil)

	entries, ok := reg.Lookup("foo")
	require.True(t, ok)

	// The two copies differ only in their own project path.
	assert.False(t, differ.Differs(entries))

	chosen, err := resolver.Resolve("foo", entries, "")
	require.NoError(t, err)
	assert.Equal(t, "/A", chosen.SourceProject)

	_, err = registry.NewStore(path).Install("foo", chosen, "/C")
	require.NoError(t, err)

	global, err = sources.LoadGlobal(path)
	require.NoError(t, err)
	entries, _ = registry.Collect(global, nil).Lookup("foo")
	require.Len(t, entries, 3)

	// Sorted by project, so /C is last, with its args adapted.
	assert.Equal(t, "/C", entries[2].SourceProject)
	assert.Equal(t, []string{"/C/data"}, entries[2].Server.Args)
	assert.False(t, differ.Differs(entries))
}

func TestAddDivergingConfigsRequiresHint(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"projects": {
			"/A": {"mcpServers": {"foo": {"command": "run-v1"}}},
			"/B": {"mcpServers": {"foo": {"command": "run-v2"}}}
		}
	}`), 0o644))

	global, err := sources.LoadGlobal(path)
	require.NoError(t, err)
	entries, _ := registry.Collect(global, nil).Lookup("foo")

	assert.True(t, differ.Differs(entries))

	_, err = resolver.Resolve("foo", entries, "")
	require.Error(t, err)
	var ambiguous *pkgerrors.AmbiguousSourceError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"/A", "/B"}, ambiguous.Sources)

	chosen, err := resolver.Resolve("foo", entries, "B")
	require.NoError(t, err)
	assert.Equal(t, "run-v2", chosen.Server.Command)

	_, err = registry.NewStore(path).Install("foo", chosen, "/C")
	require.NoError(t, err)

	global, err = sources.LoadGlobal(path)
	require.NoError(t, err)
	assert.Equal(t, "run-v2", global.Projects["/C"].MCPServers["foo"].Command)
}
