package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
	"github.com/signal-slot/cc-mcp-admin/pkg/resolver"
)

func entry(project, command string, args ...string) mcp.Entry {
	return mcp.Entry{
		Server:        mcp.Server{Command: command, Args: args},
		SourceProject: project,
	}
}

func TestResolveWithHint(t *testing.T) {
	entries := []mcp.Entry{
		entry("/home/u/alpha", "run-v1"),
		entry("/home/u/beta", "run-v2"),
		entry("/home/u/gamma", "run-v3"),
	}

	t.Run("hint selects matching source regardless of divergence", func(t *testing.T) {
		got, err := resolver.Resolve("foo", entries, "beta")
		require.NoError(t, err)
		assert.Equal(t, "/home/u/beta", got.SourceProject)
		assert.Equal(t, "run-v2", got.Server.Command)
	})

	t.Run("hint matching several picks the first in order", func(t *testing.T) {
		got, err := resolver.Resolve("foo", entries, "/home/u")
		require.NoError(t, err)
		assert.Equal(t, "/home/u/alpha", got.SourceProject)
	})

	t.Run("hint matching nothing enumerates sources", func(t *testing.T) {
		_, err := resolver.Resolve("foo", entries, "votingmachine")
		require.Error(t, err)
		assert.True(t, errors.Is(err, pkgerrors.ErrNoMatchingSource))

		var noMatch *pkgerrors.NoMatchingSourceError
		require.True(t, errors.As(err, &noMatch))
		assert.Equal(t, []string{"/home/u/alpha", "/home/u/beta", "/home/u/gamma"}, noMatch.Sources)
	})
}

func TestResolveWithoutHint(t *testing.T) {
	t.Run("single entry", func(t *testing.T) {
		entries := []mcp.Entry{entry("/A", "run")}
		got, err := resolver.Resolve("foo", entries, "")
		require.NoError(t, err)
		assert.Equal(t, "/A", got.SourceProject)
	})

	t.Run("equivalent entries pick the first deterministically", func(t *testing.T) {
		entries := []mcp.Entry{
			entry("/A", "run", "/A/data"),
			entry("/B", "run", "/B/data"),
		}
		for i := 0; i < 5; i++ {
			got, err := resolver.Resolve("foo", entries, "")
			require.NoError(t, err)
			assert.Equal(t, "/A", got.SourceProject)
		}
	})

	t.Run("diverging entries fail with candidate list", func(t *testing.T) {
		entries := []mcp.Entry{
			entry("/A", "run-v1"),
			entry("/B", "run-v2"),
		}
		_, err := resolver.Resolve("foo", entries, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, pkgerrors.ErrAmbiguousSource))

		var ambiguous *pkgerrors.AmbiguousSourceError
		require.True(t, errors.As(err, &ambiguous))
		assert.Equal(t, "foo", ambiguous.Name)
		assert.Equal(t, []string{"/A", "/B"}, ambiguous.Sources)
	})

	t.Run("hint rescues diverging entries", func(t *testing.T) {
		entries := []mcp.Entry{
			entry("/A", "run-v1"),
			entry("/B", "run-v2"),
		}
		got, err := resolver.Resolve("foo", entries, "B")
		require.NoError(t, err)
		assert.Equal(t, "run-v2", got.Server.Command)
	})
}

func TestSourceProjects(t *testing.T) {
	entries := []mcp.Entry{entry("/A", "x"), entry("/B", "y")}
	assert.Equal(t, []string{"/A", "/B"}, resolver.SourceProjects(entries))
}
