// Package mcp defines the MCP server configuration records this tool
// reconciles. The JSON shape matches the mcpServers objects used by
// Claude Code in ~/.claude.json and per-project .mcp.json files.
package mcp

import "maps"

// Server is one MCP server definition. A server is launched either as a
// local command or reached at a network URL; records carry one of the two
// (the model tolerates neither, rendering as unknown).
type Server struct {
	Type    string            `json:"type,omitempty"`
	Command string            `json:"command,omitempty"`
	URL     string            `json:"url,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// DisplayTarget returns the command if set, otherwise the URL, otherwise
// a placeholder for records with neither.
func (s Server) DisplayTarget() string {
	if s.Command != "" {
		return s.Command
	}
	if s.URL != "" {
		return s.URL
	}
	return "(unknown)"
}

// TargetLabel returns the display label matching DisplayTarget.
func (s Server) TargetLabel() string {
	if s.Command == "" && s.URL != "" {
		return "url:"
	}
	return "command:"
}

// Clone returns a deep copy of the server. Args and Env are copied so the
// caller can rewrite them without aliasing the aggregated record.
func (s Server) Clone() Server {
	out := s
	if s.Args != nil {
		out.Args = make([]string, len(s.Args))
		copy(out.Args, s.Args)
	}
	if s.Env != nil {
		out.Env = maps.Clone(s.Env)
	}
	return out
}
