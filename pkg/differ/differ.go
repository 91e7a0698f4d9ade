// Package differ decides whether the records collected for one server name
// are the same configuration once project-specific paths are normalized
// away. Two records deployed in different project directories are
// considered equivalent when they are identical up to substituting each
// record's own project path in its arguments.
package differ

import (
	"maps"
	"slices"
	"strings"

	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
)

// Placeholder replaces a record's own source project path during argument
// normalization.
const Placeholder = "<PROJECT>"

// NormalizeArgs replaces every occurrence of projectPath in each argument
// with the placeholder token. A raw comparison would flag every
// multi-project deployment as divergent merely because each record embeds
// its own absolute path.
func NormalizeArgs(args []string, projectPath string) []string {
	if len(args) == 0 {
		return nil
	}
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = strings.ReplaceAll(arg, projectPath, Placeholder)
	}
	return out
}

// Differs reports whether the entries for one name disagree about the
// configuration after normalization. Zero or one entry is trivially
// consistent. The first entry (entries are pre-sorted by source project)
// is the baseline; any entry differing from it in command, URL, normalized
// arguments, or environment counts as divergence.
func Differs(entries []mcp.Entry) bool {
	if len(entries) <= 1 {
		return false
	}

	baseline := entries[0]
	baselineArgs := NormalizeArgs(baseline.Server.Args, baseline.SourceProject)

	for _, e := range entries[1:] {
		if e.Server.Command != baseline.Server.Command ||
			e.Server.URL != baseline.Server.URL ||
			!slices.Equal(NormalizeArgs(e.Server.Args, e.SourceProject), baselineArgs) ||
			!maps.Equal(e.Server.Env, baseline.Server.Env) {
			return true
		}
	}
	return false
}

// FieldDiff marks which fields of an entry diverge from the baseline.
// Args holds one flag per argument of the entry (true where the normalized
// argument differs from the baseline's at the same index, or where the
// baseline has no argument at that index).
type FieldDiff struct {
	Command    bool
	URL        bool
	Args       []bool
	ArgsDiffer bool
	Env        bool
	EnvMissing bool
}

// Any reports whether the diff marks at least one field.
func (d FieldDiff) Any() bool {
	return d.Command || d.URL || d.ArgsDiffer || d.Env || d.EnvMissing
}

// Diff compares one entry against the baseline, field by field, for
// display annotation.
func Diff(baseline, entry mcp.Entry) FieldDiff {
	var d FieldDiff

	d.Command = entry.Server.Command != baseline.Server.Command
	d.URL = entry.Server.URL != baseline.Server.URL

	baselineArgs := NormalizeArgs(baseline.Server.Args, baseline.SourceProject)
	entryArgs := NormalizeArgs(entry.Server.Args, entry.SourceProject)
	d.Args = make([]bool, len(entryArgs))
	for i, arg := range entryArgs {
		if i >= len(baselineArgs) || baselineArgs[i] != arg {
			d.Args[i] = true
			d.ArgsDiffer = true
		}
	}
	if len(entryArgs) != len(baselineArgs) {
		d.ArgsDiffer = true
	}

	d.Env = !maps.Equal(entry.Server.Env, baseline.Server.Env)
	d.EnvMissing = len(entry.Server.Env) == 0 && len(baseline.Server.Env) > 0

	return d
}
