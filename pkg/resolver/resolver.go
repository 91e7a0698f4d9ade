// Package resolver picks exactly one record to act on when a server name
// has contributions from several projects. It never guesses between
// configurations that materially disagree, and never forces the user to
// disambiguate between copies that are equivalent.
package resolver

import (
	"strings"

	"github.com/signal-slot/cc-mcp-admin/pkg/differ"
	"github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
)

// Resolve selects one entry for name. entries must be non-empty and in
// the deterministic source-project order produced by aggregation.
//
// Policy, in order:
//  1. A non-empty hint selects the first entry whose source project
//     contains it as a substring, or fails listing every source.
//  2. A single entry, or multiple equivalent entries, selects the first.
//  3. Otherwise the entries genuinely differ and resolution fails listing
//     every candidate so the caller can retry with a hint.
func Resolve(name string, entries []mcp.Entry, hint string) (mcp.Entry, error) {
	if hint != "" {
		for _, e := range entries {
			if strings.Contains(e.SourceProject, hint) {
				return e, nil
			}
		}
		return mcp.Entry{}, errors.NewNoMatchingSourceError(name, hint, SourceProjects(entries))
	}

	if len(entries) == 1 || !differ.Differs(entries) {
		return entries[0], nil
	}

	return mcp.Entry{}, errors.NewAmbiguousSourceError(name, SourceProjects(entries))
}

// SourceProjects returns each entry's source project, in entry order.
func SourceProjects(entries []mcp.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.SourceProject
	}
	return out
}
