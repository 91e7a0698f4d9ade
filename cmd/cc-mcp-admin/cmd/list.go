package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/signal-slot/cc-mcp-admin/internal/cmd/globals"
	"github.com/signal-slot/cc-mcp-admin/internal/cmd/output"
	"github.com/signal-slot/cc-mcp-admin/pkg/differ"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all MCP servers across all projects",
	Long: `List shows every MCP server found in the global registry and in
per-project .mcp.json files, which projects use each one, whether it is
enabled in the current project, and whether the copies diverge.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listedConfig is one record in machine-readable list output.
type listedConfig struct {
	SourceProject string            `json:"sourceProject" yaml:"sourceProject"`
	Type          string            `json:"type,omitempty" yaml:"type,omitempty"`
	Command       string            `json:"command,omitempty" yaml:"command,omitempty"`
	URL           string            `json:"url,omitempty" yaml:"url,omitempty"`
	Args          []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env           map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// listedServer is one server in machine-readable list output.
type listedServer struct {
	Name      string         `json:"name" yaml:"name"`
	Enabled   bool           `json:"enabled" yaml:"enabled"`
	Divergent bool           `json:"divergent" yaml:"divergent"`
	Configs   []listedConfig `json:"configs" yaml:"configs"`
}

func runList(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(os.Stdout, listedServers(ws))
	case output.FormatWide:
		return output.NewFormatter(format).Format(os.Stdout, listTable(ws))
	default:
		renderList(ws)
		return nil
	}
}

func listedServers(ws *workspace) []listedServer {
	servers := make([]listedServer, 0, len(ws.registry))
	for _, name := range ws.registry.Names() {
		entries := ws.registry[name]
		s := listedServer{
			Name:      name,
			Enabled:   ws.enabledHere(name),
			Divergent: differ.Differs(entries),
		}
		for _, e := range entries {
			s.Configs = append(s.Configs, listedConfig{
				SourceProject: e.SourceProject,
				Type:          e.Server.Type,
				Command:       e.Server.Command,
				URL:           e.Server.URL,
				Args:          e.Server.Args,
				Env:           e.Server.Env,
			})
		}
		servers = append(servers, s)
	}
	return servers
}

func listTable(ws *workspace) output.Data {
	data := output.Data{
		Headers: []string{"name", "target", "projects", "status"},
	}
	for _, name := range ws.registry.Names() {
		entries := ws.registry[name]
		status := "-"
		if ws.enabledHere(name) {
			status = "enabled"
		}
		if differ.Differs(entries) {
			status += " (diverges)"
		}
		projects := make([]string, len(entries))
		for i, e := range entries {
			projects[i] = output.ShortenPath(e.SourceProject)
		}
		data.Rows = append(data.Rows, []string{
			name,
			entries[0].Server.DisplayTarget(),
			strings.Join(projects, ", "),
			status,
		})
	}
	return data
}

func renderList(ws *workspace) {
	if len(ws.registry) == 0 {
		fmt.Println("No MCP servers found across any projects.")
		return
	}

	fmt.Println(output.Bold("MCP Servers:"))
	fmt.Println()

	for _, name := range ws.registry.Names() {
		entries := ws.registry[name]
		isCurrent := ws.enabledHere(name)
		hasDiff := differ.Differs(entries)

		marker := output.Dim("○")
		nameDisplay := name
		if isCurrent {
			marker = output.Green("●")
			nameDisplay = output.GreenBold(name)
		}

		diffMarker := ""
		if hasDiff {
			diffMarker = " " + output.Yellow("(multiple configs)")
		}

		fmt.Printf("  %s %s%s\n", marker, nameDisplay, diffMarker)

		first := entries[0]
		if hasDiff {
			fmt.Printf("    %s %s %s\n", output.Dim(first.Server.TargetLabel()),
				first.Server.DisplayTarget(), output.Dim("(varies)"))
		} else {
			fmt.Printf("    %s %s\n", output.Dim(first.Server.TargetLabel()),
				first.Server.DisplayTarget())
		}

		fmt.Printf("    %s\n", output.Dim("used in:"))
		for _, entry := range entries {
			shortPath := output.ShortenPath(entry.SourceProject)
			if entry.SourceProject == ws.cfg.WorkDir {
				fmt.Printf("      %s %s\n", output.Green("→"), output.Green(shortPath+" (current)"))
			} else {
				fmt.Printf("      - %s\n", shortPath)
			}
		}
		fmt.Println()
	}

	fmt.Println(output.Dim(fmt.Sprintf("Total: %d unique MCP servers across all projects", len(ws.registry))))
	fmt.Println(output.Dim(fmt.Sprintf("Current project: %d servers enabled", len(ws.active))))
}
