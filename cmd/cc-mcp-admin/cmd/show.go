package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/signal-slot/cc-mcp-admin/internal/cmd/globals"
	"github.com/signal-slot/cc-mcp-admin/internal/cmd/output"
	"github.com/signal-slot/cc-mcp-admin/pkg/differ"
	"github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/mcp"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show details of a specific MCP server",
	Long: `Show renders every configuration found for one server name, one
block per source project, highlighting the fields where a configuration
diverges from the first (baseline) record.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	entries, ok := ws.registry.Lookup(name)
	if !ok {
		return errors.NewNotFoundError(name)
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
		for _, s := range listedServers(ws) {
			if s.Name == name {
				return output.NewFormatter(format).Format(os.Stdout, s)
			}
		}
		return nil
	case output.FormatWide:
		return output.NewFormatter(format).Format(os.Stdout, showTable(entries))
	default:
		renderShow(ws, name, entries)
		return nil
	}
}

// showTable renders one server's configurations as table rows, one per
// source project.
func showTable(entries []mcp.Entry) output.Data {
	data := output.Data{
		Headers: []string{"source project", "target", "args", "env"},
	}
	for _, e := range entries {
		env := "-"
		if len(e.Server.Env) > 0 {
			env = formatEnv(e.Server.Env)
		}
		data.Rows = append(data.Rows, []string{
			output.ShortenPath(e.SourceProject),
			e.Server.DisplayTarget(),
			strings.Join(e.Server.Args, " "),
			env,
		})
	}
	return data
}

func renderShow(ws *workspace, name string, entries []mcp.Entry) {
	status := output.Yellow("not enabled in current project")
	if ws.enabledHere(name) {
		status = output.Green("enabled in current project")
	}

	fmt.Printf("%s %s\n", output.Bold("MCP Server:"), output.Bold(name))
	fmt.Printf("  %s %s\n", output.Dim("Status:"), status)
	fmt.Println()

	baseline := entries[0]

	for i, entry := range entries {
		fmt.Printf("  %s %s\n",
			output.Bold(fmt.Sprintf("Configuration #%d:", i+1)),
			output.Dim(output.ShortenPath(entry.SourceProject)))

		diff := differ.FieldDiff{}
		if i > 0 {
			diff = differ.Diff(baseline, entry)
		}

		renderTarget(entry.Server, diff)
		renderArgs(entry.Server, diff)
		renderEnv(entry.Server, baseline.Server, diff, i > 0)
		fmt.Println()
	}
}

func renderTarget(server mcp.Server, diff differ.FieldDiff) {
	switch {
	case server.Command != "":
		display := server.Command
		if diff.Command {
			display = output.Yellow(display)
		}
		fmt.Printf("    %s %s\n", output.Dim("command:"), display)
	case server.URL != "":
		display := server.URL
		if diff.URL {
			display = output.Yellow(display)
		}
		fmt.Printf("    %s %s\n", output.Dim("url:"), display)
	}
}

func renderArgs(server mcp.Server, diff differ.FieldDiff) {
	if len(server.Args) == 0 {
		return
	}

	quoted := make([]string, len(server.Args))
	for i, arg := range server.Args {
		q := fmt.Sprintf("%q", arg)
		if diff.ArgsDiffer && i < len(diff.Args) && diff.Args[i] {
			q = output.Yellow(q)
		}
		quoted[i] = q
	}
	fmt.Printf("    %s [%s]\n", output.Dim("args:"), strings.Join(quoted, ", "))
}

func renderEnv(server, baseline mcp.Server, diff differ.FieldDiff, compared bool) {
	if len(server.Env) > 0 {
		display := formatEnv(server.Env)
		if compared && diff.Env {
			display = output.Yellow(display)
		}
		fmt.Printf("    %s %s\n", output.Dim("env:"), display)
		return
	}
	if compared && diff.EnvMissing {
		fmt.Printf("    %s %s\n", output.Dim("env:"), output.Yellow("(none)"))
	}
}

func formatEnv(env map[string]string) string {
	pairs := make([]string, 0, len(env))
	for _, k := range sortedKeys(env) {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, env[k]))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
