package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signal-slot/cc-mcp-admin/internal/cmd/output"
	"github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/resolver"
)

var addFrom string

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an MCP server to the current project",
	Long: `Add copies a known server configuration into the current project's
entry in the global registry, rewriting any arguments that embed the
origin project's path to point at this project instead.

When several projects declare diverging configurations for the name, add
refuses to guess; pass --from with a substring of the source project's
path to pick one. Equivalent copies need no hint.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFrom, "from", "",
		"source project to copy the configuration from (partial path match)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	if ws.enabledHere(name) {
		fmt.Printf("%s MCP server '%s' is already enabled in this project\n",
			output.Yellow("Note:"), name)
		return nil
	}

	entries, ok := ws.registry.Lookup(name)
	if !ok {
		return errors.NewNotFoundError(name)
	}

	entry, err := resolver.Resolve(name, entries, addFrom)
	if err != nil {
		return err
	}

	installed, err := ws.store.Install(name, entry, ws.cfg.WorkDir)
	if err != nil {
		return err
	}

	fmt.Printf("%s Added MCP server '%s' to current project\n",
		output.Green("✓"), output.GreenBold(name))
	if installed.Command != "" {
		fmt.Printf("  %s %s\n", output.Dim("command:"), installed.Command)
	} else if installed.URL != "" {
		fmt.Printf("  %s %s\n", output.Dim("url:"), installed.URL)
	}
	if len(installed.Args) > 0 {
		fmt.Printf("  %s %q\n", output.Dim("args:"), installed.Args)
	}
	return nil
}
