package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signal-slot/cc-mcp-admin/internal/cmd/output"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an MCP server from the current project",
	Long: `Remove deletes a server from the current project's entry in the
global registry. Servers declared by the project's own .mcp.json cannot be
removed by this tool: that file belongs to the project and must be edited
directly.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	if !ws.enabledHere(name) {
		return fmt.Errorf("MCP server '%s' is not enabled in this project", name)
	}

	if ws.inLocalOverride(name) {
		fmt.Printf("%s MCP server '%s' is defined in local %s\n",
			output.Yellow("Note:"), name, ws.cfg.OverrideFilename)
		fmt.Printf("  Please remove it manually from %s\n", ws.cfg.OverrideFilename)
		return nil
	}

	if err := ws.store.Uninstall(name, ws.cfg.WorkDir); err != nil {
		return err
	}

	fmt.Printf("%s Removed MCP server '%s' from current project\n",
		output.Green("✓"), output.GreenBold(name))
	return nil
}
