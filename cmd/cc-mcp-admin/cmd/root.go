// Package cmd implements the cc-mcp-admin command surface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signal-slot/cc-mcp-admin/internal/cmd/globals"
	"github.com/signal-slot/cc-mcp-admin/internal/cmd/output"
	"github.com/signal-slot/cc-mcp-admin/internal/config"
	pkgerrors "github.com/signal-slot/cc-mcp-admin/pkg/errors"
	"github.com/signal-slot/cc-mcp-admin/pkg/logging"
)

var (
	configFile   string
	registryFlag string
	globalFlags  *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
// A bare server name argument is shorthand for `show <name>`; no argument
// at all lists everything.
var rootCmd = &cobra.Command{
	Use:   "cc-mcp-admin [name]",
	Short: "Claude Code MCP Server Manager",
	Long: `cc-mcp-admin reconciles MCP server configurations scattered across
Claude Code's global registry (~/.claude.json) and per-project .mcp.json
files. It shows where each server is configured, flags configurations that
diverge between projects, and copies a chosen configuration into the
project you are standing in.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setupCommand,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runShow(cmd, args)
		}
		return runList(cmd, args)
	},
}

// Execute runs the root command and converts failures into a non-zero
// exit status.
func Execute(version, commit string) {
	Version = version
	Commit = commit
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.cc-mcp-admin.yaml)")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "",
		"global registry file (default is $HOME/"+config.RegistryFilename+")")
	globalFlags = globals.AddFlags(rootCmd)

	if err := viper.BindPFlag(config.KeyRegistry, rootCmd.PersistentFlags().Lookup("registry")); err != nil {
		panic(fmt.Sprintf("Failed to bind registry flag: %v", err))
	}
	if err := viper.BindPFlag(config.KeyNoColor, rootCmd.PersistentFlags().Lookup("no-color")); err != nil {
		panic(fmt.Sprintf("Failed to bind no-color flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cc-mcp-admin")
	}

	// Load .env before viper env binding so both see the same environment.
	_ = godotenv.Load()

	viper.SetEnvPrefix("CC_MCP_ADMIN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// A missing config file is fine; a broken one given explicitly is not.
	if err := viper.ReadInConfig(); err != nil {
		if configFile != "" {
			cobra.CheckErr(err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logging.Debug().Err(err).Msg("ignoring unreadable config file")
		}
	}
}

// setupCommand applies logging and color settings before any command runs.
func setupCommand(cmd *cobra.Command, args []string) error {
	level := viper.GetString(config.KeyLogLevel)
	if globalFlags.Verbose {
		level = "debug"
	}
	if globalFlags.Quiet {
		level = "error"
	}

	logging.Configure(&logging.Config{
		Level:   level,
		Format:  viper.GetString(config.KeyLogFormat),
		Output:  "stderr",
		NoColor: viper.GetBool(config.KeyNoColor),
	})

	output.SetupColor(viper.GetBool(config.KeyNoColor))
	return nil
}

// printError renders a failure on stderr. Resolver failures enumerate
// every candidate source so the user can retry with a usable --from hint.
func printError(err error) {
	var ambiguous *pkgerrors.AmbiguousSourceError
	var noMatch *pkgerrors.NoMatchingSourceError

	switch {
	case errors.As(err, &ambiguous):
		fmt.Fprintf(os.Stderr, "%s Multiple configurations found for '%s'. Use --from to specify:\n",
			output.Red("Error:"), ambiguous.Name)
		for _, s := range ambiguous.Sources {
			fmt.Fprintf(os.Stderr, "  %s %s\n", output.Dim("→"), output.ShortenPath(s))
		}
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Example: cc-mcp-admin add %s --from <project>\n", ambiguous.Name)
	case errors.As(err, &noMatch):
		fmt.Fprintf(os.Stderr, "%s No configuration found matching '%s'\n",
			output.Red("Error:"), noMatch.Hint)
		fmt.Fprintln(os.Stderr, "Available configurations:")
		for _, s := range noMatch.Sources {
			fmt.Fprintf(os.Stderr, "  - %s\n", output.ShortenPath(s))
		}
	default:
		fmt.Fprintf(os.Stderr, "%s %v\n", output.Red("Error:"), err)
	}
}
