package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evertools/esq-cli/internal/adapters/driven/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage esq settings",
	Long: `View and change settings stored in the esq config file.

The engine location can also be overridden per invocation with --es-path
or the ESQ_ES_PATH environment variable; those take precedence over the
config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and persist it immediately.

Keys:
  es_path               location of es.exe
  default_timeout_ms    engine timeout when a search sets none
  default_max_results   result cap when a search sets none (0 = no cap)
  mcp.rate_per_second   MCP tool-call rate (0 = no throttling)
  mcp.rate_burst        MCP tool-call burst allowance`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := ensureConfig(); err != nil {
			return err
		}
		cmd.Println(configStore.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureConfig(); err != nil {
		return err
	}
	settings := configStore.Settings()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Engine]")
	if settings.ESPath != "" {
		cmd.Printf("  es_path: %s\n", settings.ESPath)
	} else {
		cmd.Printf("  es_path: (not set, using %s)\n", config.DefaultESPath())
	}
	cmd.Printf("  resolved: %s\n", config.ResolveESPath(esPathFlag, settings))
	cmd.Println()

	cmd.Println("[Defaults]")
	cmd.Printf("  default_timeout_ms: %d\n", settings.DefaultTimeoutMS)
	if settings.DefaultMaxResults > 0 {
		cmd.Printf("  default_max_results: %d\n", settings.DefaultMaxResults)
	} else {
		cmd.Printf("  default_max_results: (no cap)\n")
	}
	cmd.Println()

	cmd.Println("[MCP]")
	if settings.MCP.RatePerSecond > 0 {
		cmd.Printf("  rate_per_second: %g\n", settings.MCP.RatePerSecond)
		cmd.Printf("  rate_burst: %d\n", settings.MCP.RateBurst)
	} else {
		cmd.Printf("  rate_per_second: (no throttling)\n")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := ensureConfig(); err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
