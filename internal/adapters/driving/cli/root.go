// Package cli implements the esq command-line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evertools/esq-cli/internal/adapters/driven/config"
	"github.com/evertools/esq-cli/internal/adapters/driven/everything"
	"github.com/evertools/esq-cli/internal/core/ports/driving"
	"github.com/evertools/esq-cli/internal/core/services"
	"github.com/evertools/esq-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose    bool
	esPathFlag string
)

// Services wired on first use. Commands that talk to the engine call
// ensureServices; commands that only touch configuration call ensureConfig,
// so a missing es.exe does not block them.
var (
	configStore   *config.Store
	searchService driving.SearchService
	actionService driving.ResultActionService
)

var rootCmd = &cobra.Command{
	Use:   "esq",
	Short: "Everything Search from the command line and MCP",
	Long: `esq drives the Everything Search engine (es.exe) for instant
filename search across NTFS volumes.

It can be used directly from the shell, or as an MCP server that exposes
search tools to AI assistants. The engine location is resolved from the
--es-path flag, the ESQ_ES_PATH environment variable, the config file,
then the platform default.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&esPathFlag, "es-path", "", "path to the es.exe executable")
}

// ensureConfig loads the settings store once.
func ensureConfig() error {
	if configStore != nil {
		return nil
	}

	store, err := config.NewStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	configStore = store
	return nil
}

// ensureServices wires the engine-backed services once. Engine validation
// happens here, so commands fail before any search is attempted when
// es.exe cannot be found.
func ensureServices() error {
	if searchService != nil {
		return nil
	}

	if err := ensureConfig(); err != nil {
		return err
	}
	settings := configStore.Settings()

	client, err := everything.NewClient(config.ResolveESPath(esPathFlag, settings))
	if err != nil {
		return err
	}
	logger.Debug("engine: %s", client.Path())

	searchService = services.NewSearchService(client, services.Defaults{
		Timeout:    time.Duration(settings.DefaultTimeoutMS) * time.Millisecond,
		MaxResults: settings.DefaultMaxResults,
	})
	actionService = services.NewResultActionService()
	return nil
}
