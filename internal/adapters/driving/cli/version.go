package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionEngine bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Printf("esq version %s\n", version)

		if !versionEngine {
			return nil
		}
		if err := ensureServices(); err != nil {
			return err
		}
		engineVersion, err := searchService.EngineVersion(cmd.Context())
		if err != nil {
			return fmt.Errorf("querying engine version: %w", err)
		}
		cmd.Printf("everything %s\n", engineVersion)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionEngine, "engine", false, "also query the Everything engine's version")
	rootCmd.AddCommand(versionCmd)
}
