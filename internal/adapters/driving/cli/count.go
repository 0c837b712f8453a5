package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [query]",
	Short: "Count matches without retrieving them",
	Long: `Asks the engine for the total number of items matching the query.
An empty query counts every indexed item.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	count, err := searchService.Count(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("count failed: %w", err)
	}

	cmd.Printf("%d\n", count)
	return nil
}
