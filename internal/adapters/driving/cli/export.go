package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evertools/esq-cli/internal/core/domain"
)

var (
	exportFormat     string
	exportRegex      bool
	exportCase       bool
	exportMaxResults int
)

var exportCmd = &cobra.Command{
	Use:   "export <query> <file>",
	Short: "Export search results to a file",
	Long: `Runs a search and has the engine write the results directly to a
file. The format is inferred from the file extension unless --format is
given.

Supported formats: csv, tsv, txt, efu, m3u, m3u8.

Examples:
  esq export "*.py" sources.csv
  esq export "ext:mp3 genre" playlist.m3u8
  esq export "" all-files.efu --max-results 100000`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "output format (default: inferred from the file extension)")
	exportCmd.Flags().BoolVarP(&exportRegex, "regex", "r", false, "treat the query as a regular expression")
	exportCmd.Flags().BoolVarP(&exportCase, "case", "c", false, "match case exactly")
	exportCmd.Flags().IntVarP(&exportMaxResults, "max-results", "n", 0, "maximum number of results (0 = configured default)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	query, dest := args[0], args[1]

	format := domain.ExportFormat(strings.ToLower(exportFormat))
	if exportFormat == "" {
		format = domain.ExportFormat(strings.ToLower(strings.TrimPrefix(filepath.Ext(dest), ".")))
	}
	if !format.IsValid() {
		return fmt.Errorf("cannot determine export format for %q, pass --format (csv, tsv, txt, efu, m3u, m3u8)", dest)
	}

	req := domain.SearchRequest{
		Query:         query,
		Regex:         exportRegex,
		CaseSensitive: exportCase,
		MaxResults:    exportMaxResults,
	}

	if err := searchService.Export(cmd.Context(), req, dest, format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported results to %s (%s).\n", dest, format.Description())
	return nil
}
