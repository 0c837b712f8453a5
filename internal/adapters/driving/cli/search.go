package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/evertools/esq-cli/internal/core/domain"
)

var (
	searchFilesOnly   bool
	searchFoldersOnly bool
	searchExt         string
	searchSize        string
	searchRecentDays  int

	searchRegex      bool
	searchCase       bool
	searchWholeWords bool
	searchMatchPath  bool
	searchDiacritics bool

	searchPath       string
	searchParentPath string
	searchParent     string
	searchAttributes string

	searchMaxResults int
	searchOffset     int
	searchSort       string
	searchDesc       bool
	searchColumns    []string
	searchTimeout    time.Duration

	searchJSON bool
	searchCSV  bool

	searchOpen int
	searchCopy int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the Everything index",
	Long: `Searches the Everything index by filename. The query uses
Everything's own syntax and may be empty, which matches every indexed item
(bound it with --max-results).

Preset flags build the query for common cases and combine with a
positional query using Everything's implicit AND:

  esq search report --ext pdf        files named *report* with ext:pdf
  esq search --size ">100MB"         large files
  esq search --recent-days 3         recently modified items

Results print as a table by default; --json and --csv switch the format.
--open N and --copy N act on the Nth result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchFilesOnly, "files", false, "match files only")
	searchCmd.Flags().BoolVar(&searchFoldersOnly, "folders", false, "match folders only (wins over --files)")
	searchCmd.Flags().StringVar(&searchExt, "ext", "", "match files with this extension")
	searchCmd.Flags().StringVar(&searchSize, "size", "", `match files by size filter, e.g. ">100MB", "1GB..5GB"`)
	searchCmd.Flags().IntVar(&searchRecentDays, "recent-days", 0, "match items modified within the last N days")

	searchCmd.Flags().BoolVarP(&searchRegex, "regex", "r", false, "treat the query as a regular expression")
	searchCmd.Flags().BoolVarP(&searchCase, "case", "c", false, "match case exactly")
	searchCmd.Flags().BoolVarP(&searchWholeWords, "whole-words", "w", false, "match whole words only")
	searchCmd.Flags().BoolVar(&searchMatchPath, "match-path", false, "match against the full path, not just the name")
	searchCmd.Flags().BoolVar(&searchDiacritics, "diacritics", false, "match diacritical marks exactly")

	searchCmd.Flags().StringVar(&searchPath, "path", "", "search within this path only")
	searchCmd.Flags().StringVar(&searchParentPath, "parent-path", "", "match items whose parent lies under this path")
	searchCmd.Flags().StringVar(&searchParent, "parent", "", "match direct children of this path")
	searchCmd.Flags().StringVar(&searchAttributes, "attributes", "", "match items with these DIR-style attributes, e.g. RHS")

	searchCmd.Flags().IntVarP(&searchMaxResults, "max-results", "n", 0, "maximum number of results (0 = configured default)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "skip this many results")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "sort field: name, path, size, extension, date-created, date-modified, date-accessed, run-count")
	searchCmd.Flags().BoolVar(&searchDesc, "desc", false, "sort descending")
	searchCmd.Flags().StringSliceVar(&searchColumns, "columns", nil, "columns to request: name, path, full-path, extension, size, date-created, date-modified, date-accessed, attributes")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 0, "engine timeout (0 = configured default)")

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchCSV, "csv", false, "output results as CSV")

	searchCmd.Flags().IntVar(&searchOpen, "open", 0, "open the Nth result with the system handler")
	searchCmd.Flags().IntVar(&searchCopy, "copy", 0, "copy the Nth result's path to the clipboard")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	req, err := buildSearchRequest(query)
	if err != nil {
		return err
	}

	records, err := searchService.Search(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch {
	case searchJSON:
		err = outputRecordsJSON(cmd, records)
	case searchCSV:
		err = outputRecordsCSV(cmd, records)
	default:
		err = outputRecordsTable(cmd, records)
	}
	if err != nil {
		return err
	}

	return runResultActions(cmd, records)
}

// buildSearchRequest merges preset flags, the positional query and the
// plain option flags into one request. Presets own the base query; a
// positional query narrows it through the engine's implicit AND.
func buildSearchRequest(query string) (domain.SearchRequest, error) {
	var req domain.SearchRequest
	switch {
	case searchExt != "":
		req = domain.ExtensionSearch(searchExt)
	case searchSize != "":
		req = domain.SizeSearch(searchSize)
	case searchRecentDays > 0:
		req = domain.RecentSearch(searchRecentDays)
	case searchFoldersOnly:
		req = domain.FolderSearch("")
	case searchFilesOnly:
		req = domain.FileSearch("")
	}

	if query != "" {
		if req.Query != "" {
			req.Query = req.Query + " " + query
		} else {
			req.Query = query
		}
	}

	req.Regex = searchRegex
	req.CaseSensitive = searchCase
	req.WholeWords = searchWholeWords
	req.MatchPath = searchMatchPath
	req.MatchDiacritics = searchDiacritics
	req.PathFilter = searchPath
	req.ParentPath = searchParentPath
	req.Parent = searchParent
	req.Attributes = searchAttributes
	req.MaxResults = searchMaxResults
	req.Offset = searchOffset
	req.Timeout = searchTimeout

	// Type filters may also be combined with a preset, e.g. --recent-days
	// with --files.
	if searchFilesOnly {
		req.FilesOnly = true
	}
	if searchFoldersOnly {
		req.FoldersOnly = true
	}

	if searchSort != "" {
		req.SortBy = domain.SortField(strings.ReplaceAll(searchSort, "_", "-"))
	}
	req.SortDescending = searchDesc

	if len(searchColumns) > 0 {
		cols, err := parseColumns(searchColumns)
		if err != nil {
			return domain.SearchRequest{}, err
		}
		req.Columns = cols
	}

	return req, nil
}

// parseColumns maps --columns values onto the column selection.
func parseColumns(names []string) (domain.Columns, error) {
	var cols domain.Columns
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "name":
			cols.Name = true
		case "path":
			cols.Path = true
		case "full-path", "fullpath":
			cols.FullPath = true
		case "extension", "ext":
			cols.Extension = true
		case "size":
			cols.Size = true
		case "date-created", "created":
			cols.DateCreated = true
		case "date-modified", "modified":
			cols.DateModified = true
		case "date-accessed", "accessed":
			cols.DateAccessed = true
		case "attributes":
			cols.Attributes = true
		default:
			return domain.Columns{}, fmt.Errorf("unknown column %q", name)
		}
	}
	return cols, nil
}

func outputRecordsJSON(cmd *cobra.Command, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecordsCSV(cmd *cobra.Command, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(records[0].Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := make([]string, 0, len(rec.Fields))
		for _, f := range rec.Fields {
			row = append(row, fmt.Sprintf("%v", f.Value))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func outputRecordsTable(cmd *cobra.Command, records []domain.Record) error {
	if len(records) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	width := terminalWidth()

	cmd.Println("Results:")
	cmd.Println()
	for i, rec := range records {
		headline := rec.FullPath()
		if headline == "" {
			headline = "(unnamed)"
		}
		cmd.Printf("  [%d] %s\n", i+1, truncateLeft(headline, width-8))

		details := recordDetails(rec)
		if details != "" {
			cmd.Printf("      %s\n", details)
		}
	}
	cmd.Println()
	cmd.Printf("%d result(s)\n", len(records))

	return nil
}

// recordDetails renders the non-name fields of a record on one line.
func recordDetails(rec domain.Record) string {
	parts := make([]string, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		if f.Column == domain.ColumnName || f.Column == domain.ColumnFullPath {
			continue
		}
		value := fmt.Sprintf("%v", f.Value)
		if value == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Column, value))
	}
	return strings.Join(parts, "  ")
}

// terminalWidth reports the attached terminal's width, or a sensible
// default when output is redirected.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// truncateLeft shortens a path from the left so the filename end stays
// visible.
func truncateLeft(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return "..." + string(runes[len(runes)-max+3:])
}

// runResultActions applies --open and --copy to the printed results.
func runResultActions(cmd *cobra.Command, records []domain.Record) error {
	if searchOpen == 0 && searchCopy == 0 {
		return nil
	}
	if actionService == nil {
		return errors.New("action service not configured")
	}

	if searchCopy > 0 {
		rec, err := recordAt(records, searchCopy)
		if err != nil {
			return err
		}
		if err := actionService.CopyPath(cmd.Context(), rec); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		cmd.Printf("Copied path of result %d.\n", searchCopy)
	}

	if searchOpen > 0 {
		rec, err := recordAt(records, searchOpen)
		if err != nil {
			return err
		}
		if err := actionService.OpenResult(cmd.Context(), rec); err != nil {
			return fmt.Errorf("open failed: %w", err)
		}
		cmd.Printf("Opened result %d.\n", searchOpen)
	}

	return nil
}

func recordAt(records []domain.Record, n int) (domain.Record, error) {
	if n < 1 || n > len(records) {
		return domain.Record{}, fmt.Errorf("result %d does not exist, got %d result(s)", n, len(records))
	}
	return records[n-1], nil
}
