package everything

import (
	"strconv"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// searchArgs compiles a request into the engine's command-line tokens.
// Emission order is fixed so identical requests always produce identical
// argv: match-mode flags, limits, path scoping, type and attribute
// filters, sort, column selections, the CSV output flag, timeout, and the
// query as the final positional token. No shell is involved anywhere;
// tokens are passed to the process as a discrete list.
func searchArgs(req domain.SearchRequest) []string {
	args := baseArgs(req)
	args = append(args, columnArgs(normaliseColumns(req.Columns))...)
	args = append(args, "-csv")
	return appendTail(args, req)
}

// exportArgs compiles the argv for an export invocation. Export reuses
// the search surface but replaces the CSV output flag with the engine's
// export flag and destination file.
func exportArgs(req domain.SearchRequest, dest string, format domain.ExportFormat) []string {
	args := baseArgs(req)
	args = append(args, "-export-"+format.String(), dest)
	return appendTail(args, req)
}

// countArgs compiles the argv for a count-only invocation. The dedicated
// flag makes the engine report the total without emitting records.
func countArgs(query string) []string {
	args := []string{"-get-result-count"}
	if query != "" {
		args = append(args, query)
	}
	return args
}

// versionArgs compiles the argv for a version query.
func versionArgs() []string {
	return []string{"-version"}
}

// baseArgs emits the tokens shared by search and export.
func baseArgs(req domain.SearchRequest) []string {
	var args []string

	if req.Regex {
		args = append(args, "-regex")
	}
	if req.CaseSensitive {
		args = append(args, "-case")
	}
	if req.WholeWords {
		args = append(args, "-whole-words")
	}
	if req.MatchPath {
		args = append(args, "-match-path")
	}
	if req.MatchDiacritics {
		args = append(args, "-diacritics")
	}

	if req.MaxResults > 0 {
		args = append(args, "-max-results", strconv.Itoa(req.MaxResults))
	}
	if req.Offset > 0 {
		args = append(args, "-offset", strconv.Itoa(req.Offset))
	}

	if req.PathFilter != "" {
		args = append(args, "-path", req.PathFilter)
	}
	if req.ParentPath != "" {
		args = append(args, "-parent-path", req.ParentPath)
	}
	if req.Parent != "" {
		args = append(args, "-parent", req.Parent)
	}

	// Folders win when both type filters are set.
	if req.FoldersOnly {
		args = append(args, "/ad")
	} else if req.FilesOnly {
		args = append(args, "/a-d")
	}

	if req.Attributes != "" {
		args = append(args, "/a"+req.Attributes)
	}

	if req.SortBy != "" {
		order := "ascending"
		if req.SortDescending {
			order = "descending"
		}
		args = append(args, "-sort", req.SortBy.String()+"-"+order)
	}

	return args
}

// appendTail adds the timeout and the final positional query token. An
// empty query is omitted entirely: the engine then matches everything,
// scoped only by the other filters.
func appendTail(args []string, req domain.SearchRequest) []string {
	if req.Timeout > 0 {
		args = append(args, "-timeout", strconv.FormatInt(req.Timeout.Milliseconds(), 10))
	}
	if req.Query != "" {
		args = append(args, req.Query)
	}
	return args
}

// normaliseColumns applies the name-only default to an empty selection.
// The same normalisation feeds both token emission and the expected
// header, so the two agree by construction.
func normaliseColumns(c domain.Columns) domain.Columns {
	if c.IsZero() {
		c.Name = true
	}
	return c
}

// columnArgs maps selected columns to their selection flags, in the same
// fixed order domain.Columns.Names reports them. The engine emits columns
// positionally in flag order.
func columnArgs(c domain.Columns) []string {
	var args []string
	if c.Name {
		args = append(args, "-name")
	}
	if c.Path {
		args = append(args, "-path-column")
	}
	if c.FullPath {
		args = append(args, "-full-path-and-name")
	}
	if c.Extension {
		args = append(args, "-extension")
	}
	if c.Size {
		args = append(args, "-size")
	}
	if c.DateCreated {
		args = append(args, "-date-created")
	}
	if c.DateModified {
		args = append(args, "-date-modified")
	}
	if c.DateAccessed {
		args = append(args, "-date-accessed")
	}
	if c.Attributes {
		args = append(args, "-attributes")
	}
	return args
}
