package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds an engine invocation when neither the request nor
// the configuration supplies one.
const DefaultTimeout = 5 * time.Second

// SortField identifies an engine-side sort key.
type SortField string

// Available sort fields.
const (
	SortByName         SortField = "name"
	SortByPath         SortField = "path"
	SortBySize         SortField = "size"
	SortByExtension    SortField = "extension"
	SortByDateCreated  SortField = "date-created"
	SortByDateModified SortField = "date-modified"
	SortByDateAccessed SortField = "date-accessed"
	SortByRunCount     SortField = "run-count"
)

// IsValid returns true if the sort field is recognised.
func (f SortField) IsValid() bool {
	switch f {
	case SortByName, SortByPath, SortBySize, SortByExtension,
		SortByDateCreated, SortByDateModified, SortByDateAccessed, SortByRunCount:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f SortField) String() string {
	return string(f)
}

// AllSortFields returns all available sort fields.
func AllSortFields() []SortField {
	return []SortField{
		SortByName,
		SortByPath,
		SortBySize,
		SortByExtension,
		SortByDateCreated,
		SortByDateModified,
		SortByDateAccessed,
		SortByRunCount,
	}
}

// Column header names as they appear in the engine's CSV output.
const (
	ColumnName         = "Name"
	ColumnPath         = "Path"
	ColumnFullPath     = "Filename"
	ColumnExtension    = "Extension"
	ColumnSize         = "Size"
	ColumnDateCreated  = "Date Created"
	ColumnDateModified = "Date Modified"
	ColumnDateAccessed = "Date Accessed"
	ColumnAttributes   = "Attributes"
)

// Columns selects which metadata columns a search includes. The engine
// emits columns positionally, in the fixed order the fields are declared
// here, so parsed record layout always matches this order.
type Columns struct {
	// Name includes the file or folder name.
	Name bool

	// Path includes the parent path column.
	Path bool

	// FullPath includes the combined full path and name column.
	FullPath bool

	// Extension includes the file extension.
	Extension bool

	// Size includes the size in bytes.
	Size bool

	// DateCreated includes the creation date.
	DateCreated bool

	// DateModified includes the modification date.
	DateModified bool

	// DateAccessed includes the access date.
	DateAccessed bool

	// Attributes includes the DIR-style attribute letters.
	Attributes bool
}

// IsZero returns true if no column is selected. A zero column set is
// normalised to name-only at compile time.
func (c Columns) IsZero() bool {
	return c == Columns{}
}

// Names returns the header names of the selected columns in emission order.
func (c Columns) Names() []string {
	var names []string
	if c.Name {
		names = append(names, ColumnName)
	}
	if c.Path {
		names = append(names, ColumnPath)
	}
	if c.FullPath {
		names = append(names, ColumnFullPath)
	}
	if c.Extension {
		names = append(names, ColumnExtension)
	}
	if c.Size {
		names = append(names, ColumnSize)
	}
	if c.DateCreated {
		names = append(names, ColumnDateCreated)
	}
	if c.DateModified {
		names = append(names, ColumnDateModified)
	}
	if c.DateAccessed {
		names = append(names, ColumnDateAccessed)
	}
	if c.Attributes {
		names = append(names, ColumnAttributes)
	}
	return names
}

// SearchRequest configures a single engine invocation. A request is built,
// used for one call and discarded; it carries no identity of its own.
type SearchRequest struct {
	// Query is the search text. Empty is valid and matches everything,
	// relying on the other filters to scope results.
	Query string

	// Regex treats Query as a regular expression.
	Regex bool

	// CaseSensitive matches case.
	CaseSensitive bool

	// WholeWords matches whole words only.
	WholeWords bool

	// MatchPath matches against the full path, not just the name.
	MatchPath bool

	// MatchDiacritics distinguishes accented characters.
	MatchDiacritics bool

	// MaxResults caps the number of returned rows. Zero means no cap.
	MaxResults int

	// Offset skips the first N results.
	Offset int

	// PathFilter limits matches to a directory subtree.
	PathFilter string

	// ParentPath matches items whose parent is under the given path.
	ParentPath string

	// Parent matches items directly inside the given folder.
	Parent string

	// FoldersOnly returns only folders. Takes precedence over FilesOnly
	// when both are set.
	FoldersOnly bool

	// FilesOnly returns only files.
	FilesOnly bool

	// Attributes is a DIR-style attribute filter, e.g. "RHS".
	Attributes string

	// SortBy selects the engine-side sort key. Empty leaves the engine's
	// default order.
	SortBy SortField

	// SortDescending reverses the sort. Only meaningful with SortBy.
	SortDescending bool

	// Columns selects the output columns.
	Columns Columns

	// Timeout bounds the engine invocation. Zero uses the configured
	// default.
	Timeout time.Duration
}

// FileSearch returns a request matching files only.
func FileSearch(query string) SearchRequest {
	return SearchRequest{
		Query:     query,
		FilesOnly: true,
		Columns:   Columns{Name: true},
	}
}

// FolderSearch returns a request matching folders only.
func FolderSearch(query string) SearchRequest {
	return SearchRequest{
		Query:       query,
		FoldersOnly: true,
		Columns:     Columns{Name: true},
	}
}

// ExtensionSearch returns a request matching files with the given
// extension. A leading dot is tolerated.
func ExtensionSearch(extension string) SearchRequest {
	ext := strings.TrimPrefix(extension, ".")
	return SearchRequest{
		Query:     "ext:" + ext,
		FilesOnly: true,
		Columns:   Columns{Name: true},
	}
}

// SizeSearch returns a request matching files by size. The filter uses the
// engine's own syntax, e.g. ">100MB", "<1KB", "1GB..5GB" or "empty", and
// is passed through verbatim. The size column is included so callers can
// see the values the filter matched on.
func SizeSearch(filter string) SearchRequest {
	return SearchRequest{
		Query:     "size:" + filter,
		FilesOnly: true,
		Columns:   Columns{Name: true, Size: true},
	}
}

// RecentSearch returns a request matching items modified within the last
// given number of days. Days at or below zero default to seven.
func RecentSearch(days int) SearchRequest {
	if days <= 0 {
		days = 7
	}
	return SearchRequest{
		Query:   fmt.Sprintf("datemodified:last%ddays", days),
		Columns: Columns{Name: true, DateModified: true},
	}
}
