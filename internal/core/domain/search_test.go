package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSortField_IsValid tests sort field validation
func TestSortField_IsValid(t *testing.T) {
	for _, f := range AllSortFields() {
		t.Run(f.String(), func(t *testing.T) {
			assert.True(t, f.IsValid())
		})
	}

	assert.False(t, SortField("").IsValid())
	assert.False(t, SortField("modified").IsValid())
	assert.False(t, SortField("NAME").IsValid())
}

// TestColumns_IsZero tests zero-value detection
func TestColumns_IsZero(t *testing.T) {
	assert.True(t, Columns{}.IsZero())
	assert.False(t, Columns{Name: true}.IsZero())
	assert.False(t, Columns{Attributes: true}.IsZero())
}

// TestColumns_Names tests header names follow emission order
func TestColumns_Names(t *testing.T) {
	tests := []struct {
		name string
		cols Columns
		want []string
	}{
		{
			name: "name only",
			cols: Columns{Name: true},
			want: []string{"Name"},
		},
		{
			name: "full path with size",
			cols: Columns{FullPath: true, Size: true},
			want: []string{"Filename", "Size"},
		},
		{
			name: "order is fixed regardless of selection",
			cols: Columns{Size: true, Name: true, DateModified: true},
			want: []string{"Name", "Size", "Date Modified"},
		},
		{
			name: "all columns",
			cols: Columns{
				Name: true, Path: true, FullPath: true, Extension: true,
				Size: true, DateCreated: true, DateModified: true,
				DateAccessed: true, Attributes: true,
			},
			want: []string{
				"Name", "Path", "Filename", "Extension", "Size",
				"Date Created", "Date Modified", "Date Accessed", "Attributes",
			},
		},
		{
			name: "none selected",
			cols: Columns{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cols.Names())
		})
	}
}

// TestSearchRequest_ZeroValue tests the zero request is usable
func TestSearchRequest_ZeroValue(t *testing.T) {
	req := SearchRequest{}

	assert.Empty(t, req.Query)
	assert.False(t, req.Regex)
	assert.Zero(t, req.MaxResults)
	assert.Zero(t, req.Timeout)
	assert.True(t, req.Columns.IsZero())
}

// TestFileSearch tests the files-only preset
func TestFileSearch(t *testing.T) {
	req := FileSearch("report")

	assert.Equal(t, "report", req.Query)
	assert.True(t, req.FilesOnly)
	assert.False(t, req.FoldersOnly)
	assert.Equal(t, Columns{Name: true}, req.Columns)
}

// TestFolderSearch tests the folders-only preset
func TestFolderSearch(t *testing.T) {
	req := FolderSearch("projects")

	assert.Equal(t, "projects", req.Query)
	assert.True(t, req.FoldersOnly)
	assert.False(t, req.FilesOnly)
}

// TestExtensionSearch tests the extension preset
func TestExtensionSearch(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		wantQuery string
	}{
		{"bare extension", "pdf", "ext:pdf"},
		{"leading dot stripped", ".pdf", "ext:pdf"},
		{"mixed case preserved", "PDF", "ext:PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ExtensionSearch(tt.extension)
			assert.Equal(t, tt.wantQuery, req.Query)
			assert.True(t, req.FilesOnly)
		})
	}
}

// TestSizeSearch tests the size preset includes the size column
func TestSizeSearch(t *testing.T) {
	req := SizeSearch(">100MB")

	assert.Equal(t, "size:>100MB", req.Query)
	assert.True(t, req.FilesOnly)
	assert.True(t, req.Columns.Size)
	assert.True(t, req.Columns.Name)
}

// TestRecentSearch tests the recency preset
func TestRecentSearch(t *testing.T) {
	req := RecentSearch(30)

	assert.Equal(t, "datemodified:last30days", req.Query)
	assert.False(t, req.FilesOnly, "recency search matches folders too")
	assert.True(t, req.Columns.DateModified)
}

// TestRecentSearch_DefaultDays tests days at or below zero default to seven
func TestRecentSearch_DefaultDays(t *testing.T) {
	assert.Equal(t, "datemodified:last7days", RecentSearch(0).Query)
	assert.Equal(t, "datemodified:last7days", RecentSearch(-3).Query)
}

// TestDefaultTimeout tests the fallback timeout value
func TestDefaultTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, DefaultTimeout)
}
