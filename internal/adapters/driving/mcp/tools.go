package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// Tool-level defaults. Searches driven by a model get a generous timeout
// and a small result page so responses stay readable in a conversation.
const (
	defaultToolMaxResults = 20
	defaultToolTimeoutMS  = 30000
)

// SearchFilesInput is the input schema for the search_files tool.
type SearchFilesInput struct {
	Query               string `json:"query,omitempty" jsonschema:"search query string, Everything syntax"`
	MaxResults          int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	Regex               bool   `json:"regex,omitempty" jsonschema:"treat the query as a regular expression"`
	CaseSensitive       bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	IncludeSize         *bool  `json:"include_size,omitempty" jsonschema:"include file size in results (default true)"`
	IncludeDateModified *bool  `json:"include_date_modified,omitempty" jsonschema:"include modification date (default true)"`
	SortBy              string `json:"sort_by,omitempty" jsonschema:"sort field: name, path, size, extension, date-created, date-modified, date-accessed or run-count (default name)"`
	Timeout             int    `json:"timeout,omitempty" jsonschema:"search timeout in milliseconds (default 30000)"`
}

// SearchFoldersInput is the input schema for the search_folders tool.
type SearchFoldersInput struct {
	Query         string `json:"query,omitempty" jsonschema:"search query string, Everything syntax"`
	MaxResults    int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	Regex         bool   `json:"regex,omitempty" jsonschema:"treat the query as a regular expression"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	SortBy        string `json:"sort_by,omitempty" jsonschema:"sort field (default name)"`
	Timeout       int    `json:"timeout,omitempty" jsonschema:"search timeout in milliseconds (default 30000)"`
}

// SearchByExtensionInput is the input schema for the search_by_extension tool.
type SearchByExtensionInput struct {
	Extension           string `json:"extension" jsonschema:"file extension to search for, e.g. py, txt, exe"`
	MaxResults          int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	IncludeSize         *bool  `json:"include_size,omitempty" jsonschema:"include file size in results (default true)"`
	IncludeDateModified *bool  `json:"include_date_modified,omitempty" jsonschema:"include modification date (default true)"`
	SortBy              string `json:"sort_by,omitempty" jsonschema:"sort field (default name)"`
}

// SearchBySizeInput is the input schema for the search_by_size tool.
type SearchBySizeInput struct {
	SizeFilter          string `json:"size_filter" jsonschema:"size filter in Everything syntax, e.g. >100MB, <1KB, 1GB..5GB"`
	MaxResults          int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	IncludeDateModified *bool  `json:"include_date_modified,omitempty" jsonschema:"include modification date (default true)"`
	SortBy              string `json:"sort_by,omitempty" jsonschema:"sort field (default size)"`
	SortAscending       bool   `json:"sort_ascending,omitempty" jsonschema:"sort ascending (default false, largest first)"`
}

// SearchRecentFilesInput is the input schema for the search_recent_files tool.
type SearchRecentFilesInput struct {
	Days          int    `json:"days,omitempty" jsonschema:"number of days to look back (default 7)"`
	MaxResults    int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	IncludeSize   *bool  `json:"include_size,omitempty" jsonschema:"include file size in results (default true)"`
	SortBy        string `json:"sort_by,omitempty" jsonschema:"sort field (default date-modified)"`
	SortAscending bool   `json:"sort_ascending,omitempty" jsonschema:"sort ascending (default false, newest first)"`
}

// AdvancedSearchInput is the input schema for the advanced_search tool.
type AdvancedSearchInput struct {
	Query               string `json:"query" jsonschema:"search query string, Everything syntax"`
	MaxResults          int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	Regex               bool   `json:"regex,omitempty" jsonschema:"treat the query as a regular expression"`
	CaseSensitive       bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	WholeWords          bool   `json:"whole_words,omitempty" jsonschema:"match whole words only"`
	MatchPath           bool   `json:"match_path,omitempty" jsonschema:"match against the full path, not just the name"`
	FilesOnly           bool   `json:"files_only,omitempty" jsonschema:"return only files"`
	FoldersOnly         bool   `json:"folders_only,omitempty" jsonschema:"return only folders (wins over files_only)"`
	PathFilter          string `json:"path_filter,omitempty" jsonschema:"search within this path only"`
	IncludeSize         *bool  `json:"include_size,omitempty" jsonschema:"include file size in results (default true)"`
	IncludeExtension    *bool  `json:"include_extension,omitempty" jsonschema:"include file extension (default true)"`
	IncludeDateModified *bool  `json:"include_date_modified,omitempty" jsonschema:"include modification date (default true)"`
	SortBy              string `json:"sort_by,omitempty" jsonschema:"sort field (default name)"`
	SortAscending       *bool  `json:"sort_ascending,omitempty" jsonschema:"sort ascending (default true)"`
	Timeout             int    `json:"timeout,omitempty" jsonschema:"search timeout in milliseconds (default 30000)"`
}

// GetResultCountInput is the input schema for the get_result_count tool.
type GetResultCountInput struct {
	Query string `json:"query" jsonschema:"search query string to count matches for"`
}

// GetEverythingVersionInput is the input schema for the get_everything_version tool.
type GetEverythingVersionInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_files",
		Description: "Search for files using Everything Search",
	}, s.handleSearchFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_folders",
		Description: "Search for folders using Everything Search",
	}, s.handleSearchFolders)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_by_extension",
		Description: "Search for files by extension using Everything Search",
	}, s.handleSearchByExtension)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_by_size",
		Description: "Search for files by size using Everything Search",
	}, s.handleSearchBySize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_recent_files",
		Description: "Search for recently modified files using Everything Search",
	}, s.handleSearchRecentFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "advanced_search",
		Description: "Advanced search with full control over search parameters",
	}, s.handleAdvancedSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_result_count",
		Description: "Get the total number of results for a search query without fetching them",
	}, s.handleGetResultCount)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_everything_version",
		Description: "Get the version of Everything Search",
	}, s.handleGetEverythingVersion)
}

// handleSearchFiles handles the search_files tool invocation.
func (s *Server) handleSearchFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFilesInput,
) (*mcp.CallToolResult, any, error) {
	req := domain.FileSearch(input.Query)
	req.Regex = input.Regex
	req.CaseSensitive = input.CaseSensitive
	req.MaxResults = intOr(input.MaxResults, defaultToolMaxResults)
	req.Timeout = toolTimeout(input.Timeout)
	req.Columns.FullPath = true
	req.Columns.Size = boolOr(input.IncludeSize, true)
	req.Columns.DateModified = boolOr(input.IncludeDateModified, true)

	sort, err := sortField(input.SortBy, domain.SortByName)
	if err != nil {
		return errorResult(err), nil, nil
	}
	req.SortBy = sort

	return s.runSearch(ctx, req), nil, nil
}

// handleSearchFolders handles the search_folders tool invocation.
func (s *Server) handleSearchFolders(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFoldersInput,
) (*mcp.CallToolResult, any, error) {
	req := domain.FolderSearch(input.Query)
	req.Regex = input.Regex
	req.CaseSensitive = input.CaseSensitive
	req.MaxResults = intOr(input.MaxResults, defaultToolMaxResults)
	req.Timeout = toolTimeout(input.Timeout)
	req.Columns.FullPath = true

	sort, err := sortField(input.SortBy, domain.SortByName)
	if err != nil {
		return errorResult(err), nil, nil
	}
	req.SortBy = sort

	return s.runSearch(ctx, req), nil, nil
}

// handleSearchByExtension handles the search_by_extension tool invocation.
func (s *Server) handleSearchByExtension(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchByExtensionInput,
) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.Extension) == "" {
		return errorResult(fmt.Errorf("extension is required")), nil, nil
	}

	req := domain.ExtensionSearch(input.Extension)
	req.MaxResults = intOr(input.MaxResults, defaultToolMaxResults)
	req.Columns.FullPath = true
	req.Columns.Size = boolOr(input.IncludeSize, true)
	req.Columns.DateModified = boolOr(input.IncludeDateModified, true)

	sort, err := sortField(input.SortBy, domain.SortByName)
	if err != nil {
		return errorResult(err), nil, nil
	}
	req.SortBy = sort

	return s.runSearch(ctx, req), nil, nil
}

// handleSearchBySize handles the search_by_size tool invocation.
func (s *Server) handleSearchBySize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchBySizeInput,
) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.SizeFilter) == "" {
		return errorResult(fmt.Errorf("size_filter is required")), nil, nil
	}

	req := domain.SizeSearch(input.SizeFilter)
	req.MaxResults = intOr(input.MaxResults, defaultToolMaxResults)
	req.Columns.FullPath = true
	req.Columns.DateModified = boolOr(input.IncludeDateModified, true)
	req.SortDescending = !input.SortAscending

	sort, err := sortField(input.SortBy, domain.SortBySize)
	if err != nil {
		return errorResult(err), nil, nil
	}
	req.SortBy = sort

	return s.runSearch(ctx, req), nil, nil
}

// handleSearchRecentFiles handles the search_recent_files tool invocation.
func (s *Server) handleSearchRecentFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchRecentFilesInput,
) (*mcp.CallToolResult, any, error) {
	req := domain.RecentSearch(input.Days)
	req.MaxResults = intOr(input.MaxResults, defaultToolMaxResults)
	req.Columns.FullPath = true
	req.Columns.Size = boolOr(input.IncludeSize, true)
	req.SortDescending = !input.SortAscending

	sort, err := sortField(input.SortBy, domain.SortByDateModified)
	if err != nil {
		return errorResult(err), nil, nil
	}
	req.SortBy = sort

	return s.runSearch(ctx, req), nil, nil
}

// handleAdvancedSearch handles the advanced_search tool invocation.
func (s *Server) handleAdvancedSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AdvancedSearchInput,
) (*mcp.CallToolResult, any, error) {
	req := domain.SearchRequest{
		Query:          input.Query,
		Regex:          input.Regex,
		CaseSensitive:  input.CaseSensitive,
		WholeWords:     input.WholeWords,
		MatchPath:      input.MatchPath,
		FilesOnly:      input.FilesOnly,
		FoldersOnly:    input.FoldersOnly,
		PathFilter:     input.PathFilter,
		MaxResults:     intOr(input.MaxResults, defaultToolMaxResults),
		Timeout:        toolTimeout(input.Timeout),
		SortDescending: !boolOr(input.SortAscending, true),
		Columns: domain.Columns{
			Name:         true,
			FullPath:     true,
			Extension:    boolOr(input.IncludeExtension, true),
			Size:         boolOr(input.IncludeSize, true),
			DateModified: boolOr(input.IncludeDateModified, true),
		},
	}

	sort, err := sortField(input.SortBy, domain.SortByName)
	if err != nil {
		return errorResult(err), nil, nil
	}
	req.SortBy = sort

	return s.runSearch(ctx, req), nil, nil
}

// handleGetResultCount handles the get_result_count tool invocation.
func (s *Server) handleGetResultCount(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetResultCountInput,
) (*mcp.CallToolResult, any, error) {
	if res := s.gate(); res != nil {
		return res, nil, nil
	}

	count, err := s.ports.Search.Count(ctx, input.Query)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return objectResult(countOutput{Query: input.Query, Count: count}), nil, nil
}

// handleGetEverythingVersion handles the get_everything_version tool invocation.
func (s *Server) handleGetEverythingVersion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetEverythingVersionInput,
) (*mcp.CallToolResult, any, error) {
	if res := s.gate(); res != nil {
		return res, nil, nil
	}

	version, err := s.ports.Search.EngineVersion(ctx)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return objectResult(versionOutput{Version: version}), nil, nil
}

// runSearch applies rate limiting and the two-shape result contract
// around a search request.
func (s *Server) runSearch(ctx context.Context, req domain.SearchRequest) *mcp.CallToolResult {
	if res := s.gate(); res != nil {
		return res
	}

	records, err := s.ports.Search.Search(ctx, req)
	if err != nil {
		return errorResult(err)
	}

	return recordsResult(records)
}

// gate enforces the shared tool-call rate limit. A nil return means the
// call may proceed.
func (s *Server) gate() *mcp.CallToolResult {
	if s.limiter == nil || s.limiter.Allow() {
		return nil
	}
	return errorResult(fmt.Errorf("%w: tool calls are arriving faster than the engine is allowed to serve", domain.ErrRateLimited))
}

// sortField maps tool input to an engine sort key. Snake case is accepted
// alongside the engine's hyphenated form.
func sortField(s string, fallback domain.SortField) (domain.SortField, error) {
	if s == "" {
		return fallback, nil
	}
	field := domain.SortField(strings.ReplaceAll(s, "_", "-"))
	if !field.IsValid() {
		return "", fmt.Errorf("unknown sort field %q", s)
	}
	return field, nil
}

// boolOr resolves an optional flag against its documented default.
func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// intOr lifts absent or non-positive values to the documented default.
func intOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// toolTimeout converts the tool's millisecond timeout to a duration.
func toolTimeout(ms int) time.Duration {
	if ms <= 0 {
		ms = defaultToolTimeoutMS
	}
	return time.Duration(ms) * time.Millisecond
}
