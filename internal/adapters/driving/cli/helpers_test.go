package cli

import (
	"context"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	records []domain.Record
	count   int
	version string
	err     error

	lastRequest *domain.SearchRequest
	lastQuery   string
	lastDest    string
	lastFormat  domain.ExportFormat
}

func (m *mockSearchService) Search(_ context.Context, req domain.SearchRequest) ([]domain.Record, error) {
	m.lastRequest = &req
	return m.records, m.err
}

func (m *mockSearchService) Count(_ context.Context, query string) (int, error) {
	m.lastQuery = query
	return m.count, m.err
}

func (m *mockSearchService) EngineVersion(_ context.Context) (string, error) {
	return m.version, m.err
}

func (m *mockSearchService) Export(_ context.Context, req domain.SearchRequest, dest string, format domain.ExportFormat) error {
	m.lastRequest = &req
	m.lastDest = dest
	m.lastFormat = format
	return m.err
}

// mockActionService is a mock implementation of driving.ResultActionService.
type mockActionService struct {
	copied []string
	opened []string
	err    error
}

func (m *mockActionService) CopyPath(_ context.Context, record domain.Record) error {
	if m.err != nil {
		return m.err
	}
	m.copied = append(m.copied, record.FullPath())
	return nil
}

func (m *mockActionService) OpenResult(_ context.Context, record domain.Record) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, record.FullPath())
	return nil
}

// Mocks installed by the most recent setupTestServices call.
var (
	testSearchMock *mockSearchService
	testActionMock *mockActionService
)

func defaultTestRecords() []domain.Record {
	return []domain.Record{
		{Fields: []domain.Field{
			{Column: domain.ColumnFullPath, Value: `C:\docs\report.pdf`},
			{Column: domain.ColumnSize, Value: int64(2048)},
			{Column: domain.ColumnDateModified, Value: "01/02/2024 10:00"},
		}},
		{Fields: []domain.Field{
			{Column: domain.ColumnFullPath, Value: `C:\docs\notes.txt`},
			{Column: domain.ColumnSize, Value: int64(512)},
			{Column: domain.ColumnDateModified, Value: "03/04/2024 11:30"},
		}},
	}
}

// setupTestServices swaps the package-level services for mocks and returns
// a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldSearch := searchService
	oldAction := actionService
	oldConfig := configStore

	testSearchMock = &mockSearchService{records: defaultTestRecords(), version: "1.1.0.27"}
	testActionMock = &mockActionService{}
	searchService = testSearchMock
	actionService = testActionMock

	return func() {
		searchService = oldSearch
		actionService = oldAction
		configStore = oldConfig
	}
}

// resetSearchFlags clears flag-bound package variables that persist
// between Execute calls.
func resetSearchFlags() {
	searchFilesOnly = false
	searchFoldersOnly = false
	searchExt = ""
	searchSize = ""
	searchRecentDays = 0
	searchRegex = false
	searchCase = false
	searchWholeWords = false
	searchMatchPath = false
	searchDiacritics = false
	searchPath = ""
	searchParentPath = ""
	searchParent = ""
	searchAttributes = ""
	searchMaxResults = 0
	searchOffset = 0
	searchSort = ""
	searchDesc = false
	searchColumns = nil
	searchTimeout = 0
	searchJSON = false
	searchCSV = false
	searchOpen = 0
	searchCopy = 0
}
