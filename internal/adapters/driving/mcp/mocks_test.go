package mcp

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

func (m *mockSearchService) Export(_ context.Context, _ domain.SearchRequest, _ string, _ domain.ExportFormat) error {
	return m.err
}
