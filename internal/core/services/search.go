package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evertools/esq-cli/internal/core/domain"
	"github.com/evertools/esq-cli/internal/core/ports/driven"
	"github.com/evertools/esq-cli/internal/core/ports/driving"
	"github.com/evertools/esq-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Defaults carries configured fallback values applied to requests that
// leave the corresponding option unset.
type Defaults struct {
	// Timeout bounds an engine invocation when the request has none.
	// Zero falls back to domain.DefaultTimeout.
	Timeout time.Duration

	// MaxResults caps results when the request has no cap. Zero leaves
	// the engine uncapped.
	MaxResults int
}

// SearchService provides file search through the external engine.
type SearchService struct {
	engine   driven.SearchEngine
	defaults Defaults
}

// NewSearchService creates a new search service.
func NewSearchService(engine driven.SearchEngine, defaults Defaults) *SearchService {
	return &SearchService{
		engine:   engine,
		defaults: defaults,
	}
}

// Search validates the request, fills configured defaults and runs it
// against the engine.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Record, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", req.Query)

	if s.engine == nil {
		return nil, errors.New("search engine unavailable")
	}

	req, err := s.normalise(req)
	if err != nil {
		logger.Warn("Invalid request: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Max results: %d, Offset: %d, Timeout: %s",
		req.MaxResults, req.Offset, req.Timeout)

	records, err := s.engine.Search(ctx, req)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Info("Results: %d records", len(records))
	return records, nil
}

// Count returns the total result count for a query without retrieving
// records.
func (s *SearchService) Count(ctx context.Context, query string) (int, error) {
	logger.Section("Result Count")
	logger.Debug("Query: %q", query)

	if s.engine == nil {
		return 0, errors.New("search engine unavailable")
	}

	n, err := s.engine.Count(ctx, query)
	if err != nil {
		logger.Warn("Count failed: %v", err)
		return 0, fmt.Errorf("count: %w", err)
	}

	logger.Info("Count: %d", n)
	return n, nil
}

// EngineVersion returns the external engine's version string.
func (s *SearchService) EngineVersion(ctx context.Context) (string, error) {
	if s.engine == nil {
		return "", errors.New("search engine unavailable")
	}

	version, err := s.engine.Version(ctx)
	if err != nil {
		logger.Warn("Version query failed: %v", err)
		return "", fmt.Errorf("engine version: %w", err)
	}

	logger.Debug("Engine version: %s", version)
	return version, nil
}

// Export writes results for the request directly to dest in the given
// format, delegating formatting to the engine.
func (s *SearchService) Export(ctx context.Context, req domain.SearchRequest, dest string, format domain.ExportFormat) error {
	logger.Section("Export")
	logger.Debug("Query: %q, Dest: %s, Format: %s", req.Query, dest, format)

	if s.engine == nil {
		return errors.New("search engine unavailable")
	}
	if dest == "" {
		return fmt.Errorf("export: %w: empty destination", domain.ErrInvalidRequest)
	}
	if !format.IsValid() {
		return fmt.Errorf("export: %w: unknown format %q", domain.ErrInvalidRequest, format)
	}

	req, err := s.normalise(req)
	if err != nil {
		logger.Warn("Invalid request: %v", err)
		return fmt.Errorf("export: %w", err)
	}

	if err := s.engine.Export(ctx, req, dest, format); err != nil {
		logger.Warn("Export failed: %v", err)
		return fmt.Errorf("export: %w", err)
	}

	logger.Info("Exported to %s", dest)
	return nil
}

// normalise validates the request and fills configured defaults.
func (s *SearchService) normalise(req domain.SearchRequest) (domain.SearchRequest, error) {
	if req.MaxResults < 0 {
		return req, fmt.Errorf("%w: negative max results", domain.ErrInvalidRequest)
	}
	if req.Offset < 0 {
		return req, fmt.Errorf("%w: negative offset", domain.ErrInvalidRequest)
	}
	if req.Timeout < 0 {
		return req, fmt.Errorf("%w: negative timeout", domain.ErrInvalidRequest)
	}
	if req.SortBy != "" && !req.SortBy.IsValid() {
		return req, fmt.Errorf("%w: unknown sort field %q", domain.ErrInvalidRequest, req.SortBy)
	}

	if req.Timeout == 0 {
		req.Timeout = s.defaults.Timeout
	}
	if req.Timeout == 0 {
		req.Timeout = domain.DefaultTimeout
	}
	if req.MaxResults == 0 {
		req.MaxResults = s.defaults.MaxResults
	}

	return req, nil
}
