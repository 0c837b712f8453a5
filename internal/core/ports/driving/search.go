package driving

import (
	"context"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search validates the request, fills configured defaults and runs it
	// against the engine.
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Record, error)

	// Count returns the total result count for a query without retrieving
	// records.
	Count(ctx context.Context, query string) (int, error)

	// EngineVersion returns the external engine's version string.
	EngineVersion(ctx context.Context) (string, error)

	// Export writes results for the request directly to dest in the given
	// format, delegating formatting to the engine.
	Export(ctx context.Context, req domain.SearchRequest, dest string, format domain.ExportFormat) error
}
