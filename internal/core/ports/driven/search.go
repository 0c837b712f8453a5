package driven

import (
	"context"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// SearchEngine drives the external Everything index. Implementations wrap
// the engine's command-line client; each call is one subprocess invocation,
// synchronous and stateless beyond the validated executable path.
//
// A SearchEngine is not safe for concurrent reuse without external
// synchronisation. Callers needing parallelism should hold one engine per
// goroutine.
type SearchEngine interface {
	// Search runs the request and returns parsed result records in the
	// engine's own sort order.
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Record, error)

	// Count returns the total number of results for a query without
	// materialising any records.
	Count(ctx context.Context, query string) (int, error)

	// Version returns the engine's version string.
	Version(ctx context.Context) (string, error)

	// Export has the engine write results for the request directly to
	// dest in the given format. The output file is the engine's own; it
	// is not reformatted.
	Export(ctx context.Context, req domain.SearchRequest, dest string, format domain.ExportFormat) error
}
