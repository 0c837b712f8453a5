package driving

import (
	"context"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// This is used by the CLI adapter.
type ResultActionService interface {
	// CopyPath copies the result's filesystem path to the system clipboard.
	CopyPath(ctx context.Context, record domain.Record) error

	// OpenResult opens the result's path in the default application.
	OpenResult(ctx context.Context, record domain.Record) error
}
