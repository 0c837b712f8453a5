package everything

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/evertools/esq-cli/internal/core/domain"
	"github.com/evertools/esq-cli/internal/core/ports/driven"
	"github.com/evertools/esq-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchEngine = (*Client)(nil)

// Client is a validated handle on the Everything command-line client.
// After construction it holds only the executable path: no open
// resources, one subprocess per operation. A Client is not meant for
// concurrent reuse; hold one per goroutine.
type Client struct {
	exePath string
}

// NewClient validates path and returns a handle on the engine. A missing
// or non-runnable executable is domain.ErrExecutableNotFound. The check
// happens here once, not per call.
func NewClient(path string) (*Client, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path configured", domain.ErrExecutableNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrExecutableNotFound, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrExecutableNotFound, path)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return nil, fmt.Errorf("%w: %s is not executable", domain.ErrExecutableNotFound, path)
	}

	logger.Debug("Engine executable: %s", path)
	return &Client{exePath: path}, nil
}

// Path returns the validated executable path.
func (c *Client) Path() string {
	return c.exePath
}

// Search runs the request and returns parsed result records in the
// engine's own sort order.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Record, error) {
	raw, err := invoke(ctx, c.exePath, searchArgs(req), req.Timeout)
	if err != nil {
		return nil, err
	}

	text, replaced := decodeOutput(raw)
	if replaced {
		logger.Anomaly("output contained undecodable bytes, replaced with U+FFFD")
	}

	expected := normaliseColumns(req.Columns).Names()
	return parseRecords(text, expected)
}

// Count returns the total number of results for a query using the
// engine's dedicated count flag. No records are materialised and the
// CSV parser is never involved.
func (c *Client) Count(ctx context.Context, query string) (int, error) {
	raw, err := invoke(ctx, c.exePath, countArgs(query), domain.DefaultTimeout)
	if err != nil {
		return 0, err
	}

	text, _ := decodeOutput(raw)
	out := strings.TrimSpace(text)
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("%w: count output %q is not a number", domain.ErrParse, out)
	}
	return n, nil
}

// Version returns the engine's version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	raw, err := invoke(ctx, c.exePath, versionArgs(), domain.DefaultTimeout)
	if err != nil {
		return "", err
	}

	text, _ := decodeOutput(raw)
	return strings.TrimSpace(text), nil
}

// Export has the engine write results for the request directly to dest.
// The output file is entirely the engine's own formatting.
func (c *Client) Export(ctx context.Context, req domain.SearchRequest, dest string, format domain.ExportFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidRequest, format)
	}

	_, err := invoke(ctx, c.exePath, exportArgs(req, dest, format), req.Timeout)
	return err
}
