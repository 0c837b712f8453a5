package everything

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evertools/esq-cli/internal/core/domain"
	"github.com/evertools/esq-cli/internal/logger"
)

// invoke runs the engine executable with the compiled arguments, bounded
// by the timeout when one is set. Standard output is returned raw for
// decoding; standard error rides along inside the failure when the engine
// exits non-zero. Hitting the deadline kills the process before returning,
// so no orphan outlives the call.
func invoke(ctx context.Context, exePath string, args []string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	id := uuid.NewString()[:8]
	logger.Debug("[%s] exec: %s %q", id, exePath, args)
	start := time.Now()

	cmd := exec.CommandContext(ctx, exePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	logger.Debug("[%s] done in %s (stdout %dB, stderr %dB)",
		id, time.Since(start).Round(time.Millisecond), stdout.Len(), stderr.Len())

	// The deadline check comes first: a killed process also reports a
	// non-zero exit, which must not masquerade as an engine failure.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s", domain.ErrTimedOut, timeout)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = err.Error()
			}
			return nil, fmt.Errorf("%w: %s", domain.ErrExecutionFailed, msg)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrExecutionFailed, err)
	}

	return stdout.Bytes(), nil
}
