package domain

import "errors"

// Domain errors represent search pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrExecutableNotFound indicates the Everything command-line client is
	// missing or not runnable at the configured path. This is raised once,
	// when the handle is constructed, never per call.
	ErrExecutableNotFound = errors.New("everything executable not found")

	// ErrTimedOut indicates the search process exceeded its allotted time
	// and was killed. Callers may retry with a larger timeout or a
	// narrower filter.
	ErrTimedOut = errors.New("search timed out")

	// ErrExecutionFailed indicates the engine exited non-zero. Its
	// diagnostic text is wrapped around this sentinel, uninterpreted.
	ErrExecutionFailed = errors.New("search execution failed")

	// ErrParse indicates engine output that could not be read as delimited
	// text at all. Individually malformed rows are skipped and logged,
	// not raised.
	ErrParse = errors.New("unparseable engine output")

	// ErrInvalidRequest indicates a malformed search request.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrRateLimited indicates the tool-call rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
