// Package mcp provides an MCP (Model Context Protocol) server adapter for esq.
// It exposes Everything Search as tools an AI assistant can call.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
