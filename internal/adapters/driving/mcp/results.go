package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// Tool results follow a two-shape contract: success is a JSON array of
// records (or a small object for count and version), failure is
// {"error": message}. Failures stay in-band as tool text so the calling
// model can read them; the protocol error channel is never used.

// countOutput is the success shape of get_result_count.
type countOutput struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// versionOutput is the success shape of get_everything_version.
type versionOutput struct {
	Version string `json:"version"`
}

type errorOutput struct {
	Error string `json:"error"`
}

// recordsResult encodes a result set as indented JSON text.
func recordsResult(records []domain.Record) *mcp.CallToolResult {
	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encoding results: %w", err))
	}
	return textResult(string(data))
}

// objectResult encodes a small fixed-shape success object.
func objectResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Errorf("encoding result: %w", err))
	}
	return textResult(string(data))
}

// errorResult encodes a failure in the error shape.
func errorResult(err error) *mcp.CallToolResult {
	data, mErr := json.Marshal(errorOutput{Error: err.Error()})
	if mErr != nil {
		data = []byte(`{"error": "unencodable failure"}`)
	}
	return textResult(string(data))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
