package mcp

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evertools/esq-cli/internal/core/domain"
)

// resultText unwraps the single text block all tool results carry.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "tool results are text content")
	return text.Text
}

func TestRecordsResult(t *testing.T) {
	t.Run("records become an indented array with ordered keys", func(t *testing.T) {
		records := []domain.Record{
			{Fields: []domain.Field{
				{Column: "Name", Value: "report.pdf"},
				{Column: "Size", Value: int64(2048)},
			}},
		}

		text := resultText(t, recordsResult(records))

		want := "[\n  {\n    \"Name\": \"report.pdf\",\n    \"Size\": 2048\n  }\n]"
		assert.Equal(t, want, text)
	})

	t.Run("nil records become an empty array", func(t *testing.T) {
		text := resultText(t, recordsResult(nil))
		assert.Equal(t, "[]", text)
	})
}

func TestObjectResult(t *testing.T) {
	text := resultText(t, objectResult(countOutput{Query: "*.py", Count: 42}))
	assert.Equal(t, `{"query":"*.py","count":42}`, text)
}

func TestErrorResult(t *testing.T) {
	text := resultText(t, errorResult(errors.New("engine exploded")))
	assert.Equal(t, `{"error":"engine exploded"}`, text)
}
