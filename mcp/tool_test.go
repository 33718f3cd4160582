package mcp

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMCPTool(t *testing.T) {
	t.Run("prefers raw schema", func(t *testing.T) {
		raw := json.RawMessage(`{"type":"object","properties":{"q":{"type":"string"}}}`)
		decl := fromMCPTool(mcp.Tool{
			Name:           "search",
			Description:    "Search things",
			RawInputSchema: raw,
		})

		assert.Equal(t, "search", decl.Name)
		assert.Equal(t, "Search things", decl.Description)
		assert.Equal(t, raw, decl.Parameters)
	})

	t.Run("marshals structured schema when raw is absent", func(t *testing.T) {
		decl := fromMCPTool(mcp.Tool{
			Name: "lookup",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"id": map[string]any{"type": "string"},
				},
			},
		})

		require.NotEmpty(t, decl.Parameters)
		var schema map[string]any
		require.NoError(t, json.Unmarshal(decl.Parameters, &schema))
		assert.Equal(t, "object", schema["type"])
	})
}

func TestResultText(t *testing.T) {
	t.Run("joins text parts with newlines", func(t *testing.T) {
		got := resultText(&mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{Type: "text", Text: "first"},
				mcp.TextContent{Type: "text", Text: "second"},
			},
		})
		assert.Equal(t, "first\nsecond", got)
	})

	t.Run("nil result is empty", func(t *testing.T) {
		assert.Equal(t, "", resultText(nil))
	})

	t.Run("structured content is appended as JSON", func(t *testing.T) {
		got := resultText(&mcp.CallToolResult{
			Content:           []mcp.Content{mcp.TextContent{Type: "text", Text: "head"}},
			StructuredContent: map[string]any{"count": 2},
		})
		assert.Equal(t, "head\n{\"count\":2}", got)
	})
}
