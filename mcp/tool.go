package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/anicolao/gemini-cli/tool"
)

// Tools returns the server's tools adapted to the tool.Tool interface.
// Calls on a returned tool are proxied to the remote server.
func (s *Server) Tools() []tool.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]tool.Tool, len(s.tools))
	for i, t := range s.tools {
		tools[i] = &remoteTool{server: s, decl: fromMCPTool(t)}
	}
	return tools
}

// fromMCPTool extracts a declaration from an MCP tool definition,
// preferring the raw schema when the server supplies one.
func fromMCPTool(t mcp.Tool) tool.Declaration {
	var schema json.RawMessage
	if len(t.RawInputSchema) > 0 {
		schema = t.RawInputSchema
	} else if data, err := json.Marshal(t.InputSchema); err == nil {
		schema = data
	}

	return tool.Declaration{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  schema,
	}
}

type remoteTool struct {
	server *Server
	decl   tool.Declaration
}

func (r *remoteTool) Declaration() tool.Declaration {
	return r.decl
}

func (r *remoteTool) Build(args map[string]any) (tool.Invocation, error) {
	return &remoteInvocation{server: r.server, name: r.decl.Name, args: args}, nil
}

type remoteInvocation struct {
	server *Server
	name   string
	args   map[string]any
}

func (r *remoteInvocation) Execute(ctx context.Context) (*tool.Outcome, error) {
	result, err := r.server.client.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      r.name,
			Arguments: r.args,
		},
	})
	if err != nil {
		return nil, err
	}

	content := resultText(result)
	if result.IsError {
		if content == "" {
			content = "remote tool reported an error"
		}
		return nil, fmt.Errorf("%s", content)
	}

	return &tool.Outcome{Content: content}, nil
}

// resultText joins the textual parts of an MCP result. Non-text parts are
// rendered as JSON so nothing the server returned is silently dropped.
func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	var parts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			parts = append(parts, content.Text)
		case *mcp.TextContent:
			parts = append(parts, content.Text)
		default:
			if data, err := json.Marshal(content); err == nil {
				parts = append(parts, string(data))
			}
		}
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			parts = append(parts, string(data))
		}
	}

	return strings.Join(parts, "\n")
}
