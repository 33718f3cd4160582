// Package mcp connects to MCP (Model Context Protocol) servers and
// surfaces their tools through the tool package, so remote capabilities
// register alongside the built-ins and dispatch the same way.
//
// # Usage
//
//	server, err := mcp.Connect(ctx, "./my-mcp-server", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//
//	registry.Add(server.Tools()...)
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Server is a connection to an MCP server. Its remote tools are cached
// locally; Refresh re-fetches the list if the server's tools change.
// Server is safe for concurrent use.
type Server struct {
	client *client.Client
	mu     sync.RWMutex
	tools  []mcp.Tool
}

// Connect starts an MCP server as a subprocess and establishes a stdio
// session with it. env entries are passed to the subprocess as KEY=VALUE.
func Connect(ctx context.Context, command string, env []string, args ...string) (*Server, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}
	return newServer(ctx, c)
}

// ConnectSSE establishes an SSE session with an MCP server at baseURL.
func ConnectSSE(ctx context.Context, baseURL string) (*Server, error) {
	c, err := client.NewSSEMCPClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSE MCP client: %w", err)
	}
	return newServer(ctx, c)
}

func newServer(ctx context.Context, c *client.Client) (*Server, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "gemini-cli",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	s := &Server{client: c}
	if err := s.Refresh(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return s, nil
}

// Close closes the connection to the MCP server.
func (s *Server) Close() error {
	return s.client.Close()
}

// Refresh re-fetches the tool list from the server.
func (s *Server) Refresh(ctx context.Context) error {
	result, err := s.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools = result.Tools
	return nil
}

// Len returns the number of tools the server advertises.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tools)
}
