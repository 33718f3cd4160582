// Package session wires a configured provider, tool registry, and
// conversation loop into a runnable session. It is the inbound surface
// for embedding the conversation engine: load a Config, call Initialize,
// then Run prompts against the returned Session.
package session

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/agent"
	"github.com/anicolao/gemini-cli/mcp"
	"github.com/anicolao/gemini-cli/provider/anthropic"
	"github.com/anicolao/gemini-cli/provider/google"
	"github.com/anicolao/gemini-cli/provider/openai"
	"github.com/anicolao/gemini-cli/tool"
)

// Session is one initialized conversation: a provider with its own
// history, a tool registry scoped to the configured working directory,
// and the loop that drives them.
type Session struct {
	ID       string
	cfg      *Config
	registry *tool.Registry
	loop     *agent.Loop
	closers  []io.Closer
}

// Initialize builds a session from the configuration: registers the
// built-in tools, connects the optional MCP server, and constructs the
// configured provider with the full tool surface advertised.
func Initialize(ctx context.Context, cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.NewString(),
		cfg:      cfg,
		registry: tool.NewRegistry(),
	}

	s.registry.Add(
		tool.NewReadFileTool(tool.WithBasePath(cfg.Workdir)),
		tool.NewWriteFileTool(tool.WithBasePath(cfg.Workdir)),
		tool.NewReplaceTool(tool.WithBasePath(cfg.Workdir)),
		tool.NewReadManyFilesTool(tool.WithBasePath(cfg.Workdir)),
		tool.NewShellTool(tool.WithWorkDir(cfg.Workdir)),
	)

	if cfg.MCPServer != "" {
		server, err := mcp.Connect(ctx, cfg.MCPServer, os.Environ())
		if err != nil {
			return nil, fmt.Errorf("connecting MCP server: %w", err)
		}
		s.closers = append(s.closers, server)
		for _, t := range server.Tools() {
			if err := s.registry.Register(t); err != nil {
				server.Close()
				return nil, fmt.Errorf("registering MCP tool: %w", err)
			}
		}
	}

	producer, err := s.buildProducer(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.loop = agent.NewLoop(s.ID, producer, agent.NewScheduler(s.registry),
		agent.WithMaxTurns(cfg.MaxTurns))
	return s, nil
}

func (s *Session) buildProducer(ctx context.Context) (agent.Producer, error) {
	decls := s.registry.Declarations()

	switch s.cfg.Provider {
	case "google":
		opts := []google.ClientOption{google.WithTools(decls)}
		if s.cfg.Model != "" {
			opts = append(opts, google.WithModel(s.cfg.Model))
		}
		return google.New(ctx, s.cfg.GoogleKey, opts...)

	case "anthropic":
		opts := []anthropic.ClientOption{anthropic.WithTools(decls)}
		if s.cfg.Model != "" {
			opts = append(opts, anthropic.WithModel(s.cfg.Model))
		}
		return anthropic.New(s.cfg.AnthropicKey, opts...), nil

	case "openai":
		opts := []openai.ClientOption{openai.WithTools(decls)}
		if s.cfg.Model != "" {
			opts = append(opts, openai.WithModel(s.cfg.Model))
		}
		return openai.New(s.cfg.OpenAIKey, opts...), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", s.cfg.Provider)
	}
}

// Registry returns the session's tool registry.
func (s *Session) Registry() *tool.Registry {
	return s.registry
}

// Run processes one prompt to completion, emitting outward messages.
func (s *Session) Run(ctx context.Context, prompt string, emit ai.Emitter) {
	s.loop.Run(ctx, prompt, emit)
}

// Close releases session resources such as MCP connections.
func (s *Session) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
