// Package anthropic provides a Claude event producer on the Anthropic SDK.
// It implements the same streaming contract as provider/google: thinking
// blocks surface as thoughts, tool_use blocks as tool call requests, and
// the stop reason as the finish marker.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/event"
	"github.com/anicolao/gemini-cli/internal/history"
	"github.com/anicolao/gemini-cli/tool"
)

const DefaultModel = "claude-sonnet-4-5"

const defaultMaxTokens = 8192

// Client wraps the Anthropic SDK as an event producer.
type Client struct {
	client  *anthropic.Client
	model   string
	decls   []tool.Declaration
	history *history.Store
}

// New creates a new Claude client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client:  &client,
		model:   DefaultModel,
		history: history.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Claude client.
type ClientOption func(*Client)

// WithModel sets the model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithTools advertises tool declarations to the model.
func WithTools(decls []tool.Declaration) ClientOption {
	return func(c *Client) {
		c.decls = decls
	}
}

// SendStream appends the input to the conversation history, streams the
// model response, and returns a channel of producer events.
func (c *Client) SendStream(ctx context.Context, parts []ai.Part, turnID string) (<-chan event.Event, error) {
	if len(parts) == 0 {
		return nil, errors.New("anthropic: empty input")
	}

	c.history.Append(ai.Content{Role: ai.RoleUser, Parts: parts})

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: defaultMaxTokens,
		Messages:  convertContents(c.history.Snapshot()),
	}
	if len(c.decls) > 0 {
		params.Tools = convertDeclarations(c.decls)
	}

	stream := c.client.Messages.NewStreaming(ctx, params)
	ch := event.NewChannel()

	go func() {
		defer close(ch)
		var acc anthropic.Message

		for stream.Next() {
			ev := stream.Current()
			if err := acc.Accumulate(ev); err != nil {
				ch <- event.Event{Type: event.Error, Err: &event.StreamError{Message: err.Error()}}
				return
			}

			if ev.Type == "content_block_delta" {
				delta := ev.AsContentBlockDelta()
				if textDelta := delta.Delta.AsTextDelta(); textDelta.Type == "text_delta" {
					ch <- event.Event{Type: event.Content, Content: textDelta.Text}
				}
			}
		}

		if err := stream.Err(); err != nil {
			if ctx.Err() != nil {
				ch <- event.Event{Type: event.UserCancelled}
				return
			}
			ch <- event.Event{Type: event.Error, Err: &event.StreamError{Message: err.Error()}}
			return
		}

		// Thinking and tool_use blocks only complete once the stream
		// ends, so they are read from the accumulated message.
		var modelParts []ai.Part
		for _, block := range acc.Content {
			switch block.Type {
			case "thinking":
				ch <- event.Event{Type: event.Thought, Thought: ai.Thought{Description: block.Thinking}}
			case "text":
				modelParts = append(modelParts, ai.NewTextPart(block.Text))
			case "tool_use":
				var args map[string]any
				if len(block.Input) > 0 {
					_ = json.Unmarshal(block.Input, &args)
				}
				call := ai.FunctionCall{ID: block.ID, Name: block.Name, Args: args}
				modelParts = append(modelParts, ai.NewFunctionCallPart(call))
				ch <- event.Event{Type: event.ToolCallRequest, Call: &call}
			}
		}

		if len(modelParts) > 0 {
			c.history.Append(ai.Content{Role: ai.RoleModel, Parts: modelParts})
		}

		ch <- event.Event{Type: event.Finished, Reason: string(acc.StopReason)}
	}()

	return ch, nil
}

// History returns a copy of the conversation transcript so far.
func (c *Client) History() []ai.Content {
	return c.history.Snapshot()
}
