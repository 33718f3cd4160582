// Package openai provides an event producer on the OpenAI SDK, mirroring
// the streaming contract of provider/google for GPT models.
package openai

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/event"
	"github.com/anicolao/gemini-cli/internal/history"
	"github.com/anicolao/gemini-cli/tool"
)

const DefaultModel = "gpt-4o"

// Client wraps the OpenAI SDK as an event producer.
type Client struct {
	client  *openai.Client
	model   string
	decls   []tool.Declaration
	history *history.Store
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
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

// ClientOption configures the OpenAI client.
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
// completion, and returns a channel of producer events. Tool call deltas
// are accumulated and surface as complete requests once the stream ends.
func (c *Client) SendStream(ctx context.Context, parts []ai.Part, turnID string) (<-chan event.Event, error) {
	if len(parts) == 0 {
		return nil, errors.New("openai: empty input")
	}

	c.history.Append(ai.Content{Role: ai.RoleUser, Parts: parts})

	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: convertContents(c.history.Snapshot()),
	}
	if len(c.decls) > 0 {
		params.Tools = convertDeclarations(c.decls)
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	ch := event.NewChannel()

	go func() {
		defer close(ch)
		var acc openai.ChatCompletionAccumulator

		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)

			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				ch <- event.Event{Type: event.Content, Content: chunk.Choices[0].Delta.Content}
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
		if len(acc.Choices) == 0 {
			ch <- event.Event{Type: event.Error, Err: &event.StreamError{Message: "openai: empty completion"}}
			return
		}

		choice := acc.Choices[0]
		var modelParts []ai.Part
		if choice.Message.Content != "" {
			modelParts = append(modelParts, ai.NewTextPart(choice.Message.Content))
		}

		for _, tc := range choice.Message.ToolCalls {
			var args map[string]any
			if tc.Function.Arguments != "" {
				_ = json.Unmarshal([]byte(tc.Function.Arguments), &args)
			}
			call := ai.FunctionCall{ID: tc.ID, Name: tc.Function.Name, Args: args}
			modelParts = append(modelParts, ai.NewFunctionCallPart(call))
			ch <- event.Event{Type: event.ToolCallRequest, Call: &call}
		}

		if len(modelParts) > 0 {
			c.history.Append(ai.Content{Role: ai.RoleModel, Parts: modelParts})
		}

		ch <- event.Event{Type: event.Finished, Reason: string(choice.FinishReason)}
	}()

	return ch, nil
}

// History returns a copy of the conversation transcript so far.
func (c *Client) History() []ai.Content {
	return c.history.Snapshot()
}

func convertDeclarations(decls []tool.Declaration) []openai.ChatCompletionToolParam {
	if len(decls) == 0 {
		return nil
	}
	result := make([]openai.ChatCompletionToolParam, len(decls))
	for i, d := range decls {
		var params shared.FunctionParameters
		if len(d.Parameters) > 0 {
			_ = json.Unmarshal(d.Parameters, &params)
		}
		result[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        d.Name,
				Description: openai.String(d.Description),
				Parameters:  params,
			},
		}
	}
	return result
}
