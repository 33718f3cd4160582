package google

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/event"
	"github.com/anicolao/gemini-cli/internal/history"
	"github.com/anicolao/gemini-cli/tool"
)

const DefaultModel = "gemini-2.5-flash"

// Client wraps the Google GenAI SDK as an event producer.
type Client struct {
	client  *genai.Client
	model   string
	decls   []tool.Declaration
	history *history.Store
}

// New creates a new Gemini client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c := &Client{
		client:  client,
		model:   DefaultModel,
		history: history.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClientOption configures the Gemini client.
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

// SendStream appends the input to the conversation history, sends the full
// transcript to the model, and returns a channel of producer events. The
// channel is closed once the model response ends; cancelling ctx ends the
// stream with a user_cancelled event.
func (c *Client) SendStream(ctx context.Context, parts []ai.Part, turnID string) (<-chan event.Event, error) {
	if len(parts) == 0 {
		return nil, errors.New("google: empty input")
	}

	c.history.Append(ai.Content{Role: ai.RoleUser, Parts: parts})
	contents := convertContents(c.history.Snapshot())

	config := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{IncludeThoughts: true},
	}
	if len(c.decls) > 0 {
		config.Tools = convertDeclarations(c.decls)
	}

	ch := event.NewChannel()

	go func() {
		defer close(ch)

		var modelParts []ai.Part
		var finishReason string
		callIndex := 0

		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, contents, config) {
			if err != nil {
				if ctx.Err() != nil {
					ch <- event.Event{Type: event.UserCancelled}
					return
				}
				wrapped := wrapError(err)
				ch <- event.Event{Type: event.Error, Err: &event.StreamError{
					Message: wrapped.Error(),
					Status:  statusOf(wrapped),
				}}
				return
			}

			if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
				continue
			}
			candidate := resp.Candidates[0]

			for _, part := range candidate.Content.Parts {
				switch {
				case part.Thought && part.Text != "":
					ch <- event.Event{Type: event.Thought, Thought: parseThought(part.Text)}

				case part.Text != "":
					modelParts = append(modelParts, ai.NewTextPart(part.Text))
					ch <- event.Event{Type: event.Content, Content: part.Text}

				case part.FunctionCall != nil:
					call := ai.FunctionCall{
						ID:   part.FunctionCall.ID,
						Name: part.FunctionCall.Name,
						Args: part.FunctionCall.Args,
					}
					// The API rarely supplies ids, so mint stable ones
					// from the part's position in the response.
					if call.ID == "" {
						call.ID = fmt.Sprintf("call_%d_%s", callIndex, call.Name)
					}
					callIndex++
					modelParts = append(modelParts, ai.NewFunctionCallPart(call))
					ch <- event.Event{Type: event.ToolCallRequest, Call: &call}
				}
			}

			if candidate.FinishReason != "" {
				finishReason = string(candidate.FinishReason)
			}
		}

		if len(modelParts) > 0 {
			c.history.Append(ai.Content{Role: ai.RoleModel, Parts: modelParts})
		}

		if ctx.Err() != nil {
			ch <- event.Event{Type: event.UserCancelled}
			return
		}
		if finishReason == "" {
			finishReason = "STOP"
		}
		ch <- event.Event{Type: event.Finished, Reason: finishReason}
	}()

	return ch, nil
}

// History returns a copy of the conversation transcript so far.
func (c *Client) History() []ai.Content {
	return c.history.Snapshot()
}

func convertContents(contents []ai.Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, content := range contents {
		gc := &genai.Content{Role: string(content.Role)}
		for _, part := range content.Parts {
			switch {
			case part.FunctionCall != nil:
				gc.Parts = append(gc.Parts, &genai.Part{FunctionCall: &genai.FunctionCall{
					ID:   part.FunctionCall.ID,
					Name: part.FunctionCall.Name,
					Args: part.FunctionCall.Args,
				}})
			case part.FunctionResponse != nil:
				gc.Parts = append(gc.Parts, &genai.Part{FunctionResponse: &genai.FunctionResponse{
					ID:   part.FunctionResponse.ID,
					Name: part.FunctionResponse.Name,
					Response: map[string]any{
						"output": part.FunctionResponse.Result,
					},
				}})
			default:
				gc.Parts = append(gc.Parts, &genai.Part{Text: part.Text})
			}
		}
		out = append(out, gc)
	}
	return out
}
