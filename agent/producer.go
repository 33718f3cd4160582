package agent

import (
	"context"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/event"
)

// Producer is the external streaming response source for a conversation.
// The providers under provider/ implement it.
type Producer interface {
	// SendStream submits the next turn's input and returns the finite
	// event sequence for that turn. The channel is closed once the stream
	// is exhausted; it is never restarted. ctx carries the turn's
	// cancellation.
	SendStream(ctx context.Context, parts []ai.Part, turnID string) (<-chan event.Event, error)
}
