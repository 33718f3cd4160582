package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ai "github.com/anicolao/gemini-cli"
)

// Loop drives a conversation: it sends input to the producer, classifies
// the resulting event stream into outward messages, executes any requested
// tool calls, and feeds the results back as the next turn's input until a
// turn completes without tool requests.
type Loop struct {
	producer  Producer
	scheduler *Scheduler
	sessionID string
	opts      Options
}

// NewLoop creates a conversation loop for one session. sessionID scopes
// the turn ids minted for each round trip.
func NewLoop(sessionID string, producer Producer, scheduler *Scheduler, opts ...Option) *Loop {
	return &Loop{
		producer:  producer,
		scheduler: scheduler,
		sessionID: sessionID,
		opts:      ApplyOptions(opts...),
	}
}

// Run processes one user prompt to completion, emitting outward messages
// as the conversation unfolds. It returns when a turn produces no tool
// requests, the turn ceiling is reached, the producer fails, or ctx is
// cancelled mid-stream. Run never panics; a panic anywhere in the loop
// surfaces as an error message.
func (l *Loop) Run(ctx context.Context, prompt string, emit ai.Emitter) {
	defer func() {
		if r := recover(); r != nil {
			emit(ai.ErrorMessage(fmt.Sprintf("conversation loop panicked: %v", r)))
		}
	}()

	input := []ai.Part{ai.NewTextPart(prompt)}

	for turn := 0; ; turn++ {
		if turn >= l.opts.MaxTurns {
			emit(ai.ErrorMessage(fmt.Sprintf("conversation exceeded %d turns, stopping", l.opts.MaxTurns)))
			return
		}

		// Turn ids are session-scoped; an 8-character uuid prefix is
		// plenty within one session and keeps log lines readable.
		turnID := l.sessionID + "#" + uuid.NewString()[:8]

		stream, err := l.producer.SendStream(ctx, input, turnID)
		if err != nil {
			emit(ai.ErrorMessage(fmt.Sprintf("sending to model failed: %v", err)))
			return
		}

		requests := classifyStream(turnID, stream, emit)
		if len(requests) == 0 {
			return
		}

		results := l.scheduler.Execute(ctx, requests)

		// Producers retain the slice they were handed in their history,
		// so the next turn's parts go into a fresh allocation.
		input = make([]ai.Part, 0, len(results))
		for _, result := range results {
			call, ok := findRequest(requests, result.CallID)
			if !ok {
				emit(ai.ErrorMessage(fmt.Sprintf("tool result for unknown call id %q, stopping", result.CallID)))
				return
			}
			emit(ai.ToolResultMessage(call, result))
			input = append(input, ai.NewFunctionResponsePart(ai.FunctionResponse{
				ID:     call.ID,
				Name:   call.Name,
				Result: result.Content,
			}))
		}
	}
}

// findRequest locates the request a result correlates with by call id.
func findRequest(requests []ai.FunctionCall, callID string) (ai.FunctionCall, bool) {
	for _, req := range requests {
		if req.ID == callID {
			return req, true
		}
	}
	return ai.FunctionCall{}, false
}
