// Package event defines the producer-side stream event union consumed by
// the conversation core. A producer yields a finite, ordered sequence of
// these events per turn; the stream classifier maps each one to an outward
// message.
package event

import (
	"encoding/json"

	ai "github.com/anicolao/gemini-cli"
)

// Type tags one streamed producer event.
type Type string

const (
	// Thought carries a reasoning summary.
	Thought Type = "thought"

	// Content carries a chunk of response text.
	Content Type = "content"

	// ToolCallRequest asks the consumer to execute a tool.
	ToolCallRequest Type = "tool_call_request"

	// ToolCallConfirmation acknowledges a pending tool call. Informational;
	// it has no outward effect.
	ToolCallConfirmation Type = "tool_call_confirmation"

	// ToolCallResponse echoes a delivered tool response. Informational; it
	// has no outward effect.
	ToolCallResponse Type = "tool_call_response"

	// Error reports a stream-level failure.
	Error Type = "error"

	// Finished marks the end of the turn's response with a completion
	// reason.
	Finished Type = "finished"

	// UserCancelled reports that the user aborted the request.
	UserCancelled Type = "user_cancelled"

	// ChatCompressed reports that the producer compressed older history.
	ChatCompressed Type = "chat_compressed"

	// LoopDetected reports that the producer detected a repetition loop.
	// Terminal for the conversation; the core does not retry.
	LoopDetected Type = "loop_detected"

	// MaxSessionTurns reports that the producer's own turn ceiling was
	// reached. Informational; the loop enforces its own ceiling.
	MaxSessionTurns Type = "max_session_turns"
)

// StreamError is the payload of an Error event.
type StreamError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// String returns a serialized representation of the payload.
func (e *StreamError) String() string {
	if e == nil {
		return `{"message":"unknown stream error"}`
	}
	data, err := json.Marshal(e)
	if err != nil {
		return e.Message
	}
	return string(data)
}

// Event is one element of the finite, ordered, non-restartable sequence a
// producer yields for a single turn. The Type tag selects which payload
// fields are meaningful.
type Event struct {
	Type Type

	// Content holds the text for Content events.
	Content string

	// Thought holds the parsed summary for Thought events.
	Thought ai.Thought

	// Call holds the request for ToolCallRequest events.
	Call *ai.FunctionCall

	// Err holds the failure for Error events.
	Err *StreamError

	// Reason holds the completion reason for Finished events.
	Reason string

	// Info holds auxiliary text for ChatCompressed events.
	Info string
}

// NewChannel creates the buffered channel a producer streams events on.
// The classifier always drains the channel until it is closed, so plain
// sends never leak the producing goroutine.
func NewChannel() chan Event {
	return make(chan Event, 16)
}
