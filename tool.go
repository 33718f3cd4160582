package geminicli

// FunctionCall is a request from the model to invoke a named tool. It is
// emitted mid-stream, is scoped to a single turn, and is consumed exactly
// once by the scheduler.
type FunctionCall struct {
	// ID is unique within a turn and correlates the eventual result.
	ID string `json:"id"`
	// Name identifies the tool to invoke.
	Name string `json:"name"`
	// Args maps parameter names to values.
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the text outcome of executing one FunctionCall.
type ToolResult struct {
	// CallID matches the ID of the corresponding FunctionCall.
	CallID string `json:"callId"`
	// Content is the result text returned to the model.
	Content string `json:"content"`
}

// FunctionResponse is the payload carried back to the producer for one
// executed tool call, forming part of the next turn's input.
type FunctionResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Result string `json:"result"`
}
