package geminicli

// Role attributes conversation content to one side of the exchange.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Part is one element of conversation content: plain text, a function call
// from the model, or a function response returned to it. Exactly one field
// is set.
type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

// NewTextPart creates a text part.
func NewTextPart(text string) Part {
	return Part{Text: text}
}

// NewFunctionCallPart creates a part recording a model tool call.
func NewFunctionCallPart(call FunctionCall) Part {
	return Part{FunctionCall: &call}
}

// NewFunctionResponsePart creates a part carrying a tool result back to the
// model.
func NewFunctionResponsePart(resp FunctionResponse) Part {
	return Part{FunctionResponse: &resp}
}

// Content is a role-attributed group of parts, the unit of conversation
// history.
type Content struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// Thought is a reasoning summary surfaced by the producer mid-stream.
type Thought struct {
	Subject     string `json:"subject,omitempty"`
	Description string `json:"description,omitempty"`
}

// Finished describes the completion of one turn's stream.
type Finished struct {
	Reason string `json:"reason"`
	TurnID string `json:"turnId"`
}

// MessageKind tags one outward message variant.
type MessageKind string

const (
	MessageContent         MessageKind = "content"
	MessageThought         MessageKind = "thought"
	MessageToolCallRequest MessageKind = "tool_call_request"
	MessageToolResult      MessageKind = "tool_result"
	MessageError           MessageKind = "error"
	MessageInfo            MessageKind = "info"
	MessageFinished        MessageKind = "finished"
)

// Message is the sole observable output of the conversation core: a closed
// tagged variant delivered to the caller one at a time, in emission order.
type Message struct {
	Kind MessageKind `json:"kind"`

	// Text carries the payload for content, error and info messages.
	Text string `json:"text,omitempty"`

	// Thought is set for thought messages.
	Thought *Thought `json:"thought,omitempty"`

	// Call is set for tool_call_request and tool_result messages.
	Call *FunctionCall `json:"call,omitempty"`

	// Result is set for tool_result messages.
	Result *ToolResult `json:"result,omitempty"`

	// Finished is set for finished messages.
	Finished *Finished `json:"finished,omitempty"`
}

// Emitter receives outward messages, one call per message, in emission
// order. Implementations must not assume they are called from any
// particular goroutine.
type Emitter func(Message)

// ContentMessage wraps a chunk of model output text.
func ContentMessage(text string) Message {
	return Message{Kind: MessageContent, Text: text}
}

// ThoughtMessage wraps a reasoning summary.
func ThoughtMessage(t Thought) Message {
	return Message{Kind: MessageThought, Thought: &t}
}

// ToolCallRequestMessage announces a tool call observed mid-stream.
func ToolCallRequestMessage(call FunctionCall) Message {
	return Message{Kind: MessageToolCallRequest, Call: &call}
}

// ToolResultMessage reports the outcome of one executed tool call, paired
// with the request it answers.
func ToolResultMessage(call FunctionCall, result ToolResult) Message {
	return Message{Kind: MessageToolResult, Call: &call, Result: &result}
}

// ErrorMessage reports a failure.
func ErrorMessage(text string) Message {
	return Message{Kind: MessageError, Text: text}
}

// InfoMessage reports an advisory condition.
func InfoMessage(text string) Message {
	return Message{Kind: MessageInfo, Text: text}
}

// FinishedMessage reports stream completion for one turn.
func FinishedMessage(reason, turnID string) Message {
	return Message{Kind: MessageFinished, Finished: &Finished{Reason: reason, TurnID: turnID}}
}
