package tool

import (
	"context"
	"encoding/json"
)

// Declaration describes a tool to the model: its name, what it does, and
// the JSON schema of its parameters.
type Declaration struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// Tool is a callable capability exposed to the model. Build validates the
// raw arguments from a function call and returns an Invocation ready to
// run; it must not perform any side effects itself.
type Tool interface {
	Declaration() Declaration
	Build(args map[string]any) (Invocation, error)
}

// Invocation is a single validated tool call. Execute performs the call
// and honors ctx cancellation for long-running work.
type Invocation interface {
	Execute(ctx context.Context) (*Outcome, error)
}

// Outcome is the result of a tool invocation.
//
// Content holds the payload returned to the model. It may be a string, a
// []string (joined with newlines), or any other value rendered with its
// default formatting. Shell is set only by the shell tool and carries the
// command's exit disposition, which determines how the output is framed.
type Outcome struct {
	Content any
	Shell   *ShellOutcome
}

// ShellOutcome captures how a shell command terminated alongside its
// combined output. At most one of Err, Aborted, Signal, or a nonzero
// ExitCode is meaningful; they are inspected in that order.
type ShellOutcome struct {
	// Output is the combined stdout and stderr as text.
	Output string
	// RawOutput is the unmodified combined output, used to detect
	// binary content.
	RawOutput []byte
	// Err is set when the command could not be run at all.
	Err error
	// Aborted is true when the command was cancelled via context.
	Aborted bool
	// Signal names the terminating signal, if any.
	Signal string
	// ExitCode is the command's exit status. Zero means success.
	ExitCode int
}

// invocationFunc adapts a function to the Invocation interface.
type invocationFunc func(ctx context.Context) (*Outcome, error)

func (f invocationFunc) Execute(ctx context.Context) (*Outcome, error) {
	return f(ctx)
}
