package agent

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/tool"
)

const (
	binaryOutputNotice = "[Command produced binary output, which was not returned.]"
	emptyOutputNotice  = "(command produced no output)"
)

// Scheduler executes the tool calls requested during a turn. Calls run
// strictly one at a time, in request order, and every call yields a
// result: failures are converted into result text rather than aborting
// the batch, so the model always sees one response per request.
type Scheduler struct {
	registry *tool.Registry
}

// NewScheduler creates a scheduler dispatching against the given registry.
func NewScheduler(registry *tool.Registry) *Scheduler {
	return &Scheduler{registry: registry}
}

// Execute runs each requested call sequentially and returns one result
// per call, in the same order. ctx is passed through to each invocation
// so in-flight tools observe cancellation.
func (s *Scheduler) Execute(ctx context.Context, calls []ai.FunctionCall) []ai.ToolResult {
	results := make([]ai.ToolResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, ai.ToolResult{
			CallID:  call.ID,
			Content: s.executeOne(ctx, call),
		})
	}
	return results
}

func (s *Scheduler) executeOne(ctx context.Context, call ai.FunctionCall) (content string) {
	// A panicking tool must not take down the conversation; it reads
	// as a failed call like any other.
	defer func() {
		if r := recover(); r != nil {
			content = fmt.Sprintf("[ERROR] %s failed: panic: %v", call.Name, r)
		}
	}()

	t, ok := s.registry.Get(call.Name)
	if !ok {
		return fmt.Sprintf("[ERROR] Tool %q not implemented.", call.Name)
	}

	inv, err := t.Build(call.Args)
	if err != nil {
		return fmt.Sprintf("[ERROR] %s failed: %s", call.Name, err.Error())
	}

	outcome, err := inv.Execute(ctx)
	if err != nil {
		return fmt.Sprintf("[ERROR] %s failed: %s", call.Name, err.Error())
	}
	if outcome == nil {
		return ""
	}

	if outcome.Shell != nil {
		return formatShellOutcome(outcome.Shell)
	}
	return normalizeContent(outcome.Content)
}

// formatShellOutcome renders a shell command's disposition as result
// text. The checks are ordered: a launch error outranks cancellation,
// which outranks a terminating signal, which outranks a nonzero exit
// code. Only a clean exit returns the bare output.
func formatShellOutcome(out *tool.ShellOutcome) string {
	output := out.Output
	if isBinary(out.RawOutput) {
		output = binaryOutputNotice
	} else {
		output = strings.TrimSpace(output)
	}

	switch {
	case out.Err != nil:
		return withOutput(fmt.Sprintf("[ERROR] %s", out.Err.Error()), output)
	case out.Aborted:
		return withOutput("[CANCELLED] Command was cancelled.", output)
	case out.Signal != "":
		return withOutput(fmt.Sprintf("[ERROR] Command terminated by signal: %s.", out.Signal), output)
	case out.ExitCode != 0:
		return withOutput(fmt.Sprintf("[ERROR] Command exited with code %d.", out.ExitCode), output)
	default:
		if output == "" {
			return emptyOutputNotice
		}
		return output
	}
}

func withOutput(header, output string) string {
	if output == "" {
		return header
	}
	return header + "\n" + output
}

// isBinary reports whether data looks like binary content, using the
// presence of a NUL byte in the first kilobyte as the heuristic.
func isBinary(data []byte) bool {
	if len(data) > 1024 {
		data = data[:1024]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// normalizeContent renders a tool's content payload as text. Strings pass
// through, string slices join with newlines, nil becomes empty, and
// anything else uses its default formatting.
func normalizeContent(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}
