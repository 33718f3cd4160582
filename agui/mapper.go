// Package agui maps outward conversation messages to AG-UI protocol events.
//
// AG-UI (Agent-User Interface) is an open, event-based protocol that
// standardizes how AI agents connect to user-facing applications. This
// package lets an AG-UI frontend observe a conversation by converting each
// outward message into the protocol's lifecycle events.
//
// The package does NOT provide HTTP handlers or transport implementations;
// callers write the produced events with the AG-UI SDK's SSE writer or
// their preferred transport.
//
// # Usage
//
//	mapper := agui.NewMapper("", "")
//	writeEvent(mapper.RunStarted())
//
//	loop.Run(ctx, prompt, func(m ai.Message) {
//	    for _, ev := range mapper.MapMessage(m) {
//	        writeEvent(ev)
//	    }
//	})
//
//	writeEvent(mapper.RunFinished())
//
// A Mapper is NOT safe for concurrent use; create one per run.
package agui

import (
	"encoding/json"

	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	ai "github.com/anicolao/gemini-cli"
)

// RoleAssistant is the AG-UI role attached to model text messages.
const RoleAssistant = "assistant"

// Mapper converts outward messages to AG-UI events. It tracks the open
// text message so consecutive content chunks share one Start-Content-End
// sequence.
type Mapper struct {
	threadID  string
	runID     string
	messageID string
}

// NewMapper creates a Mapper for a single run. Empty ids are generated.
func NewMapper(threadID, runID string) *Mapper {
	if threadID == "" {
		threadID = events.GenerateThreadID()
	}
	if runID == "" {
		runID = events.GenerateRunID()
	}
	return &Mapper{threadID: threadID, runID: runID}
}

// ThreadID returns the thread ID for this mapper.
func (m *Mapper) ThreadID() string {
	return m.threadID
}

// RunID returns the run ID for this mapper.
func (m *Mapper) RunID() string {
	return m.runID
}

// RunStarted returns a RUN_STARTED event.
func (m *Mapper) RunStarted() events.Event {
	return events.NewRunStartedEvent(m.threadID, m.runID)
}

// RunFinished returns a RUN_FINISHED event.
func (m *Mapper) RunFinished() events.Event {
	return events.NewRunFinishedEvent(m.threadID, m.runID)
}

// RunError returns a RUN_ERROR event.
func (m *Mapper) RunError(msg string) events.Event {
	if msg == "" {
		msg = "unknown error"
	}
	return events.NewRunErrorEvent(msg)
}

// MapMessage converts one outward message to its AG-UI event sequence.
// Messages with no protocol equivalent (thoughts, info) map to nil.
func (m *Mapper) MapMessage(msg ai.Message) []events.Event {
	switch msg.Kind {
	case ai.MessageContent:
		var out []events.Event
		if m.messageID == "" {
			m.messageID = events.GenerateMessageID()
			out = append(out, events.NewTextMessageStartEvent(
				m.messageID,
				events.WithRole(RoleAssistant),
			))
		}
		return append(out, events.NewTextMessageContentEvent(m.messageID, msg.Text))

	case ai.MessageToolCallRequest:
		if msg.Call == nil {
			return nil
		}
		out := m.closeOpenMessage()
		args, _ := json.Marshal(msg.Call.Args)
		return append(out,
			events.NewToolCallStartEvent(msg.Call.ID, msg.Call.Name),
			events.NewToolCallArgsEvent(msg.Call.ID, string(args)),
			events.NewToolCallEndEvent(msg.Call.ID),
		)

	case ai.MessageToolResult:
		if msg.Result == nil {
			return nil
		}
		return []events.Event{
			events.NewToolCallResultEvent(events.GenerateMessageID(), msg.Result.CallID, msg.Result.Content),
		}

	case ai.MessageError:
		return append(m.closeOpenMessage(), m.RunError(msg.Text))

	case ai.MessageFinished:
		out := m.closeOpenMessage()
		if msg.Finished != nil {
			out = append(out, events.NewStepFinishedEvent(msg.Finished.TurnID))
		}
		return out

	default:
		return nil
	}
}

func (m *Mapper) closeOpenMessage() []events.Event {
	if m.messageID == "" {
		return nil
	}
	ev := events.NewTextMessageEndEvent(m.messageID)
	m.messageID = ""
	return []events.Event{ev}
}
