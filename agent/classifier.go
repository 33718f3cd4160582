package agent

import (
	"fmt"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/event"
)

// classifyStream consumes one turn's event stream, forwarding each event as
// an outward message and collecting the tool calls requested along the way.
// Emission order mirrors consumption order, and the function returns only
// once the stream is exhausted. Nothing is executed here; the scheduler
// runs the collected requests afterwards.
func classifyStream(turnID string, stream <-chan event.Event, emit ai.Emitter) []ai.FunctionCall {
	var requests []ai.FunctionCall

	for ev := range stream {
		switch ev.Type {
		case event.Thought:
			emit(ai.ThoughtMessage(ev.Thought))

		case event.Content:
			emit(ai.ContentMessage(ev.Content))

		case event.ToolCallRequest:
			if ev.Call == nil {
				emit(ai.ErrorMessage("tool_call_request event carried no call"))
				continue
			}
			requests = append(requests, *ev.Call)
			emit(ai.ToolCallRequestMessage(*ev.Call))

		case event.Error:
			msg := "unknown stream error"
			if ev.Err != nil {
				msg = ev.Err.String()
			}
			emit(ai.ErrorMessage(msg))

		case event.Finished:
			emit(ai.FinishedMessage(ev.Reason, turnID))

		case event.UserCancelled:
			emit(ai.InfoMessage("request cancelled by user"))

		case event.ChatCompressed:
			emit(ai.InfoMessage(compressedNotice(ev.Info)))

		case event.LoopDetected:
			emit(ai.ErrorMessage("response loop detected, stopping this conversation"))

		case event.ToolCallConfirmation, event.ToolCallResponse, event.MaxSessionTurns:
			// Informational passthrough, no outward effect.

		default:
			// A tag outside the known set means the producer and this
			// consumer disagree about the contract. Surface it rather
			// than dropping the event.
			emit(ai.ErrorMessage(fmt.Sprintf("unhandled stream event type %q", ev.Type)))
		}
	}

	return requests
}

func compressedNotice(info string) string {
	if info == "" {
		return "chat history compressed"
	}
	return "chat history compressed: " + info
}
