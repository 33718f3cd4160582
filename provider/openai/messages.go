package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"

	ai "github.com/anicolao/gemini-cli"
)

// convertContents maps the neutral transcript to chat completion messages.
// Tool responses become tool-role messages keyed by call id; model turns
// with tool calls become assistant messages carrying the call list.
func convertContents(contents []ai.Content) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion

	for _, content := range contents {
		if content.Role == ai.RoleModel {
			result = append(result, convertModelContent(content))
			continue
		}

		for _, part := range content.Parts {
			if part.FunctionResponse != nil {
				result = append(result, openai.ToolMessage(part.FunctionResponse.Result, part.FunctionResponse.ID))
				continue
			}
			result = append(result, openai.UserMessage(part.Text))
		}
	}

	return result
}

func convertModelContent(content ai.Content) openai.ChatCompletionMessageParamUnion {
	var text string
	var toolCalls []openai.ChatCompletionMessageToolCallParam

	for _, part := range content.Parts {
		switch {
		case part.FunctionCall != nil:
			args, _ := json.Marshal(part.FunctionCall.Args)
			toolCalls = append(toolCalls, openai.ChatCompletionMessageToolCallParam{
				ID: part.FunctionCall.ID,
				Function: openai.ChatCompletionMessageToolCallFunctionParam{
					Name:      part.FunctionCall.Name,
					Arguments: string(args),
				},
			})
		default:
			text += part.Text
		}
	}

	if len(toolCalls) == 0 {
		return openai.AssistantMessage(text)
	}

	assistantMsg := openai.ChatCompletionAssistantMessageParam{
		ToolCalls: toolCalls,
	}
	if text != "" {
		assistantMsg.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
			OfString: openai.String(text),
		}
	}
	return openai.ChatCompletionMessageParamUnion{OfAssistant: &assistantMsg}
}
