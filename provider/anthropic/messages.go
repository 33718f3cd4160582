package anthropic

import (
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	ai "github.com/anicolao/gemini-cli"
)

// convertContents maps the neutral transcript to Anthropic messages. Tool
// responses ride in user messages as tool_result blocks; tool calls ride
// in assistant messages as tool_use blocks, matching the wire protocol.
func convertContents(contents []ai.Content) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(contents))

	for _, content := range contents {
		var blocks []anthropic.ContentBlockParamUnion
		for _, part := range content.Parts {
			switch {
			case part.FunctionCall != nil:
				blocks = append(blocks, anthropic.NewToolUseBlock(
					part.FunctionCall.ID,
					part.FunctionCall.Args,
					part.FunctionCall.Name,
				))
			case part.FunctionResponse != nil:
				isError := strings.HasPrefix(part.FunctionResponse.Result, "[ERROR]")
				blocks = append(blocks, anthropic.NewToolResultBlock(
					part.FunctionResponse.ID,
					part.FunctionResponse.Result,
					isError,
				))
			default:
				blocks = append(blocks, anthropic.NewTextBlock(part.Text))
			}
		}
		if len(blocks) == 0 {
			continue
		}

		if content.Role == ai.RoleModel {
			result = append(result, anthropic.NewAssistantMessage(blocks...))
		} else {
			result = append(result, anthropic.NewUserMessage(blocks...))
		}
	}

	return result
}
