package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/anicolao/gemini-cli/tool"
)

func convertDeclarations(decls []tool.Declaration) []anthropic.ToolUnionParam {
	if len(decls) == 0 {
		return nil
	}
	result := make([]anthropic.ToolUnionParam, len(decls))
	for i, d := range decls {
		var schema map[string]any
		if len(d.Parameters) > 0 {
			// Declarations carry schemas produced by MustSchemaFor,
			// so a decode failure here means a broken registration.
			_ = json.Unmarshal(d.Parameters, &schema)
		}

		var required []string
		if reqVal, ok := schema["required"].([]any); ok {
			for _, r := range reqVal {
				if s, ok := r.(string); ok {
					required = append(required, s)
				}
			}
		}

		toolParam := anthropic.ToolParam{
			Name:        d.Name,
			Description: anthropic.String(d.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: schema["properties"],
				Required:   required,
			},
		}

		result[i] = anthropic.ToolUnionParam{OfTool: &toolParam}
	}
	return result
}
