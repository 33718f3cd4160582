package google

import (
	"strings"

	ai "github.com/anicolao/gemini-cli"
)

// parseThought splits a raw thought summary into subject and description.
// The model frames the subject between the first pair of ** markers; text
// without that framing becomes a description with an empty subject.
func parseThought(raw string) ai.Thought {
	start := strings.Index(raw, "**")
	if start < 0 {
		return ai.Thought{Description: strings.TrimSpace(raw)}
	}
	rest := raw[start+2:]
	end := strings.Index(rest, "**")
	if end < 0 {
		return ai.Thought{Description: strings.TrimSpace(raw)}
	}

	subject := strings.TrimSpace(rest[:end])
	description := strings.TrimSpace(raw[:start] + rest[end+2:])
	return ai.Thought{Subject: subject, Description: description}
}
