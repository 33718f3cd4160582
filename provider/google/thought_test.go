package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseThought(t *testing.T) {
	t.Run("extracts subject between markers", func(t *testing.T) {
		got := parseThought("**Considering the request**\nI should list the files first.")
		assert.Equal(t, "Considering the request", got.Subject)
		assert.Equal(t, "I should list the files first.", got.Description)
	})

	t.Run("no markers means description only", func(t *testing.T) {
		got := parseThought("just some reasoning text")
		assert.Empty(t, got.Subject)
		assert.Equal(t, "just some reasoning text", got.Description)
	})

	t.Run("unclosed marker is treated as plain text", func(t *testing.T) {
		got := parseThought("**dangling subject")
		assert.Empty(t, got.Subject)
		assert.Equal(t, "**dangling subject", got.Description)
	})

	t.Run("text before the subject is kept in the description", func(t *testing.T) {
		got := parseThought("prefix **Subject** suffix")
		assert.Equal(t, "Subject", got.Subject)
		assert.Equal(t, "prefix  suffix", got.Description)
	})

	t.Run("only the first pair is the subject", func(t *testing.T) {
		got := parseThought("**First** and **bold** text")
		assert.Equal(t, "First", got.Subject)
		assert.Equal(t, "and **bold** text", got.Description)
	})
}
