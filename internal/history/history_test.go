package history

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/anicolao/gemini-cli"
)

func userText(text string) ai.Content {
	return ai.Content{Role: ai.RoleUser, Parts: []ai.Part{ai.NewTextPart(text)}}
}

func TestStore(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		s := New()
		s.Append(userText("one"))
		s.Append(userText("two"), userText("three"))

		snap := s.Snapshot()
		require.Len(t, snap, 3)
		assert.Equal(t, "one", snap[0].Parts[0].Text)
		assert.Equal(t, "three", snap[2].Parts[0].Text)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		s := New()
		s.Append(userText("original"))

		snap := s.Snapshot()
		snap[0] = userText("mutated")

		assert.Equal(t, "original", s.Snapshot()[0].Parts[0].Text)
	})

	t.Run("NewFrom seeds without aliasing", func(t *testing.T) {
		seed := []ai.Content{userText("seed")}
		s := NewFrom(seed)
		seed[0] = userText("changed")

		assert.Equal(t, "seed", s.Snapshot()[0].Parts[0].Text)
	})

	t.Run("clear empties the transcript", func(t *testing.T) {
		s := NewFrom([]ai.Content{userText("a"), userText("b")})
		s.Clear()
		assert.Equal(t, 0, s.Len())
	})

	t.Run("concurrent appends are safe", func(t *testing.T) {
		s := New()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					s.Append(userText("x"))
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 160, s.Len())
	})
}
