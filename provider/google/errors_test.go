package google

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ai "github.com/anicolao/gemini-cli"
)

func TestCategorizeStatusCode(t *testing.T) {
	assert.Equal(t, ai.ErrorTransient, categorizeStatusCode(429))
	assert.Equal(t, ai.ErrorTransient, categorizeStatusCode(503))
	assert.Equal(t, ai.ErrorPermanent, categorizeStatusCode(401))
	assert.Equal(t, ai.ErrorPermanent, categorizeStatusCode(403))
	assert.Equal(t, ai.ErrorUserInput, categorizeStatusCode(400))
	assert.Equal(t, ai.ErrorUserInput, categorizeStatusCode(404))
	assert.Equal(t, ai.ErrorPermanent, categorizeStatusCode(418))
}

func TestStatusOf(t *testing.T) {
	err := ai.NewTransientError("rate limited", 429, nil)
	assert.Equal(t, 429, statusOf(err))
	assert.Equal(t, 0, statusOf(assert.AnError))
}
