package google

import (
	"errors"

	"google.golang.org/genai"

	ai "github.com/anicolao/gemini-cli"
)

// wrapError categorizes a GenAI failure by its HTTP status code. Errors
// that are not API errors (network failures and the like) pass through
// unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	code := apiErr.Code
	msg := err.Error()

	switch categorizeStatusCode(code) {
	case ai.ErrorTransient:
		return ai.NewTransientError(msg, code, err)
	case ai.ErrorUserInput:
		return ai.NewUserInputError(msg, code, err)
	default:
		return ai.NewPermanentError(msg, code, err)
	}
}

// categorizeStatusCode determines the error category from an HTTP status code.
func categorizeStatusCode(code int) ai.ErrorCategory {
	switch {
	case code == 429:
		return ai.ErrorTransient // Rate limited
	case code >= 500 && code < 600:
		return ai.ErrorTransient // Server error
	case code == 401 || code == 403:
		return ai.ErrorPermanent // Authentication/authorization
	case code == 400 || code == 404 || code == 422:
		return ai.ErrorUserInput // Bad request or not found
	default:
		return ai.ErrorPermanent
	}
}

// statusOf extracts the HTTP status code from a categorized error, zero
// when the error carries none.
func statusOf(err error) int {
	var ce *ai.Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return 0
}
