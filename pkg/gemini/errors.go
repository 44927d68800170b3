package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"

	"google.golang.org/genai"
)

var (
	// ErrMissingAPIKey indicates the client was configured without a key.
	ErrMissingAPIKey = errors.New("gemini: api key is required")

	// ErrMissingModel indicates a request without a target model.
	ErrMissingModel = errors.New("gemini: request model is required")

	// ErrEmptyResponse indicates the API answered without usable content.
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// IsTransient reports whether err is a backend failure worth retrying
// against the next model in the chain. This is the documented trigger
// condition for the fallback loop: rate limits, server-side failures,
// timeouts, and empty responses advance the chain; authentication and
// malformed-request failures abort it.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusForbidden,
			http.StatusNotFound:
			return false
		}
		return true
	}

	if errors.Is(err, ErrEmptyResponse) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// The backend is not a reliable grammar of failures; unclassified
	// errors are treated as transient so the chain gets a chance.
	return true
}
