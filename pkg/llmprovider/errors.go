package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed is returned when every model in the chain was
	// tried and none produced a response.
	ErrAllProvidersFailed = errors.New("all models in the fallback chain failed")

	// ErrNoProvidersConfigured is returned when the manager has an empty chain.
	ErrNoProvidersConfigured = errors.New("no models configured")

	// ErrInvalidRequest is returned for nil or empty generation requests.
	ErrInvalidRequest = errors.New("invalid generation request")
)

// ProviderError records which model a failure came from.
type ProviderError struct {
	Provider string
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
