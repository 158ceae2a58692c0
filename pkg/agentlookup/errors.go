package agentlookup

import (
	"errors"
	"fmt"
)

var (
	ErrAgentNotFound      = errors.New("Agent not found")
	ErrIdentifierRequired = errors.New("agent identifier is required")
	ErrQueryRequired      = errors.New("search query is required")
)

// APIError reports a non-2xx answer from the search endpoint. Its message
// is part of the tool output contract.
type APIError struct {
	Status int
	Cause  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Registry Broker API error: %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
