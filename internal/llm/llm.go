package llm

import (
	"context"
	"fmt"
)

// Message is a role-tagged chat message.
type Message struct {
	Role    string
	Content string
}

// Roles used across providers.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Client abstracts LLM providers. Implementations request a single JSON
// object as output and make exactly one attempt; retry policy belongs to
// callers (and none is performed in this service).
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// UpstreamError reports a provider transport or API failure. StatusCode is
// the provider's HTTP status, or 0 when the request never got a response.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm upstream error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm upstream error: %s", e.Message)
}

// Unconfigured is the client used when no API credential is present at
// startup. Requests reach it and fail here rather than at boot.
type Unconfigured struct{}

// Complete always reports a missing credential.
func (Unconfigured) Complete(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "", &UpstreamError{Message: "LLM credential is not configured"}
}

var _ Client = Unconfigured{}
