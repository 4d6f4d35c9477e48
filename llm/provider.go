// Package llm is the boundary to external language-model services.
package llm

import "context"

// Provider defines the interface for LLM providers.
// Failures are returned as *Error so callers can tell them apart.
type Provider interface {
	Chat(ctx context.Context, req Request) (*Response, error)
}

// Request is a provider-agnostic chat request
type Request struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message is a provider-agnostic message
type Message struct {
	Role    Role
	Content string
}

// Role is the message role
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response is a provider-agnostic response
type Response struct {
	Content string
	Usage   Usage
}

// Usage contains token usage information
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, req Request) (*Response, error)

func (f ProviderFunc) Chat(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
