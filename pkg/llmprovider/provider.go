package llmprovider

import "context"

// OnFragment receives one streamed reply fragment in arrival order.
// Returning an error aborts the stream.
type OnFragment func(fragment string) error

// Provider defines the interface for chat-completion providers
type Provider interface {
	// GenerateContent sends one batch completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// StreamContent sends one streaming completion request. The returned
	// response carries the finalized text, the concatenation of every
	// fragment delivered to onFragment.
	StreamContent(ctx context.Context, req *Request, onFragment OnFragment) (*Response, error)

	// Name returns the provider name (e.g., "openai", "groq")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized completion request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents one conversation message
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
}
