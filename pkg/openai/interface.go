package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat-completions client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// ChatCompletion sends one batch completion request and returns the
	// finalized assistant text.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// StreamChatCompletion sends one streaming completion request,
	// forwarding each text fragment to onFragment in arrival order. The
	// returned response carries the concatenation of all fragments.
	StreamChatCompletion(ctx context.Context, req *Request, onFragment func(string) error) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
