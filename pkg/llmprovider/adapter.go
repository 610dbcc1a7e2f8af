package llmprovider

import (
	"context"
	"errors"

	"mini-ai-chat/pkg/groq"
	"mini-ai-chat/pkg/openai"
)

// --- OpenAI adapter ---

type openAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter wraps an OpenAI client as a Provider
func NewOpenAIAdapter(client openai.IOpenAI) Provider {
	return &openAIAdapter{client: client}
}

func (a *openAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.ChatCompletion(ctx, toOpenAIRequest(req))
	if err != nil {
		return nil, classifyError("openai", err, errors.Is(err, openai.ErrStreamInterrupted))
	}
	return a.response(resp.Text), nil
}

func (a *openAIAdapter) StreamContent(ctx context.Context, req *Request, onFragment OnFragment) (*Response, error) {
	resp, err := a.client.StreamChatCompletion(ctx, toOpenAIRequest(req), onFragment)
	if err != nil {
		return nil, classifyError("openai", err, errors.Is(err, openai.ErrStreamInterrupted))
	}
	return a.response(resp.Text), nil
}

func (a *openAIAdapter) Name() string  { return "openai" }
func (a *openAIAdapter) Model() string { return a.client.Model() }

func (a *openAIAdapter) response(text string) *Response {
	return &Response{Text: text, ProviderName: a.Name(), ModelName: a.client.Model()}
}

func toOpenAIRequest(req *Request) *openai.Request {
	out := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.Message, 0, len(req.Messages)),
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, openai.Message{Role: msg.Role, Content: msg.Content})
	}
	return out
}

// --- Groq adapter ---

type groqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter wraps a Groq client as a Provider
func NewGroqAdapter(client groq.IGroq) Provider {
	return &groqAdapter{client: client}
}

func (a *groqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.ChatCompletion(ctx, toGroqRequest(req))
	if err != nil {
		return nil, classifyError("groq", err, errors.Is(err, groq.ErrStreamInterrupted))
	}
	text, err := resp.AssistantText()
	if err != nil {
		return nil, &ProviderError{Provider: "groq", Err: err}
	}
	return a.response(text), nil
}

func (a *groqAdapter) StreamContent(ctx context.Context, req *Request, onFragment OnFragment) (*Response, error) {
	text, err := a.client.StreamChatCompletion(ctx, toGroqRequest(req), onFragment)
	if err != nil {
		return nil, classifyError("groq", err, errors.Is(err, groq.ErrStreamInterrupted))
	}
	return a.response(text), nil
}

func (a *groqAdapter) Name() string  { return "groq" }
func (a *groqAdapter) Model() string { return a.client.Model() }

func (a *groqAdapter) response(text string) *Response {
	return &Response{Text: text, ProviderName: a.Name(), ModelName: a.client.Model()}
}

func toGroqRequest(req *Request) *groq.Request {
	out := &groq.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]groq.Message, 0, len(req.Messages)),
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, groq.Message{Role: msg.Role, Content: msg.Content})
	}
	return out
}

// classifyError maps a client error onto the shared taxonomy: timeout
// and stream interruption keep their sentinel identity, everything else
// becomes a ProviderError.
func classifyError(provider string, err error, interrupted bool) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &ProviderError{Provider: provider, Err: ErrProviderTimeout}
	case interrupted:
		return &ProviderError{Provider: provider, Err: ErrStreamInterrupted}
	default:
		return &ProviderError{Provider: provider, Err: err}
	}
}
