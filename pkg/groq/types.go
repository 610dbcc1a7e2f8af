package groq

import (
	"errors"
	"fmt"
	"time"
)

// Config holds Groq client configuration
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Request is the Groq chat-completions request body. Groq speaks the
// OpenAI wire format directly.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
}

// Message is one conversation message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is the Groq chat-completions response body
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// Choice is one completion choice
type Choice struct {
	Index        int      `json:"index"`
	Message      *Message `json:"message"`
	Text         *string  `json:"text"`
	FinishReason string   `json:"finish_reason"`
}

// AssistantText extracts the assistant text from the first choice,
// accepting both known nesting shapes.
func (r *Response) AssistantText() (string, error) {
	if len(r.Choices) == 0 {
		return "", errors.New("groq: response has no choices")
	}
	choice := r.Choices[0]
	switch {
	case choice.Message != nil:
		return choice.Message.Content, nil
	case choice.Text != nil:
		return *choice.Text, nil
	default:
		return "", errors.New("groq: choice carries neither message nor text")
	}
}

// ErrorResponse is the Groq API error body
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// streamChunk is one streamed delta event
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// ErrStreamInterrupted indicates a stream terminated before [DONE].
var ErrStreamInterrupted = fmt.Errorf("groq: stream interrupted")
