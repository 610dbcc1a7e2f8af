package openai

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds OpenAI client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		// The per-request timeout is enforced through the request context
		// so that a timeout is distinguishable from other transport errors.
		c.HTTPClient = &http.Client{}
	}
	return nil
}

// openAIImpl is the internal implementation of IOpenAI
type openAIImpl struct {
	apiKey     string
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// Request represents a chat completion request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents one conversation message
type Message struct {
	Role    string
	Content string
}

// Response represents a normalized chat completion response
type Response struct {
	Text string
}

// --- Wire types (chat-completions schema) ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// chatChoice tolerates the two shapes the assistant text is known to be
// nested in: a message object or a bare text field. Pointers distinguish
// an absent field from an empty reply.
type chatChoice struct {
	Message *chatMessage `json:"message"`
	Text    *string      `json:"text"`
}

type streamChunk struct {
	Choices []streamChoice `json:"choices"`
}

type streamChoice struct {
	Delta *streamDelta `json:"delta"`
	Text  *string      `json:"text"`
}

type streamDelta struct {
	Content string `json:"content"`
}
