package openai

import "time"

const (
	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default per-request timeout
	DefaultTimeout = 20 * time.Second
)

// streamDoneMarker terminates a server-sent event stream.
const streamDoneMarker = "[DONE]"
