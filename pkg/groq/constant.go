package groq

import "time"

const (
	// DefaultBaseURL is the default Groq API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultTimeout is the default per-request timeout
	DefaultTimeout = 20 * time.Second
)
