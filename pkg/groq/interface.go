package groq

import "context"

// IGroq defines the interface for the Groq chat-completions client
type IGroq interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
	StreamChatCompletion(ctx context.Context, req *Request, onFragment func(string) error) (string, error)
	Model() string
}
