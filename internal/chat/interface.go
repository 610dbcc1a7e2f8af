package chat

import "context"

// OnFragment receives one streamed reply fragment. Returning an error
// aborts the stream.
type OnFragment func(fragment string) error

type UseCase interface {
	// Chat relays one user message and returns the complete assistant reply.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ChatStream relays one user message, forwarding reply fragments to
	// onFragment as they arrive. The returned output carries the finalized
	// reply (the concatenation of all fragments).
	ChatStream(ctx context.Context, input ChatInput, onFragment OnFragment) (ChatOutput, error)

	// Clear removes the session's entire history. A later message reseeds it.
	Clear(ctx context.Context, sessionID string) error
}
