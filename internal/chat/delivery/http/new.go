package http

import (
	"mini-ai-chat/internal/chat"
	"mini-ai-chat/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase

	stream           bool
	defaultSessionID string
}

// Config carries the delivery-layer settings.
type Config struct {
	// Stream selects incremental delivery for /api/chat.
	Stream bool

	// DefaultSessionID is used when the request omits session_id.
	DefaultSessionID string
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, cfg Config) *handler {
	if cfg.DefaultSessionID == "" {
		cfg.DefaultSessionID = "anon"
	}
	return &handler{
		l:                l,
		uc:               uc,
		stream:           cfg.Stream,
		defaultSessionID: cfg.DefaultSessionID,
	}
}
