package usecase

import (
	"sync"

	"mini-ai-chat/internal/chat"
	"mini-ai-chat/internal/chat/repository"
	"mini-ai-chat/pkg/llmprovider"
	"mini-ai-chat/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	provider llmprovider.Provider
	repo     repository.Store

	temperature float64
	maxTokens   int

	// sessionLocks serializes the assemble-dispatch-commit cycle per
	// session id so concurrent requests on the same session cannot
	// interleave their history writes.
	sessionLocks sync.Map // map[string]*sync.Mutex
}

// Config carries the completion tuning knobs.
type Config struct {
	Temperature float64
	MaxTokens   int
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat use case.
// Convention: factory returns concrete type for internal packages.
func New(l log.Logger, provider llmprovider.Provider, repo repository.Store, cfg Config) *implUseCase {
	return &implUseCase{
		l:           l,
		provider:    provider,
		repo:        repo,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}
