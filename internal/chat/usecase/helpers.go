package usecase

import (
	"strings"
	"sync"

	"mini-ai-chat/internal/chat"
	"mini-ai-chat/pkg/llmprovider"
)

// sessionLock returns the mutex guarding the session's relay cycle.
func (uc *implUseCase) sessionLock(sessionID string) *sync.Mutex {
	lock, _ := uc.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// assemble validates the user text, commits the user turn to history
// (deliberate side effect) and returns the full ordered turn sequence
// exactly as it will be sent upstream. Whitespace-only text is rejected
// before any mutation.
func (uc *implUseCase) assemble(sessionID, userText string) ([]chat.Turn, error) {
	text := strings.TrimSpace(userText)
	if text == "" {
		return nil, chat.ErrEmptyInput
	}

	uc.repo.GetOrCreate(sessionID)
	if err := uc.repo.Append(sessionID, chat.RoleUser, text); err != nil {
		return nil, err
	}

	return uc.repo.Snapshot(sessionID), nil
}

// toProviderRequest converts the assembled turn sequence to the
// normalized provider request.
func (uc *implUseCase) toProviderRequest(turns []chat.Turn) *llmprovider.Request {
	req := &llmprovider.Request{
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
		Messages:    make([]llmprovider.Message, 0, len(turns)),
	}
	for _, turn := range turns {
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return req
}
