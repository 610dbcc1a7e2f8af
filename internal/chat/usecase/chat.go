package usecase

import (
	"context"
	"fmt"

	"mini-ai-chat/internal/chat"
	"mini-ai-chat/pkg/llmprovider"
)

// Chat relays one user message in batch mode: assemble the prompt,
// dispatch it upstream, commit the assistant reply.
//
// A provider failure never rolls back the user turn committed by
// assemble; the assistant turn is committed only on success.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	lock := uc.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	turns, err := uc.assemble(input.SessionID, input.Text)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	resp, err := uc.provider.GenerateContent(ctx, uc.toProviderRequest(turns))
	if err != nil {
		uc.l.Errorf(ctx, "Chat: provider call failed: session=%s: %v", input.SessionID, err)
		return chat.ChatOutput{}, err
	}

	if err := uc.commitReply(ctx, input.SessionID, resp.Text); err != nil {
		return chat.ChatOutput{}, err
	}

	return chat.ChatOutput{Reply: resp.Text}, nil
}

// ChatStream relays one user message in streaming mode. Fragments are
// forwarded live through onFragment; the finalized concatenation is
// committed to history only after the stream completes. An interrupted
// stream commits nothing.
func (uc *implUseCase) ChatStream(ctx context.Context, input chat.ChatInput, onFragment chat.OnFragment) (chat.ChatOutput, error) {
	lock := uc.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	turns, err := uc.assemble(input.SessionID, input.Text)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	resp, err := uc.provider.StreamContent(ctx, uc.toProviderRequest(turns), llmprovider.OnFragment(onFragment))
	if err != nil {
		uc.l.Errorf(ctx, "ChatStream: provider call failed: session=%s: %v", input.SessionID, err)
		return chat.ChatOutput{}, err
	}

	if err := uc.commitReply(ctx, input.SessionID, resp.Text); err != nil {
		return chat.ChatOutput{}, err
	}

	return chat.ChatOutput{Reply: resp.Text}, nil
}

// Clear removes the session's history entirely.
func (uc *implUseCase) Clear(ctx context.Context, sessionID string) error {
	lock := uc.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	uc.repo.Clear(sessionID)
	uc.l.Infof(ctx, "Clear: session=%s history cleared", sessionID)
	return nil
}

// commitReply writes the finalized assistant text back into history.
// An empty finalized reply is still a valid reply and is committed.
func (uc *implUseCase) commitReply(ctx context.Context, sessionID, reply string) error {
	if err := uc.repo.Append(sessionID, chat.RoleAssistant, reply); err != nil {
		// Role is hard-coded here; a failure signals a store invariant
		// violation, not an external condition.
		uc.l.Errorf(ctx, "commitReply: session=%s: %v", sessionID, err)
		return fmt.Errorf("commit assistant reply: %w", err)
	}
	return nil
}
