package http

import "mini-ai-chat/internal/chat"

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		SessionID: r.SessionID,
		Text:      r.Text,
	}
}

type clearReq struct {
	SessionID string `json:"session_id"`
}

// --- Response DTOs ---

type chatResp struct {
	Reply string `json:"reply"`
}

func newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{Reply: out.Reply}
}
