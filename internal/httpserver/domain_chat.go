package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "mini-ai-chat/internal/chat/delivery/http"
	chatRepo "mini-ai-chat/internal/chat/repository/memory"
	chatUC "mini-ai-chat/internal/chat/usecase"
	"mini-ai-chat/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(...)
//  2. Create UseCase:      uc := mydomainUC.New(...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo, err := chatRepo.New(chatRepo.Config{
		HistoryLimit: srv.chatCfg.HistoryLimit,
		MaxSessions:  srv.chatCfg.MaxSessions,
		SystemPrompt: srv.chatCfg.SystemPrompt,
	})
	if err != nil {
		return err
	}

	// 2. UseCase
	uc := chatUC.New(srv.l, srv.provider, repo, chatUC.Config{
		Temperature: srv.chatCfg.Temperature,
		MaxTokens:   srv.chatCfg.MaxTokens,
	})

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc, chatHTTP.Config{
		Stream:           srv.chatCfg.Stream,
		DefaultSessionID: srv.chatCfg.DefaultSessionID,
	})

	// 4. Routes: registers /api/chat and /api/clear
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered: provider=%s model=%s stream=%t",
		srv.provider.Name(), srv.provider.Model(), srv.chatCfg.Stream)
	return nil
}
