package http

import (
	"github.com/gin-gonic/gin"

	"mini-ai-chat/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RequestID(), h.Chat)
	rg.POST("/clear", mw.RequestID(), h.Clear)
}
