package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-ai-chat/internal/chat"
	"mini-ai-chat/pkg/llmprovider"
)

// respondError maps domain and provider errors to plain-text HTTP
// failures. Invalid input and provider failure are kept distinct so the
// caller knows which of the two is worth retrying. Upstream messages
// pass through sanitized by construction: provider errors never carry
// the bearer credential.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		c.String(http.StatusBadRequest, "Empty message")
	case errors.Is(err, llmprovider.ErrProviderTimeout):
		c.String(http.StatusGatewayTimeout, "Assistant provider timed out")
	default:
		c.String(http.StatusInternalServerError, "Assistant provider failed: %v", err)
	}
}
