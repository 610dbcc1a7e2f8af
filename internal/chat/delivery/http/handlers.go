package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Chat godoc
// @Summary     Relay a chat message
// @Description Appends the message to the session history, forwards the conversation to the completion provider and returns the assistant's reply. With streaming enabled the body is a sequence of plain-text fragments.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {string} string "Empty message"
// @Failure     500 {string} string "Provider failure"
// @Failure     504 {string} string "Provider timeout"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.stream {
		h.chatStream(c, req)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newChatResp(output))
}

// chatStream delivers the reply as raw text fragments, flushed as they
// arrive. Once the first fragment is written the status is fixed; a
// later failure can only abort the connection.
func (h *handler) chatStream(c *gin.Context, req chatReq) {
	ctx := c.Request.Context()

	c.Header("Content-Type", "text/plain; charset=utf-8")

	wrote := false
	_, err := h.uc.ChatStream(ctx, req.toInput(), func(fragment string) error {
		if _, werr := c.Writer.WriteString(fragment); werr != nil {
			return werr
		}
		c.Writer.Flush()
		wrote = true
		return nil
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ChatStream: %v", err)
		if !wrote {
			h.respondError(c, err)
		}
		return
	}

	if !wrote {
		// Empty finalized reply is valid; still answer 200.
		c.Status(http.StatusOK)
	}
}

// Clear godoc
// @Summary     Clear session history
// @Description Deletes the caller's entire session history. The next message starts a fresh session.
// @Tags        Chat
// @Accept      json
// @Produce     plain
// @Param       body body clearReq false "Session"
// @Success     200 {string} string "cleared"
// @Router      /api/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processClearReq(c)

	if err := h.uc.Clear(ctx, req.SessionID); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.respondError(c, err)
		return
	}

	c.String(http.StatusOK, "cleared")
}
