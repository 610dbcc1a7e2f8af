package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body and applies the default
// session id. Text validation is the use case's concern; a body that is
// not JSON at all is still a 400 here.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = h.defaultSessionID
	}
	return req, nil
}

// processClearReq binds the clear request body; an empty body is allowed.
func (h *handler) processClearReq(c *gin.Context) clearReq {
	var req clearReq
	_ = c.ShouldBindJSON(&req)
	if req.SessionID == "" {
		req.SessionID = h.defaultSessionID
	}
	return req
}
