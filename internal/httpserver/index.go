package httpserver

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

// index serves the minimal chat page. The page is plain glue around
// POST /api/chat; everything it needs is inlined so it renders on
// low-end keypad browsers.
func (srv *HTTPServer) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
