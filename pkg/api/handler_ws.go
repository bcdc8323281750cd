package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to the
// ConnectionManager. Cross-origin connections are allowed only for
// origins listed in system.allowed_ws_origins; an empty list means
// same-origin only.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if s.cfg != nil && s.cfg.System != nil {
		opts.OriginPatterns = s.cfg.System.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		// Accept already wrote the HTTP error response.
		return
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
