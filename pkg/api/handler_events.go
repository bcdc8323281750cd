package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/procureguard/trimatch/pkg/events"
)

const (
	defaultEventPageSize = 200
	maxEventPageSize     = 500
)

// listSessionEventsHandler handles GET /api/v1/sessions/:id/events.
// Returns the session's durable progress events with id > after_id, the
// same catch-up stream the WebSocket subscribe performs. Clients that
// missed the live feed page through here using last_event_id.
func (s *Server) listSessionEventsHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}
	if s.eventService == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "event catch-up not configured"})
		return
	}

	afterID := 0
	if v := c.Query("after_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid after_id: must be a non-negative integer"})
			return
		}
		afterID = n
	}

	limit := defaultEventPageSize
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxEventPageSize {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be an integer between 1 and 500"})
			return
		}
		limit = n
	}

	rows, err := s.eventService.GetEventsSince(c.Request.Context(), events.SessionChannel(sessionID), afterID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	lastID := afterID
	if len(rows) > 0 {
		lastID = rows[len(rows)-1].ID
	}

	c.JSON(http.StatusOK, &SessionEventsResponse{
		SessionID:   sessionID,
		Events:      rows,
		LastEventID: lastID,
	})
}
