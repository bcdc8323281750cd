package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/models"
)

// getSessionHandler handles GET /api/v1/sessions/:id.
// The response includes the stage executions and divergence records edges.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	session, err := s.sessions.GetSession(c.Request.Context(), sessionID, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &models.SessionResponse{ReconSession: session})
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters, err := parseSessionFilters(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.sessions.ListSessions(c.Request.Context(), *filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseSessionFilters validates the list query parameters.
func parseSessionFilters(c *gin.Context) (*models.SessionFilters, error) {
	filters := &models.SessionFilters{
		Limit:  25,
		Offset: 0,
	}

	// Pagination.
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			return nil, errInvalidParam("limit", "must be an integer between 1 and 100")
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, errInvalidParam("offset", "must be a non-negative integer")
		}
		filters.Offset = n
	}

	// Status filter accepts a comma-separated list; every value must be a
	// known lifecycle status.
	if v := c.Query("status"); v != "" {
		for _, st := range strings.Split(v, ",") {
			st = strings.TrimSpace(st)
			if err := reconsession.StatusValidator(reconsession.Status(st)); err != nil {
				return nil, errInvalidParam("status", st)
			}
		}
		filters.Status = v
	}

	filters.TenantID = c.Query("tenant_id")
	filters.VendorName = c.Query("vendor")

	// Date range.
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, errInvalidParam("created_after", "must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, errInvalidParam("created_before", "must be RFC3339")
		}
		filters.CreatedBefore = &t
	}

	return filters, nil
}

// activeSessionsHandler handles GET /api/v1/sessions/active.
func (s *Server) activeSessionsHandler(c *gin.Context) {
	sessions, err := s.sessions.GetActiveSessions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
func (s *Server) cancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	// Flip the DB status first (pending → cancelled, in_progress → cancelling).
	session, err := s.sessions.CancelSession(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// If the run is on this pod, interrupt it now. On any other pod the
	// worker's heartbeat sees the cancelling status within one interval.
	if s.workerPool != nil {
		s.workerPool.CancelSession(sessionID)
	}

	c.JSON(http.StatusOK, &CancelResponse{
		SessionID: sessionID,
		Status:    string(session.Status),
		Message:   "Session cancellation requested",
	})
}
