package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/procureguard/trimatch/pkg/models"
)

// submitReconciliationHandler handles POST /api/v1/reconciliations.
// Creates a session in "pending" status and returns immediately; a worker
// picks the session up and runs the pipeline.
func (s *Server) submitReconciliationHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req SubmitReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Record the submitting identity alongside any caller metadata
	metadata := req.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}
	if _, ok := metadata["submitted_by"]; !ok {
		metadata["submitted_by"] = extractAuthor(c)
	}

	// 3. Call service; bundle shape and size are validated there
	session, err := s.sessions.CreateSession(c.Request.Context(), models.CreateSessionRequest{
		SessionID:       req.SessionID,
		TenantID:        req.TenantID,
		Documents:       req.Documents,
		SessionMetadata: metadata,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 4. Return response
	c.JSON(http.StatusAccepted, &SubmitResponse{
		SessionID: session.ID,
		Status:    "queued",
		Message:   "Reconciliation submitted for processing",
	})
}
