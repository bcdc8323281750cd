package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/procureguard/trimatch/pkg/models"
)

// submitFeedbackHandler handles POST /api/v1/sessions/:id/feedback.
// Records a reviewer's judgement of the session's divergence outcome and
// returns the tenant threshold that results from it.
func (s *Server) submitFeedbackHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOutcome(req.Outcome) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("invalid outcome: must be %s, %s, or %s",
				models.OutcomeCorrect, models.OutcomeFalsePositive, models.OutcomeFalseNegative),
		})
		return
	}

	reviewer := req.Reviewer
	if reviewer == "" {
		reviewer = extractAuthor(c)
	}

	threshold, err := s.feedback.RecordFeedback(c.Request.Context(), models.FeedbackRequest{
		SessionID: sessionID,
		Outcome:   req.Outcome,
		Reviewer:  reviewer,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, threshold)
}

// tenantThresholdHandler handles GET /api/v1/tenants/:id/threshold.
func (s *Server) tenantThresholdHandler(c *gin.Context) {
	tenantID := c.Param("id")
	if tenantID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "tenant id is required"})
		return
	}

	resp := s.feedback.TenantThreshold(tenantID)
	c.JSON(http.StatusOK, resp)
}
