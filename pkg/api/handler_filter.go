package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/procureguard/trimatch/ent/reconsession"
)

// filterOptionsHandler handles GET /api/v1/sessions/filter-options.
func (s *Server) filterOptionsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	vendors, err := s.sessions.GetDistinctVendors(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	tenants, err := s.sessions.GetDistinctTenants(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Statuses are the static enum values; always return all of them.
	statuses := []string{
		string(reconsession.StatusPending),
		string(reconsession.StatusInProgress),
		string(reconsession.StatusCancelling),
		string(reconsession.StatusMatched),
		string(reconsession.StatusDiscrepancyFound),
		string(reconsession.StatusDivergenceAlert),
		string(reconsession.StatusException),
		string(reconsession.StatusFailed),
		string(reconsession.StatusCancelled),
	}

	c.JSON(http.StatusOK, FilterOptionsResponse{
		Vendors:  vendors,
		Tenants:  tenants,
		Statuses: statuses,
	})
}
