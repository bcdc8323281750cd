package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemWarningsResponse is returned by GET /api/v1/system/warnings.
type SystemWarningsResponse struct {
	Warnings []SystemWarningItem `json:"warnings"`
}

// SystemWarningItem is a single system warning.
type SystemWarningItem struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at"`
}

// systemWarningsHandler handles GET /api/v1/system/warnings.
// Surfaces non-fatal runtime issues (provider circuits open, config
// fallbacks) so the dashboard can show a banner.
func (s *Server) systemWarningsHandler(c *gin.Context) {
	resp := SystemWarningsResponse{Warnings: []SystemWarningItem{}}
	if s.warnings == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	for _, w := range s.warnings.GetWarnings() {
		resp.Warnings = append(resp.Warnings, SystemWarningItem{
			ID:        w.ID,
			Category:  w.Category,
			Message:   w.Message,
			Details:   w.Details,
			Source:    w.Source,
			CreatedAt: w.CreatedAt.Format(time.RFC3339),
		})
	}

	// Newest first so the most recent trouble leads the banner.
	sort.Slice(resp.Warnings, func(i, j int) bool {
		return resp.Warnings[i].CreatedAt > resp.Warnings[j].CreatedAt
	})

	c.JSON(http.StatusOK, resp)
}
