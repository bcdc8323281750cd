package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getWorkpaperHandler handles GET /api/v1/sessions/:id/workpaper.
// Serves the rendered HTML artifact directly so reviewers can open it in
// a browser tab; 404 until the drafting stage has persisted one.
func (s *Server) getWorkpaperHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	wp, err := s.workpapers.GetWorkpaper(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(wp.HTML))
}
