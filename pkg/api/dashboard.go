package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupDashboardRoutes serves the reviewer UI build out of dashboardDir.
// Exact files on disk are served directly; anything else falls back to
// index.html so client-side routes survive a refresh. API, health, and
// WebSocket paths are never intercepted. A missing dir or index.html
// leaves the server API-only.
func (s *Server) setupDashboardRoutes() {
	if s.dashboardDir == "" {
		return
	}
	indexPath := filepath.Join(s.dashboardDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		return
	}

	s.engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/healthz" || path == "/ws" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.AbortWithStatus(http.StatusMethodNotAllowed)
			return
		}

		// Serve the exact file when it exists under the dashboard dir.
		if rel := strings.TrimPrefix(path, "/"); rel != "" {
			full := filepath.Join(s.dashboardDir, filepath.Clean("/"+rel))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				// Hashed Vite assets never change; everything else must
				// revalidate so deployments pick up new asset hashes.
				if strings.HasPrefix(path, "/assets/") {
					c.Header("Cache-Control", "public, max-age=31536000, immutable")
				} else {
					c.Header("Cache-Control", "no-cache")
				}
				c.File(full)
				return
			}
		}

		// SPA fallback.
		c.Header("Cache-Control", "no-cache")
		c.File(indexPath)
	})
}
