package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/database"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/queue"
	"github.com/procureguard/trimatch/pkg/services"
)

// Server is the HTTP/WebSocket surface over the reconciliation services.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	sessions   *services.SessionService
	feedback   *services.FeedbackService
	workpapers *services.WorkpaperService

	// Optional components, attached via setters before Start.
	eventService *services.EventService
	warnings     *services.SystemWarningsService

	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager

	engine       *gin.Engine
	httpServer   *http.Server
	dashboardDir string
}

// NewServer wires the handlers onto a gin engine. Optional services
// (events, warnings, dashboard) attach via setters; their endpoints
// answer 503 until set.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	sessions *services.SessionService,
	feedback *services.FeedbackService,
	workpapers *services.WorkpaperService,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		sessions:    sessions,
		feedback:    feedback,
		workpapers:  workpapers,
		workerPool:  workerPool,
		connManager: connManager,
		engine:      gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger(), securityHeaders(), bodyLimit(maxRequestBody))
	s.registerRoutes()
	return s
}

// SetEventService attaches the durable progress event store, enabling
// GET /api/v1/sessions/:id/events.
func (s *Server) SetEventService(svc *services.EventService) {
	s.eventService = svc
}

// SetWarningsService attaches the system warnings registry, surfaced on
// /healthz and /api/v1/system/warnings.
func (s *Server) SetWarningsService(svc *services.SystemWarningsService) {
	s.warnings = svc
}

// SetDashboardDir enables serving the reviewer UI build from dir. A
// missing or empty dir leaves the server API-only.
func (s *Server) SetDashboardDir(dir string) {
	s.dashboardDir = dir
	s.setupDashboardRoutes()
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")
	v1.POST("/reconciliations", s.submitReconciliationHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/active", s.activeSessionsHandler)
	v1.GET("/sessions/filter-options", s.filterOptionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	v1.GET("/sessions/:id/workpaper", s.getWorkpaperHandler)
	v1.GET("/sessions/:id/events", s.listSessionEventsHandler)
	v1.POST("/sessions/:id/feedback", s.submitFeedbackHandler)
	v1.GET("/tenants/:id/threshold", s.tenantThresholdHandler)
	v1.GET("/system/warnings", s.systemWarningsHandler)

	s.engine.GET("/healthz", s.healthHandler)
	s.engine.GET("/ws", s.wsHandler)
}

// Start binds addr and serves until Shutdown. Blocks; returns
// http.ErrServerClosed on a clean shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Used by tests
// that bind 127.0.0.1:0 to get a free port before starting the server.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.Serve(ln)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the underlying engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
