// Package e2e boots complete TriMatch instances against a real
// PostgreSQL database and exercises them over HTTP and WebSocket. The
// only double is the LLM provider chain, scripted per test.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/pkg/api"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/database"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/masking"
	"github.com/procureguard/trimatch/pkg/queue"
	"github.com/procureguard/trimatch/pkg/services"
	"github.com/procureguard/trimatch/pkg/threshold"
	testdb "github.com/procureguard/trimatch/test/database"
	"github.com/procureguard/trimatch/test/util"
)

// TestApp boots a complete TriMatch instance for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Real infrastructure
	Router         *llm.Router
	EventPublisher *events.EventPublisher
	Bus            *events.Bus
	NotifyListener *events.NotifyListener
	ConnManager    *events.ConnectionManager
	WorkerPool     *queue.WorkerPool
	Thresholds     *threshold.Store
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg            *config.Config
	providers      []llm.Provider
	workerCount    int
	sessionTimeout time.Duration
	dbClient       *database.Client // injected DB client (for multi-replica tests)
	podID          string           // custom pod ID (for multi-replica tests)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithProviders sets the LLM provider chain handed to the router. The
// default is a single ScriptedProvider answering happyRules.
func WithProviders(providers ...llm.Provider) TestAppOption {
	return func(c *testAppConfig) { c.providers = providers }
}

// WithWorkerCount sets the number of worker pool goroutines. Zero is
// legal: sessions stay pending, which is how pending-state tests and
// passive replicas are built.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithSessionTimeout sets the hard wall-clock limit for one session run.
func WithSessionTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.sessionTimeout = d }
}

// WithDBClient injects a pre-created database client, skipping the
// default per-test schema creation. Used for multi-replica tests where
// multiple TestApp instances share the same schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Required for
// multi-replica tests so each replica gets a distinct identity for
// worker claiming and orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp creates and starts a full TriMatch test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount:    1,
		sessionTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}
	if tc.cfg.Queue == nil {
		tc.cfg.Queue = &config.QueueConfig{}
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	tc.cfg.Queue.MaxConcurrentSessions = max(tc.workerCount, 1)
	tc.cfg.Queue.PollInterval = 100 * time.Millisecond
	tc.cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	tc.cfg.Queue.SessionTimeout = tc.sessionTimeout
	tc.cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	tc.cfg.Queue.OrphanDetectionInterval = time.Minute
	tc.cfg.Queue.OrphanThreshold = time.Minute
	// Short heartbeats so cross-pod cancellation lands within a test's
	// patience.
	tc.cfg.Queue.HeartbeatInterval = 200 * time.Millisecond
	tc.cfg.Queue.StageTimeout = 10 * time.Second
	tc.cfg.Queue.GuardStageTimeout = 10 * time.Second

	if len(tc.providers) == 0 {
		tc.providers = []llm.Provider{NewScriptedProvider(happyRules()...)}
	}

	// 1. Database — *database.Client for the API server, *ent.Client
	//    for everything else.
	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Event publishing and streaming — real, backed by the test DB.
	ctx := context.Background()
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	bus := events.NewBus()
	bus.Start(ctx)

	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), bus)
	require.NoError(t, notifyListener.Start(ctx))
	bus.SetListener(notifyListener)

	eventService := services.NewEventService(entClient)
	connManager := events.NewConnectionManager(bus, events.NewEventServiceAdapter(eventService), 5*time.Second)

	// 3. Domain services.
	thresholdStore := threshold.NewStore()
	sessionService := services.NewSessionService(entClient)
	if tc.cfg.Masking != nil {
		sessionService.SetMasker(masking.NewService(tc.cfg.Masking))
	}
	feedbackService := services.NewFeedbackService(entClient, thresholdStore)
	workpaperService := services.NewWorkpaperService(entClient)
	warningsService := services.NewSystemWarningsService()

	// 4. Router over the scripted provider chain.
	router := llm.NewRouter(tc.providers, llm.RouterConfig{}, nil)

	// 5. Supervisor and worker pool.
	supervisor := queue.NewSupervisor(tc.cfg, entClient, router, eventPublisher, thresholdStore, nil)
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(entClient, tc.cfg.Queue, supervisor, eventPublisher, podID)
	workerPool.Start(ctx)

	// 6. HTTP server on a random port.
	server := api.NewServer(tc.cfg, dbClient, sessionService, feedbackService, workpaperService, workerPool, connManager)
	server.SetEventService(eventService)
	server.SetWarningsService(warningsService)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		Router:         router,
		EventPublisher: eventPublisher,
		Bus:            bus,
		NotifyListener: notifyListener,
		ConnManager:    connManager,
		WorkerPool:     workerPool,
		Thresholds:     thresholdStore,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/ws", addr),
		t:              t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		workerPool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
		bus.Stop()
		// DB cleanup is owned by testdb.NewTestClient / SharedTestDB.
	})

	return app
}

// defaultTestConfig is the minimal config a test instance needs. Tests
// with special compliance or divergence needs pass WithConfig instead.
func defaultTestConfig() *config.Config {
	return &config.Config{
		Divergence: config.DefaultDivergenceConfig(),
		Compliance: &config.ComplianceConfig{
			KnownVendors:        []string{"Acme Industrial Supply"},
			InvoiceHistoryLimit: 50,
		},
	}
}
