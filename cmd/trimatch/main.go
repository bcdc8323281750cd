// TriMatch reconciliation server — provides the HTTP API, manages queue
// workers, and runs the three-way match pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/procureguard/trimatch/pkg/api"
	"github.com/procureguard/trimatch/pkg/cleanup"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/database"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/masking"
	"github.com/procureguard/trimatch/pkg/queue"
	"github.com/procureguard/trimatch/pkg/services"
	"github.com/procureguard/trimatch/pkg/threshold"
	"github.com/procureguard/trimatch/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// routerConfig maps the YAML router section onto the router's own config
// type. Zero values defer to the router defaults.
func routerConfig(rc *config.RouterConfig) llm.RouterConfig {
	if rc == nil {
		return llm.RouterConfig{}
	}
	return llm.RouterConfig{
		MaxRetries:      rc.MaxRetries,
		RetryBaseDelay:  rc.RetryBaseDelay,
		ProviderTimeout: rc.ProviderTimeout,
		MaxConcurrent:   rc.MaxConcurrent,
		BreakerFailures: rc.BreakerFailures,
		BreakerTimeout:  rc.BreakerTimeout,
		VectorDim:       rc.VectorDim,
	}
}

// buildProviders constructs the failover chain from configuration.
// Providers that cannot be constructed are skipped with a system warning
// rather than failing startup; the router appends a deterministic
// terminal when the chain ends up without one.
func buildProviders(cfg *config.LLMConfig, vectorDim int, warnings *services.SystemWarningsService) []llm.Provider {
	var providers []llm.Provider
	for _, pc := range cfg.Providers {
		switch pc.Type {
		case config.ProviderTypeOpenAI:
			apiKey := os.Getenv(pc.APIKeyEnv)
			if apiKey == "" {
				slog.Warn("Skipping LLM provider, API key not set",
					"provider", pc.Name, "env", pc.APIKeyEnv)
				warnings.AddWarning(services.WarningCategoryLLMProvider,
					fmt.Sprintf("provider %q disabled", pc.Name),
					fmt.Sprintf("environment variable %s is not set", pc.APIKeyEnv),
					pc.Name)
				continue
			}
			providers = append(providers, llm.NewCloudProvider(llm.CloudOptions{
				Name:       pc.Name,
				BaseURL:    pc.BaseURL,
				APIKey:     apiKey,
				Model:      pc.Model,
				EmbedModel: pc.EmbedModel,
			}))
		case config.ProviderTypeGRPC:
			// Lazy dial; an unreachable sidecar surfaces on first call
			// and the breaker takes it from there.
			p, err := llm.NewLocalProvider(pc.Name, pc.Addr, pc.Model)
			if err != nil {
				slog.Warn("Skipping LLM provider, sidecar client failed",
					"provider", pc.Name, "addr", pc.Addr, "error", err)
				warnings.AddWarning(services.WarningCategoryLLMProvider,
					fmt.Sprintf("provider %q disabled", pc.Name),
					err.Error(), pc.Name)
				continue
			}
			providers = append(providers, p)
		case config.ProviderTypeDeterministic:
			providers = append(providers, llm.NewDeterministic(vectorDim))
		default:
			slog.Warn("Skipping LLM provider with unknown type",
				"provider", pc.Name, "type", pc.Type)
		}
	}
	return providers
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	slog.Info("Starting TriMatch",
		"version", version.GitCommit,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Initialize domain services
	warningsService := services.NewSystemWarningsService()
	sessionService := services.NewSessionService(dbClient.Client)
	sessionService.SetMasker(masking.NewService(cfg.Masking))
	eventService := services.NewEventService(dbClient.Client)
	workpaperService := services.NewWorkpaperService(dbClient.Client)

	thresholdStore := threshold.NewStore()
	feedbackService := services.NewFeedbackService(dbClient.Client, thresholdStore)
	if n, err := feedbackService.Rehydrate(ctx); err != nil {
		slog.Warn("Threshold rehydrate failed, starting from the global prior", "error", err)
	} else {
		slog.Info("Thresholds rehydrated from stored feedback", "samples", n)
	}
	slog.Info("Services initialized")

	// 5. Build the LLM provider chain and router
	routerCfg := routerConfig(cfg.LLM.Router)
	providers := buildProviders(cfg.LLM, routerCfg.VectorDim, warningsService)
	if len(providers) == 0 {
		slog.Warn("No LLM providers available, running on the deterministic terminal only")
	}
	router := llm.NewRouter(providers, routerCfg, slog.Default())
	defer func() {
		if err := router.Close(); err != nil {
			slog.Error("Error closing LLM router", "error", err)
		}
	}()
	slog.Info("LLM router initialized", "providers", len(providers))

	// 5a. Initialize streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	bus := events.NewBus()
	bus.Start(ctx)
	defer bus.Stop()

	// Dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), bus)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	bus.SetListener(notifyListener)

	connManager := events.NewConnectionManager(bus, events.NewEventServiceAdapter(eventService), 10*time.Second)
	slog.Info("Streaming infrastructure initialized")

	// 6. Start worker pool (before HTTP server)
	executor := queue.NewSupervisor(cfg, dbClient.Client, router, eventPublisher, thresholdStore, nil)
	workerPool := queue.NewWorkerPool(dbClient.Client, cfg.Queue, executor, eventPublisher, podID)
	workerPool.Start(ctx)

	// 6a. Start retention sweep
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, eventService)
	cleanupService.Start(ctx)

	// 7. Create HTTP server
	httpServer := api.NewServer(cfg, dbClient, sessionService, feedbackService, workpaperService, workerPool, connManager)
	httpServer.SetEventService(eventService)
	httpServer.SetWarningsService(warningsService)
	if dir := getEnv("DASHBOARD_DIR", ""); dir != "" {
		httpServer.SetDashboardDir(dir)
	}

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := cfg.System.ListenAddr
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("TriMatch started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown
	cleanupService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for active sessions to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
