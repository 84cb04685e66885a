// moim server — HTTP API, chat orchestrator, negotiation worker pool, and
// the realtime event stream behind them.
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

	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/api"
	"github.com/moim-labs/moim/pkg/approval"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/chat"
	"github.com/moim-labs/moim/pkg/cleanup"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/database"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/intent"
	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/negotiation"
	"github.com/moim-labs/moim/pkg/queue"
	"github.com/moim-labs/moim/pkg/services"
	"github.com/moim-labs/moim/pkg/slack"
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

func main() {
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

	slog.Info("Starting moim",
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	loc := cfg.Negotiation.Location()

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

	// 3. Domain services
	userService := services.NewUserService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	chatLogService := services.NewChatLogService(dbClient.Client)
	chatSessionService := services.NewChatSessionService(dbClient.Client)
	calendarEventService := services.NewCalendarEventService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	eventPublisher.SetMaxPayloadBytes(cfg.Events.MaxPayloadBytes)
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)
	connManager.SetCatchupLimit(cfg.Events.CatchupLimit)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. External collaborators: calendar, LLM, masking, Slack
	calendarClient := calendar.NewClient(cfg.Calendar.BaseURL, cfg.Calendar.Timeout, loc)
	tokenSource := calendar.NewTokenSource(userService,
		cfg.Calendar.TokenURL,
		os.Getenv(cfg.Calendar.ClientIDEnv),
		os.Getenv(cfg.Calendar.ClientSecretEnv))
	systemWarnings := services.NewSystemWarningsService()
	tokenSource.SetWarningSink(systemWarnings)
	availability := calendar.NewProvider(calendarClient, tokenSource, loc)

	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	if apiKey == "" {
		slog.Warn("LLM API key not set, prose falls back to deterministic Korean templates",
			"env", cfg.LLM.APIKeyEnv)
	}
	llmClient := llm.NewHTTPClient(llm.Config{
		Endpoint:    cfg.LLM.Endpoint,
		APIKey:      apiKey,
		Model:       cfg.LLM.Model,
		Timeout:     cfg.LLM.Timeout,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	slog.Info("LLM client initialized", "endpoint", cfg.LLM.Endpoint, "model", cfg.LLM.Model)

	var masker *masking.Service
	if cfg.Masking.Enabled {
		masker = masking.NewService(cfg.Masking.Patterns)
	}

	var slackService *slack.Service
	if cfg.Slack.Enabled {
		slackService = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.Server.DashboardURL,
		})
		if slackService == nil {
			slog.Warn("Slack enabled but token or channel missing, escalations are log-only",
				"token_env", cfg.Slack.TokenEnv)
		}
	}
	defer slackService.Close()

	// 6. Agents, intent extraction, negotiation engine
	agentFactory := agent.NewFactory(availability, llmClient, masker, loc, cfg.Negotiation.PlanningHorizonDays)
	intentExtractor := intent.NewExtractor(llmClient, loc)
	engine := negotiation.NewEngine(
		agentFactory, sessionService, messageService, userService,
		chatLogService, eventPublisher, slackService, cfg.Negotiation)

	// 7. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, engine, eventPublisher, messageService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Approval coordinator, retention cleanup, chat orchestrator
	approvalCoordinator := approval.NewCoordinator(
		sessionService, messageService, chatLogService, userService,
		eventPublisher, tokenSource, calendarClient, calendarEventService,
		slackService, cfg.Negotiation)

	cleanupService := cleanup.NewService(cfg.Retention, sessionService, eventService)
	cleanupService.Start(ctx)

	orchestrator := chat.NewOrchestrator(
		agentFactory, sessionService, chatLogService, chatSessionService,
		userService, intentExtractor, eventPublisher, tokenSource,
		calendarClient, calendarEventService, workerPool, llmClient,
		cfg.Negotiation)

	// 9. HTTP server
	httpServer := api.NewServer(cfg, dbClient, orchestrator, sessionService, messageService, workerPool, connManager)
	httpServer.SetChatLogService(chatLogService)
	httpServer.SetChatSessionService(chatSessionService)
	httpServer.SetApprovalCoordinator(approvalCoordinator)
	httpServer.SetWarningsService(systemWarnings)
	httpServer.SetWebDir(getEnv("WEB_DIR", ""))

	// 10. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("moim started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"max_rounds", cfg.Negotiation.MaxRounds)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown
	cleanupService.Stop()

	// Stop worker pool (wait for active negotiations to finish a round)
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

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
