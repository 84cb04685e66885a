// Package api exposes moim's HTTP and WebSocket surface: the chat endpoint
// the web client talks to, read endpoints for negotiation sessions and
// thread transcripts, the approval endpoint, and health/readiness probes.
// Identity is the X-User-ID header; real authentication sits in front of
// the service.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/pkg/chat"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/database"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/queue"
	"github.com/moim-labs/moim/pkg/services"
)

// Orchestrator runs one chat utterance through the scheduling decision
// table and returns the assistant's reply.
type Orchestrator interface {
	HandleMessage(ctx context.Context, in chat.HandleInput) (*models.ChatReply, error)
}

// SessionReader is the slice of the session service the read endpoints use.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string, withMessages bool) (*ent.NegotiationSession, error)
	ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error)
	ListSessionsByThread(ctx context.Context, threadID string) ([]*ent.NegotiationSession, error)
	SearchSessions(ctx context.Context, query string, limit int) ([]*ent.NegotiationSession, error)
}

// TranscriptReader loads the merged transcript of a thread's sessions.
type TranscriptReader interface {
	GetThreadMessages(ctx context.Context, sessionIDs []string) ([]*ent.NegotiationMessage, error)
}

// ChatLogReader pages a user's chat feed.
type ChatLogReader interface {
	ListUserLogs(ctx context.Context, userID string, limit, offset int) (*models.ChatLogListResponse, error)
	ListChatSessionLogs(ctx context.Context, chatSessionID string, limit, offset int) (*models.ChatLogListResponse, error)
}

// ChatSessionStore manages per-user chat containers.
type ChatSessionStore interface {
	CreateChatSession(ctx context.Context, req models.CreateChatSessionRequest) (*ent.ChatSession, error)
	ListChatSessions(ctx context.Context, userID string) ([]*ent.ChatSession, error)
}

// ApprovalDecider records one participant's approve/reject decision on a
// pending thread.
type ApprovalDecider interface {
	Approve(ctx context.Context, userID, threadID string) (*models.ApprovalResult, error)
	Reject(ctx context.Context, userID, threadID string) (*models.ApprovalResult, error)
}

// Server wires the HTTP routes to the services behind them.
type Server struct {
	orchestrator Orchestrator
	sessions     SessionReader
	transcripts  TranscriptReader
	chatLogs     ChatLogReader
	chatSessions ChatSessionStore
	approvals    ApprovalDecider

	dbClient    *database.Client
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager
	warnings    *services.SystemWarningsService

	echo       *echo.Echo
	httpServer *http.Server
	webDir     string
	wsOrigins  []string
}

// NewServer creates the HTTP server and registers all routes. Optional
// dependencies (chat feed, chat containers, approvals, web UI) are attached
// via the Set* methods; their routes answer 503 until set.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	orchestrator Orchestrator,
	sessions SessionReader,
	transcripts TranscriptReader,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		orchestrator: orchestrator,
		sessions:     sessions,
		transcripts:  transcripts,
		dbClient:     dbClient,
		workerPool:   workerPool,
		connManager:  connManager,
		echo:         echo.New(),
	}
	if cfg != nil {
		s.wsOrigins = wsOriginPatterns(cfg.Server)
	}
	s.registerRoutes()
	return s
}

// SetChatLogService attaches the chat feed reader.
func (s *Server) SetChatLogService(logs ChatLogReader) {
	s.chatLogs = logs
}

// SetChatSessionService attaches the chat container store.
func (s *Server) SetChatSessionService(store ChatSessionStore) {
	s.chatSessions = store
}

// SetApprovalCoordinator attaches the approval coordinator.
func (s *Server) SetApprovalCoordinator(a ApprovalDecider) {
	s.approvals = a
}

// SetWarningsService attaches the operator warnings surface shown on /ready.
func (s *Server) SetWarningsService(w *services.SystemWarningsService) {
	s.warnings = w
}

// SetWebDir registers SPA routes for the built web client. An empty dir
// leaves the API-only surface.
func (s *Server) SetWebDir(dir string) {
	if dir == "" {
		return
	}
	s.webDir = dir
	s.setupWebRoutes()
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())
	e.Use(requestLogger())

	// Chat surface
	e.POST("/api/chat/messages", s.sendChatMessageHandler)
	e.GET("/api/chat/messages", s.listChatMessagesHandler)
	e.POST("/api/chat/sessions", s.createChatSessionHandler)
	e.GET("/api/chat/sessions", s.listChatSessionsHandler)

	// Negotiation surface
	e.GET("/api/sessions", s.listSessionsHandler)
	e.GET("/api/sessions/:id", s.getSessionHandler)
	e.GET("/api/threads/:thread_id/messages", s.threadMessagesHandler)
	e.POST("/api/approvals", s.approvalHandler)

	// Realtime and probes
	e.GET("/ws", s.wsHandler)
	e.GET("/health", s.healthHandler)
	e.GET("/ready", s.readyHandler)
}

// Start runs the HTTP server on addr and blocks until it stops. Returns
// http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on a pre-bound listener and blocks until the
// server stops. Tests use it to bind an OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.Serve(ln)
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// wsOriginPatterns collects the WebSocket origin allowlist from config: the
// web client's origin plus any extra patterns. Same-origin connections are
// always accepted; an empty list rejects every cross-origin handshake.
func wsOriginPatterns(sc *config.ServerConfig) []string {
	if sc == nil {
		return nil
	}
	var patterns []string
	if sc.DashboardURL != "" {
		if u, err := url.Parse(sc.DashboardURL); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		} else {
			slog.Warn("Ignoring unparseable dashboard_url for WS origin allowlist", "url", sc.DashboardURL)
		}
	}
	patterns = append(patterns, sc.AllowedWSOrigins...)
	return patterns
}
