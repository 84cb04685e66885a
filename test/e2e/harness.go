package e2e

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/api"
	"github.com/moim-labs/moim/pkg/approval"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/chat"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/database"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/intent"
	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/negotiation"
	"github.com/moim-labs/moim/pkg/queue"
	"github.com/moim-labs/moim/pkg/services"
	testdb "github.com/moim-labs/moim/test/database"
	"github.com/moim-labs/moim/test/util"
)

// TestApp is the full stack on a per-test schema: real Postgres, real
// NOTIFY/LISTEN fan-out, real worker pool, HTTP API on a loopback port. The
// model endpoint and the calendar provider are in-process doubles, so every
// negotiation decision in these tests is the deterministic fallback path.
type TestApp struct {
	t *testing.T

	DB       *database.Client
	Users    *services.UserService
	Sessions *services.SessionService
	Messages *services.MessageService
	ChatLogs *services.ChatLogService
	Chats    *services.ChatSessionService
	Mirror   *services.CalendarEventService

	LLM      *ScriptedLLM
	Calendar *calendarDouble

	Cfg     *config.Config
	Loc     *time.Location
	BaseURL string
	WSURL   string

	httpClient *http.Client
}

// AppOption tweaks the stack's config before it boots.
type AppOption func(cfg *config.Config)

func WithWorkerCount(n int) AppOption {
	return func(cfg *config.Config) { cfg.Queue.WorkerCount = n }
}

func WithMaxRounds(n int) AppOption {
	return func(cfg *config.Config) { cfg.Negotiation.MaxRounds = n }
}

// NewTestApp boots the stack the way cmd/moim does and tears it down in
// reverse order on cleanup: HTTP server, then worker pool, then listener,
// then the test schema.
func NewTestApp(t *testing.T, opts ...AppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbClient := testdb.NewTestClient(t)

	users := services.NewUserService(dbClient.Client)
	sessions := services.NewSessionService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client)
	chatLogs := services.NewChatLogService(dbClient.Client)
	chats := services.NewChatSessionService(dbClient.Client)
	mirror := services.NewCalendarEventService(dbClient.Client)
	eventStore := services.NewEventService(dbClient.Client)

	cal := newCalendarDouble(t)
	cfg := testConfig(cal)
	for _, opt := range opts {
		opt(cfg)
	}
	loc := cfg.Negotiation.Location()

	publisher := events.NewEventPublisher(dbClient.DB())
	publisher.SetMaxPayloadBytes(cfg.Events.MaxPayloadBytes)
	manager := events.NewConnectionManager(events.NewEventServiceAdapter(eventStore), 10*time.Second)
	manager.SetCatchupLimit(cfg.Events.CatchupLimit)

	// LISTEN is database-level, so the listener dials the base DSN and still
	// hears the per-schema publisher.
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	manager.SetListener(listener)

	calClient := calendar.NewClient(cal.URL(), 5*time.Second, loc)
	tokens := calendar.NewTokenSource(users, cal.TokenURL(), "e2e-client", "e2e-secret")
	availability := calendar.NewProvider(calClient, tokens, loc)

	model := NewScriptedLLM()
	masker := masking.NewService(cfg.Masking.Patterns)

	agents := agent.NewFactory(availability, model, masker, loc, cfg.Negotiation.PlanningHorizonDays)
	extractor := intent.NewExtractor(model, loc)
	engine := negotiation.NewEngine(agents, sessions, messages, users, chatLogs,
		publisher, nil, cfg.Negotiation)

	pool := queue.NewWorkerPool("e2e-"+t.Name(), dbClient.Client, cfg.Queue, engine, publisher, messages)
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	approvals := approval.NewCoordinator(sessions, messages, chatLogs, users,
		publisher, tokens, calClient, mirror, nil, cfg.Negotiation)

	orchestrator := chat.NewOrchestrator(agents, sessions, chatLogs, chats,
		users, extractor, publisher, tokens, calClient, mirror, pool, model,
		cfg.Negotiation)

	server := api.NewServer(cfg, dbClient, orchestrator, sessions, messages, pool, manager)
	server.SetChatLogService(chatLogs)
	server.SetChatSessionService(chats)
	server.SetApprovalCoordinator(approvals)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.StartWithListener(ln) }()
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	addr := ln.Addr().String()
	app := &TestApp{
		t:          t,
		DB:         dbClient,
		Users:      users,
		Sessions:   sessions,
		Messages:   messages,
		ChatLogs:   chatLogs,
		Chats:      chats,
		Mirror:     mirror,
		LLM:        model,
		Calendar:   cal,
		Cfg:        cfg,
		Loc:        loc,
		BaseURL:    "http://" + addr,
		WSURL:      "ws://" + addr + "/ws",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	app.waitReady(t)
	return app
}

// testConfig mirrors the production defaults with the waits tightened to
// test scale and the external collaborators pointed at in-process doubles.
func testConfig(cal *calendarDouble) *config.Config {
	cfg := &config.Config{
		Server:      config.DefaultServerConfig(),
		Negotiation: config.DefaultNegotiationConfig(),
		LLM:         config.DefaultLLMConfig(),
		Calendar:    config.DefaultCalendarConfig(),
		Queue:       config.DefaultQueueConfig(),
		Events:      config.DefaultEventsConfig(),
		Retention:   config.DefaultRetentionConfig(),
		Slack:       &config.SlackConfig{},
		Masking:     &config.MaskingConfig{Enabled: true},
	}

	cfg.Negotiation.StepDelay = 5 * time.Millisecond

	cfg.Queue.WorkerCount = 2
	cfg.Queue.PollInterval = 100 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	cfg.Queue.HeartbeatInterval = time.Second
	cfg.Queue.OrphanDetectionInterval = time.Minute
	cfg.Queue.SessionTimeout = 30 * time.Second
	cfg.Queue.GracefulShutdownTimeout = 5 * time.Second

	cfg.Calendar.BaseURL = cal.URL()
	cfg.Calendar.TokenURL = cal.TokenURL()
	cfg.Calendar.Timeout = 5 * time.Second

	return cfg
}

func (app *TestApp) waitReady(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := app.httpClient.Get(app.BaseURL + "/ready")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond, "server never became ready")
}

// SeedUser inserts a user with live calendar credentials and returns the
// bearer token the calendar double expects from them.
func (app *TestApp) SeedUser(id, name string) string {
	app.t.Helper()
	token := "tok-" + id
	_, err := app.DB.User.Create().
		SetID(id).
		SetName(name).
		SetEmail(id + "@moim.test").
		SetAccessToken(token).
		SetRefreshToken("refresh-" + id).
		SetTokenExpiry(time.Now().Add(24 * time.Hour)).
		Save(context.Background())
	require.NoError(app.t, err)
	app.Calendar.AllowToken(token)
	return token
}

// SeedUserExpiredToken inserts a user whose stored access token is stale, so
// their first calendar call goes through the refresh endpoint. Returns the
// token the refresh mints.
func (app *TestApp) SeedUserExpiredToken(id, name string) string {
	app.t.Helper()
	token := "tok-" + id
	_, err := app.DB.User.Create().
		SetID(id).
		SetName(name).
		SetEmail(id + "@moim.test").
		SetAccessToken("stale-" + id).
		SetRefreshToken("refresh-" + id).
		SetTokenExpiry(time.Now().Add(-time.Hour)).
		Save(context.Background())
	require.NoError(app.t, err)
	app.Calendar.AllowRefresh("refresh-"+id, token)
	return token
}
