package slack

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// EscalationKind classifies what stalled. One kind per session is posted at
// most once.
type EscalationKind string

const (
	// EscalationNeedHuman — an agent ended the negotiation with NEED_HUMAN.
	EscalationNeedHuman EscalationKind = "need_human"
	// EscalationDeadlock — the round limit was exhausted without agreement.
	EscalationDeadlock EscalationKind = "deadlock"
	// EscalationCalendarFailure — finalization wrote some calendars but not all.
	EscalationCalendarFailure EscalationKind = "calendar_failure"
)

// Escalation is one ops notification request.
type Escalation struct {
	SessionID   string
	ThreadID    string
	Kind        EscalationKind
	Intent      string   // original user request, shown in the summary
	Initiator   string   // initiator display name
	Reason      string   // short Korean reason line
	FailedUsers []string // calendar_failure: display names whose writes failed
}

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
	QueueSize    int // 0 → default
}

const defaultQueueSize = 64

// Service posts ops escalations to Slack. Posting is asynchronous: Escalate
// enqueues and returns immediately; a single worker goroutine drains the
// bounded queue. Nil-safe: all methods are no-ops when service is nil, so
// callers never branch on whether Slack is configured.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger

	queue chan Escalation
	done  chan struct{}
	once  sync.Once

	seen   map[string]bool // posted fingerprints, in-process dedup
	seenMu sync.Mutex
}

// NewService creates a new escalation service and starts its posting worker.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return newService(NewClient(cfg.Token, cfg.Channel), cfg.DashboardURL, cfg.QueueSize)
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string, queueSize int) *Service {
	return newService(client, dashboardURL, queueSize)
}

func newService(client *Client, dashboardURL string, queueSize int) *Service {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	s := &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
		queue:        make(chan Escalation, queueSize),
		done:         make(chan struct{}),
		seen:         make(map[string]bool),
	}
	go s.run()
	return s
}

// Escalate enqueues an escalation for posting. Never blocks: when the queue
// is full the escalation is dropped with a log line — the session itself is
// already persisted, so ops can still find it through the dashboard.
func (s *Service) Escalate(esc Escalation) {
	if s == nil {
		return
	}
	select {
	case s.queue <- esc:
	default:
		s.logger.Warn("Escalation queue full, dropping",
			"session_id", esc.SessionID, "kind", esc.Kind)
	}
}

// Close stops the posting worker. Queued escalations that have not been
// posted yet are dropped.
func (s *Service) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() { close(s.done) })
}

func (s *Service) run() {
	for {
		select {
		case <-s.done:
			return
		case esc := <-s.queue:
			s.post(context.Background(), esc)
		}
	}
}

// post delivers one escalation. Fail-open throughout: errors are logged,
// never surfaced to the negotiation path.
func (s *Service) post(ctx context.Context, esc Escalation) {
	fp := EscalationFingerprint(esc.SessionID, esc.Kind)
	if !s.markSeen(fp) {
		return
	}

	// Cross-restart dedup: another pod (or a previous life of this one) may
	// already have posted this escalation.
	if ts, err := s.client.FindMessageByFingerprint(ctx, fp); err != nil {
		s.logger.Warn("Fingerprint dedup search failed",
			"session_id", esc.SessionID, "kind", esc.Kind, "error", err)
	} else if ts != "" {
		s.logger.Info("Escalation already posted, skipping",
			"session_id", esc.SessionID, "kind", esc.Kind)
		return
	}

	// Thread follow-up escalations for the same session under the first one,
	// so a deadlock and its later calendar failure read as one incident.
	threadTS, err := s.client.FindMessageByFingerprint(ctx, SessionFingerprint(esc.SessionID))
	if err != nil {
		s.logger.Warn("Session thread lookup failed",
			"session_id", esc.SessionID, "error", err)
	}

	blocks := BuildEscalationMessage(esc, s.dashboardURL)
	if err := s.client.PostMessage(ctx, escalationFallbackText(esc), blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to post escalation",
			"session_id", esc.SessionID, "kind", esc.Kind, "error", err)
	}
}

// markSeen records a fingerprint, returning false if it was already recorded.
func (s *Service) markSeen(fp string) bool {
	s.seenMu.Lock()
	defer s.seenMu.Unlock()
	if s.seen[fp] {
		return false
	}
	s.seen[fp] = true
	return true
}
