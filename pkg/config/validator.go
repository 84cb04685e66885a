package config

import (
	"fmt"
	"regexp"
	"time"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateNegotiation(); err != nil {
		return fmt.Errorf("negotiation validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}

	if err := v.validateCalendar(); err != nil {
		return fmt.Errorf("calendar validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateEvents(); err != nil {
		return fmt.Errorf("events validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateSlack(); err != nil {
		return fmt.Errorf("slack validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "port", fmt.Errorf("must be 1-65535, got %d", s.Port))
	}
	return nil
}

func (v *ConfigValidator) validateNegotiation() error {
	n := v.cfg.Negotiation

	if n.MaxRounds < 1 {
		return NewValidationError("negotiation", "max_rounds", fmt.Errorf("must be at least 1"))
	}
	if n.DeadlockRounds < 2 {
		return NewValidationError("negotiation", "deadlock_rounds",
			fmt.Errorf("must be at least 2, got %d", n.DeadlockRounds))
	}
	if n.StepDelay < 0 {
		return NewValidationError("negotiation", "step_delay", fmt.Errorf("must be non-negative"))
	}
	if n.PlanningHorizonDays < 1 {
		return NewValidationError("negotiation", "planning_horizon_days", fmt.Errorf("must be at least 1"))
	}
	if n.DefaultDurationMinutes < 15 {
		return NewValidationError("negotiation", "default_duration_minutes",
			fmt.Errorf("must be at least 15, got %d", n.DefaultDurationMinutes))
	}
	if _, err := time.LoadLocation(n.Timezone); err != nil {
		return NewValidationError("negotiation", "timezone",
			fmt.Errorf("unknown timezone %q: %v", n.Timezone, err))
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM

	if l.Endpoint == "" {
		return NewValidationError("llm", "endpoint", ErrMissingRequiredField)
	}
	if l.Model == "" {
		return NewValidationError("llm", "model", ErrMissingRequiredField)
	}
	if l.MaxTokens < 1 {
		return NewValidationError("llm", "max_tokens", fmt.Errorf("must be at least 1"))
	}
	if l.Timeout <= 0 {
		return NewValidationError("llm", "timeout", fmt.Errorf("must be positive"))
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return NewValidationError("llm", "temperature",
			fmt.Errorf("must be between 0 and 2, got %g", l.Temperature))
	}

	return nil
}

func (v *ConfigValidator) validateCalendar() error {
	c := v.cfg.Calendar

	if c.BaseURL == "" {
		return NewValidationError("calendar", "base_url", ErrMissingRequiredField)
	}
	if c.TokenURL == "" {
		return NewValidationError("calendar", "token_url", ErrMissingRequiredField)
	}
	if c.Timeout <= 0 {
		return NewValidationError("calendar", "timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentSessions < 1 {
		return fmt.Errorf("max_concurrent_sessions must be at least 1, got %d", q.MaxConcurrentSessions)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", q.PollInterval)
	}
	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter must be non-negative, got %s", q.PollIntervalJitter)
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return fmt.Errorf("poll_interval_jitter must be less than poll_interval (%s), got %s",
			q.PollInterval, q.PollIntervalJitter)
	}
	if q.SessionTimeout <= 0 {
		return fmt.Errorf("session_timeout must be positive, got %s", q.SessionTimeout)
	}
	if q.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful_shutdown_timeout must be positive, got %s", q.GracefulShutdownTimeout)
	}
	if q.OrphanDetectionInterval <= 0 {
		return fmt.Errorf("orphan_detection_interval must be positive, got %s", q.OrphanDetectionInterval)
	}
	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan_threshold must be positive, got %s", q.OrphanThreshold)
	}
	if q.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive, got %s", q.HeartbeatInterval)
	}
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return fmt.Errorf("heartbeat_interval must be less than orphan_threshold (%s), got %s",
			q.OrphanThreshold, q.HeartbeatInterval)
	}

	return nil
}

func (v *ConfigValidator) validateEvents() error {
	e := v.cfg.Events

	if e.CatchupLimit < 1 {
		return NewValidationError("events", "catchup_limit", fmt.Errorf("must be at least 1"))
	}
	// PostgreSQL NOTIFY payloads cap out just under 8000 bytes
	if e.MaxPayloadBytes < 1024 || e.MaxPayloadBytes > 7999 {
		return NewValidationError("events", "max_payload_bytes",
			fmt.Errorf("must be 1024-7999, got %d", e.MaxPayloadBytes))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	if r.SessionRetentionDays < 1 {
		return NewValidationError("retention", "session_retention_days", fmt.Errorf("must be at least 1"))
	}
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "event_ttl", fmt.Errorf("must be positive"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateSlack() error {
	s := v.cfg.Slack

	if s.Enabled && s.Channel == "" {
		return NewValidationError("slack", "channel",
			fmt.Errorf("required when slack escalation is enabled"))
	}

	return nil
}

func (v *ConfigValidator) validateMasking() error {
	m := v.cfg.Masking

	for _, spec := range m.Patterns {
		if spec.Name == "" {
			return NewValidationError("masking", "patterns",
				fmt.Errorf("pattern without a name"))
		}
		if spec.Replacement == "" {
			return NewValidationError("masking", "patterns",
				fmt.Errorf("pattern %q has no replacement", spec.Name))
		}
		if _, err := regexp.Compile(spec.Pattern); err != nil {
			return NewValidationError("masking", "patterns",
				fmt.Errorf("pattern %q does not compile: %v", spec.Name, err))
		}
	}

	return nil
}
