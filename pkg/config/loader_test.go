package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "moim.yaml"), []byte(content), 0o644))
}

func TestInitializeWithDefaults(t *testing.T) {
	// Empty directory: no moim.yaml at all
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Negotiation.MaxRounds)
	assert.Equal(t, 400*time.Millisecond, cfg.Negotiation.StepDelay)
	assert.Equal(t, 2, cfg.Negotiation.DeadlockRounds)
	assert.Equal(t, "Asia/Seoul", cfg.Negotiation.Timezone)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 200, cfg.Events.CatchupLimit)
	assert.Equal(t, 7900, cfg.Events.MaxPayloadBytes)
	assert.False(t, cfg.Slack.Enabled)
	assert.True(t, cfg.Masking.Enabled)
	assert.Equal(t, 365, cfg.Retention.SessionRetentionDays)
}

func TestInitializeMergesUserSections(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
negotiation:
  max_rounds: 7
  step_delay: 300ms

queue:
  worker_count: 2

slack:
  enabled: true
  channel: C12345678

masking:
  patterns:
    - name: employee_id
      pattern: 'EMP-[0-9]{6}'
      replacement: '[사번]'
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 7, cfg.Negotiation.MaxRounds)
	assert.Equal(t, 300*time.Millisecond, cfg.Negotiation.StepDelay)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "C12345678", cfg.Slack.Channel)
	require.Len(t, cfg.Masking.Patterns, 1)
	assert.Equal(t, "employee_id", cfg.Masking.Patterns[0].Name)

	// Untouched defaults survive the merge
	assert.Equal(t, 2, cfg.Negotiation.DeadlockRounds)
	assert.Equal(t, "Asia/Seoul", cfg.Negotiation.Timezone)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentSessions)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_MOIM_CHANNEL", "C99999999")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
slack:
  enabled: true
  channel: "{{.TEST_MOIM_CHANNEL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "C99999999", cfg.Slack.Channel)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "negotiation:\n  max_rounds: [not a number\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			name:    "zero max rounds",
			yaml:    "negotiation:\n  max_rounds: -1\n",
			errPart: "max_rounds",
		},
		{
			name:    "bad timezone",
			yaml:    "negotiation:\n  timezone: Mars/Olympus\n",
			errPart: "timezone",
		},
		{
			name:    "deadlock window below two rounds",
			yaml:    "negotiation:\n  deadlock_rounds: 1\n",
			errPart: "deadlock_rounds",
		},
		{
			name:    "slack enabled without channel",
			yaml:    "slack:\n  enabled: true\n",
			errPart: "channel",
		},
		{
			name:    "broken masking pattern",
			yaml:    "masking:\n  patterns:\n    - name: broken\n      pattern: '['\n      replacement: x\n",
			errPart: "does not compile",
		},
		{
			name:    "notify payload cap too large",
			yaml:    "events:\n  max_payload_bytes: 9000\n",
			errPart: "max_payload_bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfigFile(t, dir, tt.yaml)

			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestNegotiationLocation(t *testing.T) {
	cfg := DefaultNegotiationConfig()
	loc := cfg.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "Asia/Seoul", loc.String())

	cfg.Timezone = "definitely/not-a-zone"
	assert.Equal(t, time.UTC, cfg.Location())
}
