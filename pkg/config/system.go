package config

import "github.com/moim-labs/moim/pkg/masking"

// SlackConfig holds resolved Slack escalation configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Slack channel ID (e.g., "C12345678")
}

// MaskingConfig holds resolved prose masking configuration.
type MaskingConfig struct {
	Enabled bool
	// Patterns are user-defined redaction patterns applied on top of the
	// built-in ones.
	Patterns []masking.PatternSpec
}
