package config

import "time"

// NegotiationConfig controls how agent-to-agent scheduling rounds run.
type NegotiationConfig struct {
	// MaxRounds is the hard cap on negotiation rounds before the session
	// is handed back to humans.
	MaxRounds int `yaml:"max_rounds"`

	// StepDelay is the pause between visible negotiation steps so
	// transcript watchers can follow along.
	StepDelay time.Duration `yaml:"step_delay"`

	// DeadlockRounds is how many consecutive rounds a participant may
	// repeat the identical counter-slot before the session is declared
	// deadlocked.
	DeadlockRounds int `yaml:"deadlock_rounds"`

	// Timezone is the IANA zone all civil-time reasoning happens in.
	Timezone string `yaml:"timezone"`

	// PlanningHorizonDays bounds how far ahead agents look when the user
	// gives no explicit date.
	PlanningHorizonDays int `yaml:"planning_horizon_days"`

	// DefaultDurationMinutes is the assumed meeting length when the
	// request does not state one.
	DefaultDurationMinutes int `yaml:"default_duration_minutes"`
}

// DefaultNegotiationConfig returns the built-in negotiation defaults.
func DefaultNegotiationConfig() *NegotiationConfig {
	return &NegotiationConfig{
		MaxRounds:              5,
		StepDelay:              400 * time.Millisecond,
		DeadlockRounds:         2,
		Timezone:               "Asia/Seoul",
		PlanningHorizonDays:    14,
		DefaultDurationMinutes: 120,
	}
}

// Location resolves the configured timezone. Validation guarantees it loads.
func (c *NegotiationConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
