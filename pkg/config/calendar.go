package config

import "time"

// CalendarConfig defines the Google Calendar integration.
type CalendarConfig struct {
	// BaseURL is the calendar REST API root (overridable for tests).
	BaseURL string `yaml:"base_url"`

	// TokenURL is the OAuth token endpoint used for refresh grants.
	TokenURL string `yaml:"token_url"`

	// ClientIDEnv / ClientSecretEnv name the environment variables
	// holding the OAuth client credentials.
	ClientIDEnv     string `yaml:"client_id_env,omitempty"`
	ClientSecretEnv string `yaml:"client_secret_env,omitempty"`

	// Timeout bounds a single calendar API call.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// DefaultCalendarConfig returns the built-in calendar defaults.
func DefaultCalendarConfig() *CalendarConfig {
	return &CalendarConfig{
		BaseURL:         "https://www.googleapis.com/calendar/v3",
		TokenURL:        "https://oauth2.googleapis.com/token",
		ClientIDEnv:     "GOOGLE_CLIENT_ID",
		ClientSecretEnv: "GOOGLE_CLIENT_SECRET",
		Timeout:         15 * time.Second,
	}
}
