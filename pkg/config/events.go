package config

// EventsConfig controls the durable event stream behind the WebSocket layer.
type EventsConfig struct {
	// CatchupLimit is the maximum number of persisted events replayed to a
	// reconnecting subscriber.
	CatchupLimit int `yaml:"catchup_limit"`

	// MaxPayloadBytes caps a single NOTIFY payload. PostgreSQL rejects
	// payloads near 8000 bytes, so oversized events are truncated to an
	// envelope before publishing.
	MaxPayloadBytes int `yaml:"max_payload_bytes"`
}

// DefaultEventsConfig returns the built-in event stream defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		CatchupLimit:    200,
		MaxPayloadBytes: 7900,
	}
}
