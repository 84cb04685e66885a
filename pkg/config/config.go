package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Server      *ServerConfig
	Negotiation *NegotiationConfig
	LLM         *LLMConfig
	Calendar    *CalendarConfig
	Queue       *QueueConfig
	Events      *EventsConfig
	Retention   *RetentionConfig
	Slack       *SlackConfig
	Masking     *MaskingConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
