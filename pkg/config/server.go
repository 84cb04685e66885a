package config

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// DashboardURL is the frontend origin, used for CORS and WebSocket
	// origin checks.
	DashboardURL string `yaml:"dashboard_url"`

	// AllowedWSOrigins are additional WebSocket origin patterns beyond the
	// dashboard URL (e.g. "https://*.moim.example.com").
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		DashboardURL: "http://localhost:5173",
	}
}
