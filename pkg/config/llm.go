package config

import "time"

// LLMConfig defines the chat-completion provider used for intent
// extraction and negotiation prose.
type LLMConfig struct {
	// Endpoint is the chat-completions URL (required).
	Endpoint string `yaml:"endpoint"`

	// APIKeyEnv is the environment variable name holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Model name (required).
	Model string `yaml:"model"`

	// Sampling temperature.
	Temperature float64 `yaml:"temperature,omitempty"`

	// MaxTokens caps each completion.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Timeout bounds a single completion call.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Endpoint:    "https://api.openai.com/v1/chat/completions",
		APIKeyEnv:   "LLM_API_KEY",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   500,
		Timeout:     20 * time.Second,
	}
}
