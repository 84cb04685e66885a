package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/moim-labs/moim/pkg/masking"
)

// MoimYAMLConfig represents the complete moim.yaml file structure.
// Every section is optional; missing sections fall back to built-in defaults.
type MoimYAMLConfig struct {
	Server      *ServerConfig      `yaml:"server"`
	Negotiation *NegotiationConfig `yaml:"negotiation"`
	LLM         *LLMConfig         `yaml:"llm"`
	Calendar    *CalendarConfig    `yaml:"calendar"`
	Queue       *QueueConfig       `yaml:"queue"`
	Events      *EventsConfig      `yaml:"events"`
	Retention   *RetentionConfig   `yaml:"retention"`
	Slack       *SlackYAMLConfig   `yaml:"slack"`
	Masking     *MaskingYAMLConfig `yaml:"masking"`
}

// SlackYAMLConfig holds Slack escalation settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// MaskingYAMLConfig holds prose masking settings from YAML.
type MaskingYAMLConfig struct {
	Enabled  *bool                 `yaml:"enabled,omitempty"`
	Patterns []masking.PatternSpec `yaml:"patterns,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load moim.yaml from configDir (missing file = all defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-defined sections over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"max_rounds", cfg.Negotiation.MaxRounds,
		"timezone", cfg.Negotiation.Timezone,
		"workers", cfg.Queue.WorkerCount,
		"slack_enabled", cfg.Slack.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	moimConfig, err := loader.loadMoimYAML()
	if err != nil {
		return nil, NewLoadError("moim.yaml", err)
	}

	// Merge user sections over built-in defaults (non-zero values override).
	// Start with defaults, then merge user config on top to preserve unset
	// defaults.
	serverCfg := DefaultServerConfig()
	if moimConfig.Server != nil {
		if err := mergo.Merge(serverCfg, moimConfig.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	negotiationCfg := DefaultNegotiationConfig()
	if moimConfig.Negotiation != nil {
		if err := mergo.Merge(negotiationCfg, moimConfig.Negotiation, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge negotiation config: %w", err)
		}
	}

	llmCfg := DefaultLLMConfig()
	if moimConfig.LLM != nil {
		if err := mergo.Merge(llmCfg, moimConfig.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	calendarCfg := DefaultCalendarConfig()
	if moimConfig.Calendar != nil {
		if err := mergo.Merge(calendarCfg, moimConfig.Calendar, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge calendar config: %w", err)
		}
	}

	queueCfg := DefaultQueueConfig()
	if moimConfig.Queue != nil {
		if err := mergo.Merge(queueCfg, moimConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	eventsCfg := DefaultEventsConfig()
	if moimConfig.Events != nil {
		if err := mergo.Merge(eventsCfg, moimConfig.Events, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge events config: %w", err)
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if moimConfig.Retention != nil {
		if err := mergo.Merge(retentionCfg, moimConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir:   configDir,
		Server:      serverCfg,
		Negotiation: negotiationCfg,
		LLM:         llmCfg,
		Calendar:    calendarCfg,
		Queue:       queueCfg,
		Events:      eventsCfg,
		Retention:   retentionCfg,
		Slack:       resolveSlackConfig(moimConfig.Slack),
		Masking:     resolveMaskingConfig(moimConfig.Masking),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadMoimYAML() (*MoimYAMLConfig, error) {
	var config MoimYAMLConfig

	if err := l.loadYAML("moim.yaml", &config); err != nil {
		// A missing file is fine: the app runs on built-in defaults plus
		// environment variables.
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No moim.yaml found, using built-in defaults",
				"config_dir", l.configDir)
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveSlackConfig resolves Slack configuration from YAML, applying defaults.
func resolveSlackConfig(s *SlackYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if s == nil {
		return cfg
	}

	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveMaskingConfig resolves prose masking configuration from YAML,
// applying defaults. Masking is on unless explicitly disabled.
func resolveMaskingConfig(m *MaskingYAMLConfig) *MaskingConfig {
	cfg := &MaskingConfig{
		Enabled: true,
	}

	if m == nil {
		return cfg
	}

	if m.Enabled != nil {
		cfg.Enabled = *m.Enabled
	}
	cfg.Patterns = m.Patterns

	return cfg
}
