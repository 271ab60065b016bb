package config

import (
	"time"

	"github.com/zbiljic/lee/pkg/commit"
)

// Config represents the current version of configuration
type Config = configV1

// Type aliases for external packages
type (
	OllamaConfig   = ollamaConfigV1
	ProviderConfig = providerConfigV1
)

// NewDefault creates a new configuration
func NewDefault() *Config {
	return newConfigV1()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validateV1()
}

// LanguageValue returns the parsed language, English if it is not valid.
func (c *Config) LanguageValue() commit.Language {
	lang, err := commit.ParseLanguage(c.Language)
	if err != nil {
		return commit.English
	}
	return lang
}

// StyleValue returns the parsed style, conventional if it is not valid.
func (c *Config) StyleValue() commit.CommitStyle {
	style, err := commit.ParseStyle(c.Style)
	if err != nil {
		return commit.ConventionalStyle
	}
	return style
}

// TimeoutDuration returns the Ollama request timeout.
func (c *OllamaConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ProviderSettings returns settings for a hosted provider, or zero values.
func (c *Config) ProviderSettings(name string) ProviderConfig {
	if c.Providers == nil {
		return ProviderConfig{}
	}
	return c.Providers[name]
}
