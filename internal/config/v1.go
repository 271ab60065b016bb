package config

import (
	"fmt"
	"net/url"

	"github.com/duke-git/lancet/v2/slice"

	"github.com/zbiljic/lee/pkg/commit"
)

const configVersionV1 = "1"

const (
	defaultProvider    = "ollama"
	defaultOllamaHost  = "http://localhost:11434"
	defaultOllamaModel = "qwen3:4b"
	defaultTimeout     = 30
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
	defaultMaxDiff     = 5000
	defaultMaxFiles    = 5
)

// KnownProviders lists the accepted values of the provider setting.
var KnownProviders = []string{
	"ollama",
	"openai",
	"claude",
	"googleai",
	"openrouter",
	"groq",
	"deepseek",
}

type configV1 struct {
	Version        string                      `json:"version"` // required by vconfig-go
	Provider       string                      `json:"provider"`
	Ollama         ollamaConfigV1              `json:"ollama"`
	Providers      map[string]providerConfigV1 `json:"providers,omitempty"`
	Language       string                      `json:"language"`
	Style          string                      `json:"style"`
	AutoCommit     bool                        `json:"auto_commit"`
	DetectBreaking bool                        `json:"detect_breaking,omitempty"`
	MaxDiffLength  int                         `json:"max_diff_length,omitempty"`
	MaxFiles       int                         `json:"max_files,omitempty"`
}

// ollamaConfigV1 configures the default generation backend
type ollamaConfigV1 struct {
	Host        string  `json:"host"`
	Model       string  `json:"model"`
	Timeout     int     `json:"timeout"` // seconds
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// providerConfigV1 holds optional settings for a hosted provider. Empty
// fields fall back to the provider defaults and environment variables.
type providerConfigV1 struct {
	BaseURL string `json:"base_url,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	Model   string `json:"model,omitempty"`
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version:  configVersionV1,
		Provider: defaultProvider,
		Ollama: ollamaConfigV1{
			Host:        defaultOllamaHost,
			Model:       defaultOllamaModel,
			Timeout:     defaultTimeout,
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		},
		Providers:     map[string]providerConfigV1{},
		Language:      commit.English.ToString(),
		Style:         commit.ConventionalStyle.ToString(),
		AutoCommit:    false,
		MaxDiffLength: defaultMaxDiff,
		MaxFiles:      defaultMaxFiles,
	}
}

func (c *configV1) validateV1() error {
	if !slice.Contain(KnownProviders, c.Provider) {
		return fmt.Errorf("unknown provider '%s'", c.Provider)
	}

	for name := range c.Providers {
		if !slice.Contain(KnownProviders, name) {
			return fmt.Errorf("unknown provider '%s' in providers section", name)
		}
	}

	u, err := url.Parse(c.Ollama.Host)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid ollama host '%s'", c.Ollama.Host)
	}

	if c.Ollama.Model == "" {
		return fmt.Errorf("ollama model is required")
	}

	if c.Ollama.Timeout <= 0 {
		return fmt.Errorf("ollama timeout must be positive, got %d", c.Ollama.Timeout)
	}

	if c.Ollama.Temperature < 0 || c.Ollama.Temperature > 2 {
		return fmt.Errorf("ollama temperature must be between 0 and 2, got %g", c.Ollama.Temperature)
	}

	if c.Ollama.MaxTokens <= 0 {
		return fmt.Errorf("ollama max_tokens must be positive, got %d", c.Ollama.MaxTokens)
	}

	if _, err := commit.ParseLanguage(c.Language); err != nil {
		return err
	}

	if _, err := commit.ParseStyle(c.Style); err != nil {
		return err
	}

	if c.MaxDiffLength < 0 {
		return fmt.Errorf("max_diff_length must not be negative")
	}

	if c.MaxFiles < 0 {
		return fmt.Errorf("max_files must not be negative")
	}

	return nil
}
