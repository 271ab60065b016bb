package config

import (
	"strings"

	"github.com/duke-git/lancet/v2/convertor"
	"github.com/duke-git/lancet/v2/slice"
)

// Environment variables overriding file settings.
const (
	EnvOllamaHost        = "OLLAMA_HOST"
	EnvOllamaModel       = "OLLAMA_MODEL"
	EnvOllamaTimeout     = "OLLAMA_TIMEOUT"
	EnvOllamaTemperature = "OLLAMA_TEMPERATURE"
	EnvOllamaMaxTokens   = "OLLAMA_MAX_TOKENS"
	EnvLanguage          = "LEE_LANGUAGE"
	EnvStyle             = "LEE_STYLE"
	EnvAutoCommit        = "LEE_AUTO_COMMIT"
	EnvProvider          = "LEE_PROVIDER"
)

var truthyValues = []string{"true", "1", "yes", "on"}

// applyEnv overrides config with set, non-empty environment variables.
// Numeric values that fail to parse are ignored.
func applyEnv(c *Config, lookup func(string) (string, bool)) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvOllamaHost); ok {
		c.Ollama.Host = normalizeHost(v)
	}
	if v, ok := get(EnvOllamaModel); ok {
		c.Ollama.Model = v
	}
	if v, ok := get(EnvOllamaTimeout); ok {
		if n, err := convertor.ToInt(v); err == nil {
			c.Ollama.Timeout = int(n)
		}
	}
	if v, ok := get(EnvOllamaTemperature); ok {
		if f, err := convertor.ToFloat(v); err == nil {
			c.Ollama.Temperature = f
		}
	}
	if v, ok := get(EnvOllamaMaxTokens); ok {
		if n, err := convertor.ToInt(v); err == nil {
			c.Ollama.MaxTokens = int(n)
		}
	}
	if v, ok := get(EnvLanguage); ok {
		c.Language = strings.ToLower(v)
	}
	if v, ok := get(EnvStyle); ok {
		c.Style = strings.ToLower(v)
	}
	if v, ok := get(EnvAutoCommit); ok {
		c.AutoCommit = slice.Contain(truthyValues, strings.ToLower(v))
	}
	if v, ok := get(EnvProvider); ok {
		c.Provider = strings.ToLower(v)
	}
}

// normalizeHost accepts the scheme-less form Ollama itself uses for
// OLLAMA_HOST, e.g. "127.0.0.1:11434".
func normalizeHost(host string) string {
	if strings.Contains(host, "://") {
		return host
	}
	return "http://" + host
}
