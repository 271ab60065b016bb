package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbiljic/lee/pkg/commit"
)

// isolate points HOME and the working directory at fresh temp dirs and
// clears every override variable.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	work := filepath.Join(home, "project")
	require.NoError(t, os.MkdirAll(work, 0o755))

	t.Setenv("HOME", home)
	t.Chdir(work)

	for _, key := range []string{
		EnvOllamaHost, EnvOllamaModel, EnvOllamaTimeout, EnvOllamaTemperature,
		EnvOllamaMaxTokens, EnvLanguage, EnvStyle, EnvAutoCommit, EnvProvider,
	} {
		t.Setenv(key, "")
	}

	ResetCache()
	t.Cleanup(ResetCache)

	return work
}

func TestNewDefault(t *testing.T) {
	c := NewDefault()

	require.NoError(t, c.Validate())
	assert.Equal(t, configVersionV1, c.Version)
	assert.Equal(t, "ollama", c.Provider)
	assert.Equal(t, "http://localhost:11434", c.Ollama.Host)
	assert.Equal(t, "qwen3:4b", c.Ollama.Model)
	assert.Equal(t, 30*time.Second, c.Ollama.TimeoutDuration())
	assert.InDelta(t, 0.7, c.Ollama.Temperature, 1e-9)
	assert.Equal(t, 500, c.Ollama.MaxTokens)
	assert.Equal(t, commit.English, c.LanguageValue())
	assert.Equal(t, commit.ConventionalStyle, c.StyleValue())
	assert.False(t, c.AutoCommit)
	assert.Equal(t, 5000, c.MaxDiffLength)
	assert.Equal(t, 5, c.MaxFiles)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown provider", func(c *Config) { c.Provider = "cohere" }},
		{"unknown provider section", func(c *Config) { c.Providers["nope"] = ProviderConfig{} }},
		{"host without scheme", func(c *Config) { c.Ollama.Host = "localhost:11434" }},
		{"empty model", func(c *Config) { c.Ollama.Model = "" }},
		{"zero timeout", func(c *Config) { c.Ollama.Timeout = 0 }},
		{"temperature too high", func(c *Config) { c.Ollama.Temperature = 3 }},
		{"zero max tokens", func(c *Config) { c.Ollama.MaxTokens = 0 }},
		{"unknown language", func(c *Config) { c.Language = "fr" }},
		{"unknown style", func(c *Config) { c.Style = "fancy" }},
		{"negative max files", func(c *Config) { c.MaxFiles = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDefault()
			tt.modify(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvOllamaHost:        "https://ollama.example.com",
		EnvOllamaModel:       "llama3",
		EnvOllamaTimeout:     "45",
		EnvOllamaTemperature: "0.2",
		EnvOllamaMaxTokens:   "plenty",
		EnvLanguage:          "ID",
		EnvStyle:             "emoji",
		EnvAutoCommit:        "yes",
		EnvProvider:          "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	c := NewDefault()
	applyEnv(c, lookup)

	assert.Equal(t, "https://ollama.example.com", c.Ollama.Host)
	assert.Equal(t, "llama3", c.Ollama.Model)
	assert.Equal(t, 45, c.Ollama.Timeout)
	assert.InDelta(t, 0.2, c.Ollama.Temperature, 1e-9)
	assert.Equal(t, 500, c.Ollama.MaxTokens, "unparsable value is ignored")
	assert.Equal(t, commit.Indonesian, c.LanguageValue())
	assert.Equal(t, commit.EmojiStyle, c.StyleValue())
	assert.True(t, c.AutoCommit)
	assert.Equal(t, "ollama", c.Provider, "empty value is ignored")
	require.NoError(t, c.Validate())
}

func TestApplyEnvHostWithoutScheme(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"127.0.0.1:11434", "http://127.0.0.1:11434"},
		{"gpu-box:11434", "http://gpu-box:11434"},
		{"https://ollama.example.com", "https://ollama.example.com"},
	}

	for _, tt := range tests {
		c := NewDefault()
		applyEnv(c, func(key string) (string, bool) {
			if key == EnvOllamaHost {
				return tt.value, true
			}
			return "", false
		})

		assert.Equal(t, tt.expected, c.Ollama.Host, tt.value)
		assert.NoError(t, c.Validate(), tt.value)
	}
}

func TestLoadHostWithoutScheme(t *testing.T) {
	isolate(t)
	t.Setenv(EnvOllamaHost, "127.0.0.1:11434")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:11434", c.Ollama.Host)
}

func TestApplyEnvAutoCommitFalse(t *testing.T) {
	for _, v := range []string{"false", "0", "no", "maybe"} {
		c := NewDefault()
		c.AutoCommit = true
		applyEnv(c, func(key string) (string, bool) {
			if key == EnvAutoCommit {
				return v, true
			}
			return "", false
		})
		assert.False(t, c.AutoCommit, v)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	isolate(t)
	t.Setenv(EnvOllamaModel, "qwen3:8b")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "qwen3:8b", c.Ollama.Model)
	assert.Equal(t, defaultOllamaHost, c.Ollama.Host)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestSaveAndLoad(t *testing.T) {
	work := isolate(t)

	c := NewDefault()
	c.Ollama.Host = "http://gpu-box:11434"
	c.Language = "id"
	c.AutoCommit = true

	path := filepath.Join(work, ".lee.json")
	require.NoError(t, Save(c, path))

	found, ok := GetPath()
	require.True(t, ok)
	assert.Equal(t, path, found)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	fromFile, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, c, fromFile)
}

func TestSaveRejectsInvalid(t *testing.T) {
	work := isolate(t)

	c := NewDefault()
	c.Style = "fancy"

	assert.Error(t, Save(c, filepath.Join(work, ".lee.json")))
	assert.ErrorIs(t, Save(nil, "x"), errInvalidArgument)
	assert.ErrorIs(t, Save(NewDefault(), ""), errInvalidArgument)
}

func TestLoadMigratesV0(t *testing.T) {
	work := isolate(t)

	require.NoError(t, os.WriteFile(filepath.Join(work, "lee.json"), []byte(`{"version":"0"}`), 0o644))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, NewDefault(), c)
}

func TestLoadPartialV1(t *testing.T) {
	work := isolate(t)

	body := `{"version":"1","ollama":{"host":"http://10.0.0.2:11434"},"style":"simple"}`
	require.NoError(t, os.WriteFile(filepath.Join(work, ".lee.json"), []byte(body), 0o644))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:11434", c.Ollama.Host)
	assert.Equal(t, defaultOllamaModel, c.Ollama.Model)
	assert.Equal(t, commit.SimpleStyle, c.StyleValue())
	assert.Equal(t, commit.English, c.LanguageValue())
}

func TestLoadTemperature(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected float64
	}{
		{"omitted", `{"version":"1","ollama":{"model":"llama3"}}`, defaultTemperature},
		{"no ollama section", `{"version":"1"}`, defaultTemperature},
		{"explicit zero", `{"version":"1","ollama":{"temperature":0}}`, 0},
		{"explicit value", `{"version":"1","ollama":{"temperature":1.2}}`, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := isolate(t)
			require.NoError(t, os.WriteFile(filepath.Join(work, ".lee.json"), []byte(tt.body), 0o644))

			c, err := Load()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, c.Ollama.Temperature, 1e-9)
		})
	}
}

func TestLoadUnknownVersion(t *testing.T) {
	work := isolate(t)

	require.NoError(t, os.WriteFile(filepath.Join(work, ".lee.json"), []byte(`{"version":"9"}`), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestGetSearchPaths(t *testing.T) {
	work := isolate(t)
	home := filepath.Dir(work)

	paths := GetSearchPaths()
	require.GreaterOrEqual(t, len(paths), 4)

	assert.Equal(t, filepath.Join(work, ".lee.json"), paths[0])
	assert.Equal(t, filepath.Join(work, "lee.json"), paths[1])
	assert.Equal(t, filepath.Join(home, ".config", "lee", "lee.json"), paths[len(paths)-2])
	assert.Equal(t, filepath.Join(home, ".lee.json"), paths[len(paths)-1])
	assert.Equal(t, GetDefaultPath(), paths[len(paths)-2])
}
