package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/zbiljic/vconfig-go"
)

// loadCreateMigrate loads existing config or creates new one, handling migrations
func loadCreateMigrate() (*Config, error) {
	configPath, err := FindFile()
	if err != nil {
		if os.IsNotExist(err) {
			// no config file found, return default configuration
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	return loadFile(configPath)
}

func loadFile(configPath string) (*Config, error) {
	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// fallback create new config
			return NewDefault(), nil
		}
		return nil, err
	}

	switch version {
	case configVersionV0:
		config, err := vconfig.LoadConfig[configV0](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		return migrateV0(config), nil
	case configVersionV1:
		config, err := vconfig.LoadConfig[configV1](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		config.fillDefaults(raw)
		return config, nil
	default:
		return nil, errUnknownVersion(version)
	}
}

// fillDefaults sets zero-valued fields that a hand-written file may omit.
// Fields where zero is a valid setting are only filled when absent from raw.
func (c *configV1) fillDefaults(raw []byte) {
	d := newConfigV1()

	if c.Provider == "" {
		c.Provider = d.Provider
	}
	if c.Ollama.Host == "" {
		c.Ollama.Host = d.Ollama.Host
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = d.Ollama.Model
	}
	if c.Ollama.Timeout == 0 {
		c.Ollama.Timeout = d.Ollama.Timeout
	}
	if !gjson.GetBytes(raw, "ollama.temperature").Exists() {
		c.Ollama.Temperature = d.Ollama.Temperature
	}
	if c.Ollama.MaxTokens == 0 {
		c.Ollama.MaxTokens = d.Ollama.MaxTokens
	}
	if c.Providers == nil {
		c.Providers = d.Providers
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.Style == "" {
		c.Style = d.Style
	}
	if c.MaxDiffLength == 0 {
		c.MaxDiffLength = d.MaxDiffLength
	}
	if c.MaxFiles == 0 {
		c.MaxFiles = d.MaxFiles
	}
}
