package cmd

import (
	"github.com/thediveo/enumflag/v2"
)

// ProviderType represents the supported LLM providers.
type ProviderType enumflag.Flag

const (
	// OllamaProvider represents a local or remote Ollama server.
	OllamaProvider ProviderType = iota
	// OpenAIProvider represents the OpenAI provider.
	OpenAIProvider
	// ClaudeProvider represents the Claude provider.
	ClaudeProvider
	// GoogleAIProvider represents the GoogleAI provider.
	GoogleAIProvider
	// OpenRouterProvider represents the OpenRouter provider.
	OpenRouterProvider
	// GroqProvider represents the Groq provider.
	GroqProvider
	// DeepSeekProvider represents the DeepSeek provider.
	DeepSeekProvider
)

// ProviderIds maps ProviderType to their string representations. The first
// id of each entry matches the provider setting in the config file.
var ProviderIds = map[ProviderType][]string{
	OllamaProvider:     {"ollama"},
	OpenAIProvider:     {"openai"},
	ClaudeProvider:     {"claude"},
	GoogleAIProvider:   {"googleai", "gemini"},
	OpenRouterProvider: {"openrouter"},
	GroqProvider:       {"groq"},
	DeepSeekProvider:   {"deepseek"},
}

// ToString returns the config name of the provider.
func (p ProviderType) ToString() string {
	return ProviderIds[p][0]
}

// parseProviderType maps a config name to its ProviderType.
func parseProviderType(name string) (ProviderType, bool) {
	for p, ids := range ProviderIds {
		for _, id := range ids {
			if id == name {
				return p, true
			}
		}
	}
	return OllamaProvider, false
}
