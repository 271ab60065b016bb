package cmd

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/zbiljic/lee/internal/config"
	"github.com/zbiljic/lee/pkg/llm"
	"github.com/zbiljic/lee/pkg/llm/provider"
)

// resolveProvider picks the provider from the flag when it was given,
// otherwise from the config file.
func resolveProvider(cfg *config.Config, f llmFlags, flagChanged bool) ProviderType {
	if flagChanged {
		return f.Provider
	}
	if p, ok := parseProviderType(cfg.Provider); ok {
		return p
	}
	return OllamaProvider
}

// newOllamaFromConfig builds the Ollama client with flag overrides applied.
func newOllamaFromConfig(cfg *config.Config, f llmFlags, log *zap.Logger) *provider.Ollama {
	return provider.NewOllamaProvider(provider.OllamaOptions{
		BaseURL: lo.CoalesceOrEmpty(f.Host, cfg.Ollama.Host),
		Model:   lo.CoalesceOrEmpty(f.Model, cfg.Ollama.Model),
		Timeout: cfg.Ollama.TimeoutDuration(),
		Logger:  log,
	})
}

// initializeLLMProvider initializes an LLM provider based on provider type and model.
// A hosted provider that cannot be used (missing API key) falls back to Ollama.
func initializeLLMProvider(ctx context.Context, cfg *config.Config, providerType ProviderType, f llmFlags, log *zap.Logger) llm.AIPrompt {
	if providerType == OllamaProvider {
		return newOllamaFromConfig(cfg, f, log)
	}

	settings := cfg.ProviderSettings(providerType.ToString())
	model := lo.CoalesceOrEmpty(f.Model, settings.Model)

	// hosted requests share the Ollama timeout setting
	timeout := cfg.Ollama.TimeoutDuration()

	openAIOpts := provider.OpenAIOptions{
		ApiKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   model,
		Timeout: timeout,
		Logger:  log,
	}

	var (
		aip llm.AIPrompt
		err error
	)

	switch providerType {
	case OpenAIProvider:
		aip = provider.NewOpenAIProvider(openAIOpts)
	case OpenRouterProvider:
		aip = provider.NewOpenRouterProvider(openAIOpts)
	case GroqProvider:
		aip = provider.NewGroqProvider(openAIOpts)
	case DeepSeekProvider:
		aip = provider.NewDeepSeekProvider(openAIOpts)
	case ClaudeProvider:
		aip, err = provider.NewClaudeProvider(provider.ClaudeOptions{
			ApiKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   model,
			Timeout: timeout,
			Logger:  log,
		})
	case GoogleAIProvider:
		aip, err = provider.NewGoogleAIProvider(ctx, provider.GoogleAIOptions{
			ApiKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   model,
			Timeout: timeout,
			Logger:  log,
		})
	}

	if err == nil && aip != nil && aip.IsAvailable() {
		return aip
	}

	log.Warn("provider unavailable, using ollama",
		zap.String("provider", providerType.ToString()),
		zap.Error(err),
	)

	// the model flag names a hosted model, do not pass it on
	f.Model = ""
	return newOllamaFromConfig(cfg, f, log)
}

// generateOptionsFromConfig returns sampling settings with the configured
// temperature and token budget.
func generateOptionsFromConfig(cfg *config.Config) llm.GenerateOptions {
	opts := llm.DefaultGenerateOptions()
	opts.Temperature = cfg.Ollama.Temperature
	opts.MaxTokens = cfg.Ollama.MaxTokens
	return opts
}
