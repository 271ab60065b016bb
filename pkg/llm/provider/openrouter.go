package provider

import (
	"os"

	"github.com/samber/lo"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel   = "mistralai/devstral-small:free"
)

// NewOpenRouterProvider returns an OpenAI compatible client for OpenRouter.
// OpenRouter asks for the HTTP-Referer and X-Title headers to attribute
// requests.
func NewOpenRouterProvider(opts ...OpenAIOptions) *OpenAI {
	httpReferer := lo.CoalesceOrEmpty(os.Getenv("OPENROUTER_HTTP_REFERER"), "https://github.com/zbiljic/lee")
	xTitle := lo.CoalesceOrEmpty(os.Getenv("OPENROUTER_X_TITLE"), "lee")

	return newOpenAICompatible(OpenAIOptions{
		Name:      "OpenRouter",
		ApiKeyEnv: "OPENROUTER_API_KEY",
		BaseURL:   openRouterBaseURL,
		Model:     openRouterModel,
		Headers: map[string][]string{
			"HTTP-Referer": {httpReferer},
			"X-Title":      {xTitle},
		},
	}, opts...)
}
