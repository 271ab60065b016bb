package provider

const (
	deepseekBaseURL = "https://api.deepseek.com/v1/chat/completions"
	deepseekModel   = "deepseek-chat"
)

func NewDeepSeekProvider(opts ...OpenAIOptions) *OpenAI {
	return newOpenAICompatible(OpenAIOptions{
		Name:      "DeepSeek",
		ApiKeyEnv: "DEEPSEEK_API_KEY",
		BaseURL:   deepseekBaseURL,
		Model:     deepseekModel,
	}, opts...)
}
