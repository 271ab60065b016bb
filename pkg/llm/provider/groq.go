package provider

const (
	groqBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	groqModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
)

func NewGroqProvider(opts ...OpenAIOptions) *OpenAI {
	return newOpenAICompatible(OpenAIOptions{
		Name:      "Groq",
		ApiKeyEnv: "GROQ_API_KEY",
		BaseURL:   groqBaseURL,
		Model:     groqModel,
	}, opts...)
}
