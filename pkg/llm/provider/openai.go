package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/zbiljic/lee/pkg/llm"
)

const (
	openaiBaseURL = "https://api.openai.com/v1/chat/completions"
	openaiModel   = openai.GPT4oMini
)

// Compile-time proof of interface implementation.
var _ llm.AIPrompt = (*OpenAI)(nil)

// OpenAIOptions configure any backend speaking the OpenAI chat completions
// protocol. The presets in this package fill in Name, BaseURL, Model and
// ApiKeyEnv for known services.
type OpenAIOptions struct {
	Name      string
	ApiKey    string
	ApiKeyEnv string
	BaseURL   string
	Model     string
	Headers   map[string][]string
	Timeout   time.Duration
	Logger    *zap.Logger
}

type OpenAI struct {
	options OpenAIOptions
	log     *zap.Logger
}

func NewOpenAIProvider(opts ...OpenAIOptions) *OpenAI {
	return newOpenAICompatible(OpenAIOptions{
		Name:      "OpenAI",
		ApiKeyEnv: "OPENAI_API_KEY",
		BaseURL:   openaiBaseURL,
		Model:     openaiModel,
	}, opts...)
}

// newOpenAICompatible merges the first of opts over defaults.
func newOpenAICompatible(defaults OpenAIOptions, opts ...OpenAIOptions) *OpenAI {
	o := OpenAIOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.Name == "" {
		o.Name = defaults.Name
	}
	if o.ApiKeyEnv == "" {
		o.ApiKeyEnv = defaults.ApiKeyEnv
	}
	if o.ApiKey == "" && o.ApiKeyEnv != "" {
		o.ApiKey = os.Getenv(o.ApiKeyEnv)
	}
	if o.BaseURL == "" {
		o.BaseURL = defaults.BaseURL
	}
	if o.Model == "" {
		o.Model = defaults.Model
	}
	if o.Headers == nil {
		o.Headers = defaults.Headers
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultRequestTimeout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return &OpenAI{
		options: o,
		log:     o.Logger.With(zap.String("provider", o.Name), zap.String("model", o.Model)),
	}
}

func (p *OpenAI) String() string {
	return fmt.Sprintf("%s (%s)", p.options.Name, p.options.Model)
}

// Timeout returns the bound of a single Generate call.
func (p *OpenAI) Timeout() time.Duration {
	return p.options.Timeout
}

func (p *OpenAI) IsAvailable() bool {
	return p.options.ApiKey != ""
}

func (p *OpenAI) Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	if p.options.ApiKey == "" {
		return "", fmt.Errorf("%s API Key is not set", p.options.Name)
	}

	if opts == (llm.GenerateOptions{}) {
		opts = llm.DefaultGenerateOptions()
	}

	payload := openai.ChatCompletionRequest{
		Model: p.options.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: float32(opts.Temperature),
		TopP:        float32(opts.TopP),
		MaxTokens:   opts.MaxTokens,
		Stream:      false,
		N:           1,
	}

	headers := map[string][]string{
		"Authorization": {fmt.Sprintf("Bearer %s", p.options.ApiKey)},
	}
	for k, v := range p.options.Headers {
		headers[k] = v
	}

	ctx, cancel := context.WithTimeout(ctx, p.options.Timeout)
	defer cancel()

	var (
		respContent openai.ChatCompletionResponse
		respError   openai.ErrorResponse
	)

	err := requests.
		URL(p.options.BaseURL).
		Post().
		Headers(headers).
		BodyJSON(payload).
		ToJSON(&respContent).
		ErrorJSON(&respError).
		Fetch(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.log.Error("request timeout", zap.Duration("timeout", p.options.Timeout))
			return "", fmt.Errorf("%w: %s: request timeout after %s", llm.ErrTransport, p.options.Name, p.options.Timeout)
		}
		if respError.Error != nil && respError.Error.Message != "" {
			err = errors.New(respError.Error.Message)
		}
		p.log.Error("request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", llm.ErrTransport, p.options.Name, err)
	}

	if len(respContent.Choices) == 0 {
		p.log.Warn("no completion choice available")
		return "", nil
	}

	return strings.TrimSpace(respContent.Choices[0].Message.Content), nil
}
