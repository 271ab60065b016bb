package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/zbiljic/lee/pkg/llm"
)

const (
	googleAIModel = "gemini-2.5-flash-preview-09-2025"
)

// Compile-time proof of interface implementation.
var _ llm.AIPrompt = (*GoogleAI)(nil)

// GoogleAIOptions holds configuration for the GoogleAI provider.
type GoogleAIOptions struct {
	ApiKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// GoogleAI is the provider implementation for Google AI Studio using genai library.
type GoogleAI struct {
	options GoogleAIOptions
	client  *genai.Client
	log     *zap.Logger
}

// NewGoogleAIProvider creates a new GoogleAI provider instance.
func NewGoogleAIProvider(ctx context.Context, opts ...GoogleAIOptions) (*GoogleAI, error) {
	o := GoogleAIOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.Model == "" {
		o.Model = googleAIModel
	}

	if o.ApiKey == "" {
		o.ApiKey = os.Getenv("GEMINI_API_KEY")
	}

	if o.Timeout <= 0 {
		o.Timeout = DefaultRequestTimeout
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if o.ApiKey == "" {
		return nil, fmt.Errorf("google AI API Key is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  o.ApiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: o.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	return &GoogleAI{
		options: o,
		client:  client,
		log:     o.Logger.With(zap.String("provider", "googleai"), zap.String("model", o.Model)),
	}, nil
}

func (p *GoogleAI) String() string {
	return fmt.Sprintf("GoogleAI (%s)", p.options.Model)
}

func (p *GoogleAI) IsAvailable() bool {
	return p.options.ApiKey != ""
}

// Generate sends a prompt to the Google AI API and returns the text of the
// first candidate.
func (p *GoogleAI) Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	if p.client == nil {
		return "", errors.New("client is not initialized")
	}

	if opts == (llm.GenerateOptions{}) {
		opts = llm.DefaultGenerateOptions()
	}

	ctx, cancel := context.WithTimeout(ctx, p.options.Timeout)
	defer cancel()

	resp, err := p.client.Models.GenerateContent(
		ctx,
		p.options.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(opts.Temperature)),
			TopP:            genai.Ptr(float32(opts.TopP)),
			TopK:            genai.Ptr(float32(opts.TopK)),
			MaxOutputTokens: int32(opts.MaxTokens),
			CandidateCount:  1,
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.log.Error("request timeout", zap.Duration("timeout", p.options.Timeout))
			return "", fmt.Errorf("%w: request timeout after %s", llm.ErrTransport, p.options.Timeout)
		}
		p.log.Error("request failed", zap.Error(err))
		return "", fmt.Errorf("%w: failed to generate content: %w", llm.ErrTransport, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
			p.log.Warn("prompt blocked", zap.String("reason", string(resp.PromptFeedback.BlockReason)))
		}
		return "", nil
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		p.log.Warn("no text content", zap.String("finish_reason", string(cand.FinishReason)))
		return "", nil
	}

	var text strings.Builder
	for _, part := range cand.Content.Parts {
		text.WriteString(part.Text)
	}

	return strings.TrimSpace(text.String()), nil
}
