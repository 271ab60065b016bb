package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/zbiljic/lee/pkg/llm"
)

const (
	claudeModel = string(anthropic.ModelClaude3_5HaikuLatest)
)

// Compile-time proof of interface implementation.
var _ llm.AIPrompt = (*Claude)(nil)

type ClaudeOptions struct {
	ApiKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

type Claude struct {
	options ClaudeOptions
	client  *anthropic.Client
	log     *zap.Logger
}

func NewClaudeProvider(opts ...ClaudeOptions) (*Claude, error) {
	o := ClaudeOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.ApiKey == "" {
		o.ApiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	if o.Model == "" {
		o.Model = claudeModel
	}

	if o.Timeout <= 0 {
		o.Timeout = DefaultRequestTimeout
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if o.ApiKey == "" {
		return nil, errors.New("anthropic API Key is not set")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(o.ApiKey),
		// a failed call goes straight to the fallback message
		option.WithMaxRetries(0),
	}

	if o.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.BaseURL))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Claude{
		options: o,
		client:  &client,
		log:     o.Logger.With(zap.String("provider", "claude"), zap.String("model", o.Model)),
	}, nil
}

func (c *Claude) String() string {
	return fmt.Sprintf("Claude (%s)", c.options.Model)
}

func (c *Claude) IsAvailable() bool {
	return c.options.ApiKey != ""
}

func (c *Claude) Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	if c.client == nil {
		return "", errors.New("client is not initialized")
	}

	if opts == (llm.GenerateOptions{}) {
		opts = llm.DefaultGenerateOptions()
	}

	ctx, cancel := context.WithTimeout(ctx, c.options.Timeout)
	defer cancel()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.options.Model),
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		MaxTokens:   int64(opts.MaxTokens),
		Temperature: anthropic.Float(opts.Temperature),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.log.Error("request timeout", zap.Duration("timeout", c.options.Timeout))
			return "", fmt.Errorf("%w: request timeout after %s", llm.ErrTransport, c.options.Timeout)
		}
		c.log.Error("request failed", zap.Error(err))
		return "", fmt.Errorf("%w: failed to generate content: %w", llm.ErrTransport, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(textBlock.Text)
		}
	}

	if text.Len() == 0 {
		c.log.Warn("no text content in response", zap.String("stop_reason", string(resp.StopReason)))
	}

	return strings.TrimSpace(text.String()), nil
}
