package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/zbiljic/lee/pkg/llm"
)

const (
	ollamaBaseURL = "http://localhost:11434"
	ollamaModel   = "qwen3:4b"

	// DefaultRequestTimeout bounds a single generate call of any provider.
	DefaultRequestTimeout = 30 * time.Second
	DefaultOllamaTimeout  = DefaultRequestTimeout
	ollamaTagsTimeout     = 10 * time.Second
)

// Compile-time proof of interface implementation.
var (
	_ llm.AIPrompt    = (*Ollama)(nil)
	_ llm.ModelLister = (*Ollama)(nil)
)

type OllamaOptions struct {
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Ollama talks to the generate and tags endpoints of an Ollama server.
type Ollama struct {
	options OllamaOptions
	log     *zap.Logger
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options ollamaSampling `json:"options"`
}

type ollamaSampling struct {
	Temperature   float64 `json:"temperature"`
	NumPredict    int     `json:"num_predict"`
	NumCtx        int     `json:"num_ctx"`
	TopK          int     `json:"top_k"`
	TopP          float64 `json:"top_p"`
	RepeatPenalty float64 `json:"repeat_penalty"`
}

func NewOllamaProvider(opts ...OllamaOptions) *Ollama {
	o := OllamaOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.BaseURL == "" {
		o.BaseURL = ollamaBaseURL
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")

	if o.Model == "" {
		o.Model = ollamaModel
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultOllamaTimeout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return &Ollama{
		options: o,
		log:     o.Logger.With(zap.String("host", o.BaseURL), zap.String("model", o.Model)),
	}
}

func (o *Ollama) String() string {
	return fmt.Sprintf("Ollama (%s)", o.options.Model)
}

// IsAvailable reports whether a host and model are configured. It does not
// contact the server; see CheckConnection.
func (o *Ollama) IsAvailable() bool {
	return o.options.BaseURL != "" && o.options.Model != ""
}

func (o *Ollama) Model() string {
	return o.options.Model
}

func (o *Ollama) Host() string {
	return o.options.BaseURL
}

func (o *Ollama) url(path string) string {
	return o.options.BaseURL + path
}

// Generate posts a single non-streaming request. Only the "response" field
// of the reply is used as output.
func (o *Ollama) Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	if opts == (llm.GenerateOptions{}) {
		opts = llm.DefaultGenerateOptions()
	}

	ctx, cancel := context.WithTimeout(ctx, o.options.Timeout)
	defer cancel()

	payload := ollamaGenerateRequest{
		Model:  o.options.Model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaSampling{
			Temperature:   opts.Temperature,
			NumPredict:    opts.MaxTokens,
			NumCtx:        opts.ContextWindow,
			TopK:          opts.TopK,
			TopP:          opts.TopP,
			RepeatPenalty: opts.RepeatPenalty,
		},
	}

	o.log.Info("sending generate request", zap.Int("prompt_length", len(prompt)))

	start := time.Now()

	var body string

	err := requests.
		URL(o.url("/api/generate")).
		Post().
		BodyJSON(payload).
		ToString(&body).
		Fetch(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			o.log.Error("request timeout", zap.Duration("timeout", o.options.Timeout))
			return "", fmt.Errorf("%w: request timeout after %s", llm.ErrTransport, o.options.Timeout)
		}
		o.log.Error("request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", llm.ErrTransport, err)
	}

	if !gjson.Valid(body) {
		o.log.Error("malformed response body", zap.Int("length", len(body)))
		return "", fmt.Errorf("%w: malformed response body", llm.ErrTransport)
	}

	result := gjson.Parse(body)
	text := strings.TrimSpace(result.Get("response").String())

	o.log.Info("generated response",
		zap.Int("length", len(text)),
		zap.Duration("took", time.Since(start)),
	)

	if text == "" {
		// thinking models may spend the whole budget before answering
		o.log.Warn("empty response",
			zap.Bool("thinking", result.Get("thinking").String() != ""),
			zap.Bool("done", result.Get("done").Bool()),
			zap.String("done_reason", result.Get("done_reason").String()),
			zap.Int64("eval_count", result.Get("eval_count").Int()),
		)
	}

	return text, nil
}

func (o *Ollama) tags(ctx context.Context) ([]gjson.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, ollamaTagsTimeout)
	defer cancel()

	var body string

	err := requests.
		URL(o.url("/api/tags")).
		ToString(&body).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", llm.ErrTransport, err)
	}

	if !gjson.Valid(body) {
		return nil, fmt.Errorf("%w: malformed response body", llm.ErrTransport)
	}

	return gjson.Get(body, "models").Array(), nil
}

// CheckConnection reports whether the server is reachable and lists a model
// whose name contains the configured model.
func (o *Ollama) CheckConnection(ctx context.Context) bool {
	models, err := o.tags(ctx)
	if err != nil {
		o.log.Error("connection failed", zap.Error(err))
		return false
	}

	names := lo.Map(models, func(m gjson.Result, _ int) string {
		return m.Get("name").String()
	})

	available := lo.ContainsBy(names, func(name string) bool {
		return strings.Contains(name, o.options.Model)
	})

	if available {
		o.log.Info("connection successful, model is available")
	} else {
		o.log.Warn("connected but model not found", zap.Strings("available", names))
	}

	return available
}

// ListModels returns the models reported by the server, or an empty slice
// if the server cannot be queried.
func (o *Ollama) ListModels(ctx context.Context) []llm.ModelInfo {
	models, err := o.tags(ctx)
	if err != nil {
		o.log.Error("failed to list models", zap.Error(err))
		return []llm.ModelInfo{}
	}

	return lo.Map(models, func(m gjson.Result, _ int) llm.ModelInfo {
		return llm.ModelInfo{
			Name:       m.Get("name").String(),
			Size:       m.Get("size").Int(),
			Digest:     m.Get("digest").String(),
			ModifiedAt: m.Get("modified_at").Time(),
		}
	})
}
