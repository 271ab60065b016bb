package llm

import (
	"context"
	"time"
)

// Sampling defaults used for commit message generation.
const (
	DefaultTemperature   = 0.7
	DefaultMaxTokens     = 500
	DefaultContextWindow = 4096
	DefaultTopK          = 20
	DefaultTopP          = 0.9
	DefaultRepeatPenalty = 1.1
)

// GenerateOptions are the sampling parameters passed to a provider. Providers
// ignore the fields their backend does not support.
type GenerateOptions struct {
	Temperature   float64
	MaxTokens     int
	ContextWindow int
	TopK          int
	TopP          float64
	RepeatPenalty float64
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Temperature:   DefaultTemperature,
		MaxTokens:     DefaultMaxTokens,
		ContextWindow: DefaultContextWindow,
		TopK:          DefaultTopK,
		TopP:          DefaultTopP,
		RepeatPenalty: DefaultRepeatPenalty,
	}
}

// AIPrompt is an interface for generating text from a prompt.
type AIPrompt interface {
	// String returns the name of the provider.
	String() string

	// IsAvailable checks if the provider has all required configuration (e.g. API keys)
	// to be used. Returns true if the provider can be used, false otherwise.
	IsAvailable() bool

	// Generate sends a single prompt and returns the generated text. An empty
	// string with a nil error means the backend answered but produced no
	// text. Failures to reach the backend wrap ErrTransport.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// ModelInfo describes a model reported by the backend.
type ModelInfo struct {
	Name       string
	Size       int64
	Digest     string
	ModifiedAt time.Time
}

// ModelLister is implemented by providers that can report connectivity and
// installed models. Neither method returns an error; failures are reported
// as false or an empty list.
type ModelLister interface {
	CheckConnection(ctx context.Context) bool
	ListModels(ctx context.Context) []ModelInfo
}
