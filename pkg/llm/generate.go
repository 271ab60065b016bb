package llm

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/zbiljic/lee/pkg/commit"
	"github.com/zbiljic/lee/pkg/gitdiff"
)

type GeneratorOptions struct {
	Language commit.Language
	Generate GenerateOptions

	// MaxDiffLength bounds the diff embedded in the prompt, in characters.
	MaxDiffLength int
	// MaxFiles is the number of file segments kept when a diff touches more
	// files than that.
	MaxFiles int

	// DetectBreaking copies the analysis breaking change flag onto the
	// resulting message.
	DetectBreaking bool

	Logger *zap.Logger
}

// Generator produces commit messages for diffs. It holds no mutable state
// and may be used for any number of requests.
type Generator struct {
	aip     AIPrompt
	options GeneratorOptions
}

func NewGenerator(aip AIPrompt, opts ...GeneratorOptions) *Generator {
	o := GeneratorOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.Generate == (GenerateOptions{}) {
		o.Generate = DefaultGenerateOptions()
	}
	if o.MaxDiffLength <= 0 {
		o.MaxDiffLength = gitdiff.DefaultMaxDiffLength
	}
	if o.MaxFiles <= 0 {
		o.MaxFiles = gitdiff.DefaultMaxFiles
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return &Generator{
		aip:     aip,
		options: o,
	}
}

// Generate analyses diff and returns a commit message for it. Backend
// failures never surface as errors; the message is then built by Fallback.
func (g *Generator) Generate(ctx context.Context, diff string) (commit.Message, error) {
	if strings.TrimSpace(diff) == "" {
		return commit.Message{}, ErrEmptyDiff
	}

	return g.generate(ctx, diff, gitdiff.Analyze(diff)), nil
}

// GenerateWithAnalysis is like Generate but reuses an existing analysis of
// diff.
func (g *Generator) GenerateWithAnalysis(ctx context.Context, diff string, analysis gitdiff.Analysis) (commit.Message, error) {
	if strings.TrimSpace(diff) == "" {
		return commit.Message{}, ErrEmptyDiff
	}

	return g.generate(ctx, diff, analysis), nil
}

func (g *Generator) generate(ctx context.Context, diff string, analysis gitdiff.Analysis) commit.Message {
	log := g.options.Logger

	cleaned := gitdiff.Sanitize(diff, g.options.MaxDiffLength)
	if analysis.Stats.FilesChanged > g.options.MaxFiles {
		cleaned = gitdiff.ChunkByFiles(cleaned, g.options.MaxFiles)
		log.Info("chunked diff",
			zap.Int("from", len(diff)),
			zap.Int("to", len(cleaned)),
			zap.Int("files", analysis.Stats.FilesChanged),
		)
	}

	msg, err := g.complete(ctx, cleaned, analysis)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyGeneration):
			log.Warn("empty response from provider, using fallback", zap.Stringer("provider", g.aip))
		case errors.Is(err, ErrTransport):
			log.Error("provider unreachable, using fallback", zap.Stringer("provider", g.aip), zap.Error(err))
		default:
			log.Error("failed to generate commit message, using fallback", zap.Error(err))
		}
		msg = Fallback(analysis, g.options.Language)
	}

	if g.options.DetectBreaking && analysis.BreakingChange {
		msg.BreakingChange = true
	}

	return msg
}

func (g *Generator) complete(ctx context.Context, diff string, analysis gitdiff.Analysis) (commit.Message, error) {
	prompt, err := BuildPrompt(diff, analysis, g.options.Language)
	if err != nil {
		return commit.Message{}, err
	}

	g.options.Logger.Debug("sending prompt",
		zap.Stringer("provider", g.aip),
		zap.Int("length", len(prompt)),
	)

	raw, err := g.aip.Generate(ctx, prompt, g.options.Generate)
	if err != nil {
		return commit.Message{}, err
	}

	if strings.TrimSpace(raw) == "" {
		return commit.Message{}, ErrEmptyGeneration
	}

	return ParseResponse(raw, analysis, g.options.Language), nil
}
