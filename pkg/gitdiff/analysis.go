package gitdiff

import (
	"strings"

	"github.com/zbiljic/lee/pkg/commit"
)

var breakingMarkers = []string{
	"breaking change:",
	"breaking change",
	"!!:",
}

// Analysis is the result of analysing one diff. It is built once per
// generation request and not modified afterwards.
type Analysis struct {
	Stats          Stats
	FileTypes      []string
	SuggestedScope string
	SuggestedType  commit.Type
	BreakingChange bool
}

// Analyze parses diff statistics and derives the heuristic classification.
// An empty diff produces a zero analysis.
func Analyze(diff string) Analysis {
	if diff == "" {
		return Analysis{
			Stats:     Stats{Files: []string{}},
			FileTypes: []string{},
		}
	}

	stats := AnalyzeStats(diff)
	c := Classify(diff, stats)

	return Analysis{
		Stats:          stats,
		FileTypes:      c.FileTypes,
		SuggestedScope: c.SuggestedScope,
		SuggestedType:  c.SuggestedType,
		BreakingChange: DetectBreakingChange(diff),
	}
}

// TypeOrChore returns the suggested type, defaulting to chore.
func (a Analysis) TypeOrChore() commit.Type {
	return a.SuggestedType.OrDefault(commit.Chore)
}

// DetectBreakingChange reports whether diff mentions a breaking change
// marker, case-insensitively.
func DetectBreakingChange(diff string) bool {
	lower := strings.ToLower(diff)
	for _, marker := range breakingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
