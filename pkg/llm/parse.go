package llm

import (
	"strings"

	"github.com/duke-git/lancet/v2/slice"

	"github.com/zbiljic/lee/pkg/commit"
	"github.com/zbiljic/lee/pkg/gitdiff"
)

// ParseResponse turns raw model output into a Message. The first line is
// read as the header; an unknown type token is replaced by the analysis
// suggestion. Output that does not look like a header at all becomes the
// subject verbatim. Blank output yields the Fallback message for lang, so
// the subject is never empty.
func ParseResponse(raw string, analysis gitdiff.Analysis, lang commit.Language) commit.Message {
	if strings.TrimSpace(raw) == "" {
		return Fallback(analysis, lang)
	}

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	first := strings.TrimSpace(lines[0])

	header, ok := commit.ParseHeader(first)
	if !ok {
		return commit.Message{
			Type:    analysis.TypeOrChore(),
			Scope:   analysis.SuggestedScope,
			Subject: first,
		}
	}

	t, err := commit.ParseType(header.Type)
	if err != nil {
		t = analysis.TypeOrChore()
	}

	bodyLines := slice.Map(lines[1:], func(_ int, line string) string {
		return strings.TrimSpace(line)
	})
	bodyLines = slice.Filter(bodyLines, func(_ int, line string) bool {
		return line != ""
	})

	return commit.Message{
		Type:    t,
		Scope:   header.Scope,
		Subject: header.Subject,
		Body:    strings.Join(bodyLines, "\n"),
	}
}
