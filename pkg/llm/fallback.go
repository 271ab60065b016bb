package llm

import (
	"fmt"
	"strings"

	"github.com/zbiljic/lee/pkg/commit"
	"github.com/zbiljic/lee/pkg/gitdiff"
)

type fallbackPhrases struct {
	// subjects may contain one %s verb for the scope
	subjects map[commit.Type]string
	other    string

	unscoped      string
	otherUnscoped string

	stats string
}

var fallbackTable = map[commit.Language]fallbackPhrases{
	commit.English: {
		subjects: map[commit.Type]string{
			commit.Feat:     "add feature to %s",
			commit.Fix:      "fix bug in %s",
			commit.Docs:     "update documentation",
			commit.Refactor: "refactor code in %s",
			commit.Test:     "update tests",
		},
		other:         "update %s",
		unscoped:      "files",
		otherUnscoped: "files",
		stats:         "%d file(s) changed, +%d, -%d",
	},
	commit.Indonesian: {
		subjects: map[commit.Type]string{
			commit.Feat:     "tambahkan fitur pada %s",
			commit.Fix:      "perbaiki bug pada %s",
			commit.Docs:     "update dokumentasi",
			commit.Refactor: "refactoring kode pada %s",
			commit.Test:     "update test",
		},
		other:         "update %s",
		unscoped:      "beberapa file",
		otherUnscoped: "file",
		stats:         "%d file berubah, +%d, -%d",
	},
}

// Fallback builds a message from the analysis alone. It never contacts a
// backend and always returns the same message for the same input.
func Fallback(analysis gitdiff.Analysis, lang commit.Language) commit.Message {
	phrases, ok := fallbackTable[lang]
	if !ok {
		phrases = fallbackTable[commit.English]
	}

	t := analysis.TypeOrChore()
	scope := analysis.SuggestedScope

	format, known := phrases.subjects[t]
	target := phrases.unscoped
	if !known {
		format = phrases.other
		target = phrases.otherUnscoped
	}
	if scope != "" {
		target = scope
	}

	subject := format
	if strings.Contains(format, "%s") {
		subject = fmt.Sprintf(format, target)
	}

	stats := analysis.Stats

	return commit.Message{
		Type:    t,
		Scope:   scope,
		Subject: subject,
		Body:    fmt.Sprintf(phrases.stats, stats.FilesChanged, stats.Insertions, stats.Deletions),
	}
}
