package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zbiljic/lee/pkg/commit"
	"github.com/zbiljic/lee/pkg/gitdiff"
)

func TestFallback(t *testing.T) {
	stats := gitdiff.Stats{FilesChanged: 2, Insertions: 7, Deletions: 3}

	tests := []struct {
		name    string
		typ     commit.Type
		scope   string
		lang    commit.Language
		subject string
		body    string
	}{
		{"feat with scope", commit.Feat, "api", commit.English, "add feature to api", "2 file(s) changed, +7, -3"},
		{"feat without scope", commit.Feat, "", commit.English, "add feature to files", "2 file(s) changed, +7, -3"},
		{"fix", commit.Fix, "auth", commit.English, "fix bug in auth", "2 file(s) changed, +7, -3"},
		{"docs ignores scope", commit.Docs, "docs", commit.English, "update documentation", "2 file(s) changed, +7, -3"},
		{"refactor", commit.Refactor, "", commit.English, "refactor code in files", "2 file(s) changed, +7, -3"},
		{"test", commit.Test, "tests", commit.English, "update tests", "2 file(s) changed, +7, -3"},
		{"chore", commit.Chore, "", commit.English, "update files", "2 file(s) changed, +7, -3"},
		{"perf with scope", commit.Perf, "core", commit.English, "update core", "2 file(s) changed, +7, -3"},
		{"id feat", commit.Feat, "", commit.Indonesian, "tambahkan fitur pada beberapa file", "2 file berubah, +7, -3"},
		{"id fix", commit.Fix, "ui", commit.Indonesian, "perbaiki bug pada ui", "2 file berubah, +7, -3"},
		{"id docs", commit.Docs, "", commit.Indonesian, "update dokumentasi", "2 file berubah, +7, -3"},
		{"id refactor", commit.Refactor, "core", commit.Indonesian, "refactoring kode pada core", "2 file berubah, +7, -3"},
		{"id test", commit.Test, "", commit.Indonesian, "update test", "2 file berubah, +7, -3"},
		{"id chore", commit.Chore, "", commit.Indonesian, "update file", "2 file berubah, +7, -3"},
		{"no suggestion is chore", "", "", commit.English, "update files", "2 file(s) changed, +7, -3"},
		{"unknown language is english", commit.Fix, "", commit.Language(42), "fix bug in files", "2 file(s) changed, +7, -3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := gitdiff.Analysis{
				Stats:          stats,
				SuggestedType:  tt.typ,
				SuggestedScope: tt.scope,
			}

			msg := Fallback(analysis, tt.lang)

			assert.Equal(t, tt.typ.OrDefault(commit.Chore), msg.Type)
			assert.Equal(t, tt.scope, msg.Scope)
			assert.Equal(t, tt.subject, msg.Subject)
			assert.Equal(t, tt.body, msg.Body)
		})
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	analysis := gitdiff.Analyze(authDiff)
	assert.Equal(t, Fallback(analysis, commit.English), Fallback(analysis, commit.English))
}
