package gitdiff

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/zbiljic/lee/pkg/commit"
)

var extensionRegex = regexp.MustCompile(`\.(\w+)`)

// scopeMappings is ordered: the first prefix present anywhere in the diff
// wins, regardless of how specific later entries are.
var scopeMappings = []struct {
	prefix string
	scope  string
}{
	{"src/auth/", "auth"},
	{"src/ui/", "ui"},
	{"src/api/", "api"},
	{"src/utils/", "utils"},
	{"src/core/", "core"},
	{"tests/", "tests"},
	{"docs/", "docs"},
	{"config/", "config"},
}

var (
	docsMarkers      = []string{".md", ".txt", "docs/"}
	fixKeywords      = []string{"fix", "bug", "error", "issue", "patch"}
	refactorKeywords = []string{"refactor", "restructure", "reorganize", "optimize"}
	featureKeywords  = []string{"add", "new", "implement", "create", "feature"}
)

// typeRule is one step of the commit type cascade.
type typeRule struct {
	name   string
	match  func(in classifyInput) bool
	result func(in classifyInput) commit.Type
}

type classifyInput struct {
	diff  string
	lower string
	stats Stats
}

func always(t commit.Type) func(classifyInput) commit.Type {
	return func(classifyInput) commit.Type { return t }
}

// typeRules are evaluated in order and the first match wins. Later rules are
// unreachable whenever an earlier one fires; the order is part of the output
// contract.
var typeRules = []typeRule{
	{
		name: "test files",
		match: func(in classifyInput) bool {
			return lo.ContainsBy(in.stats.Files, func(f string) bool {
				return strings.Contains(strings.ToLower(f), "test")
			})
		},
		result: always(commit.Test),
	},
	{
		name: "documentation",
		match: func(in classifyInput) bool {
			return containsAny(in.diff, docsMarkers) &&
				(in.stats.Insertions > 0 || in.stats.Deletions > 0)
		},
		result: always(commit.Docs),
	},
	{
		name:   "fix keywords",
		match:  func(in classifyInput) bool { return containsAny(in.lower, fixKeywords) },
		result: always(commit.Fix),
	},
	{
		name:   "refactor keywords",
		match:  func(in classifyInput) bool { return containsAny(in.lower, refactorKeywords) },
		result: always(commit.Refactor),
	},
	{
		name:   "feature keywords",
		match:  func(in classifyInput) bool { return containsAny(in.lower, featureKeywords) },
		result: always(commit.Feat),
	},
	{
		name:  "change ratio",
		match: func(classifyInput) bool { return true },
		result: func(in classifyInput) commit.Type {
			switch {
			case in.stats.Insertions > in.stats.Deletions*2:
				return commit.Feat
			case in.stats.Deletions > in.stats.Insertions:
				return commit.Fix
			default:
				return commit.Chore
			}
		},
	},
}

// Classification is the heuristic part of an Analysis.
type Classification struct {
	FileTypes      []string
	SuggestedScope string
	SuggestedType  commit.Type
}

// Classify derives file types, scope and commit type from diff text and its
// statistics.
func Classify(diff string, stats Stats) Classification {
	return Classification{
		FileTypes:      FileTypes(diff),
		SuggestedScope: SuggestScope(diff),
		SuggestedType:  SuggestType(diff, stats),
	}
}

// FileTypes collects extension-like tokens found anywhere in diff, plus
// markers for Dockerfile, Makefile and YAML files. The result is sorted.
func FileTypes(diff string) []string {
	var types []string

	for _, match := range extensionRegex.FindAllStringSubmatch(diff, -1) {
		types = append(types, match[1])
	}

	if strings.Contains(diff, "Dockerfile") {
		types = append(types, "dockerfile")
	}
	if strings.Contains(diff, "Makefile") {
		types = append(types, "makefile")
	}
	if strings.Contains(diff, ".yml") || strings.Contains(diff, ".yaml") {
		types = append(types, "yaml")
	}

	types = lo.Uniq(types)
	sort.Strings(types)

	return types
}

// SuggestScope returns the scope of the first known path prefix found in
// diff, or an empty string.
func SuggestScope(diff string) string {
	for _, m := range scopeMappings {
		if strings.Contains(diff, m.prefix) {
			return m.scope
		}
	}
	return ""
}

// SuggestType returns the commit type of the first matching rule. It always
// returns a value because the last rule matches unconditionally.
func SuggestType(diff string, stats Stats) commit.Type {
	t, _ := suggestTypeWithRule(diff, stats)
	return t
}

func suggestTypeWithRule(diff string, stats Stats) (commit.Type, string) {
	in := classifyInput{
		diff:  diff,
		lower: strings.ToLower(diff),
		stats: stats,
	}

	for _, rule := range typeRules {
		if rule.match(in) {
			return rule.result(in), rule.name
		}
	}

	return commit.Chore, ""
}

func containsAny(s string, subs []string) bool {
	return lo.ContainsBy(subs, func(sub string) bool {
		return strings.Contains(s, sub)
	})
}
