package commit

import (
	"fmt"
	"strings"
)

// Message is a structured commit message.
type Message struct {
	Type           Type
	Scope          string
	Subject        string
	Body           string
	Footer         string
	BreakingChange bool
}

// Type is a conventional commit type.
type Type string

const (
	Feat     Type = "feat"
	Fix      Type = "fix"
	Docs     Type = "docs"
	Style    Type = "style"
	Refactor Type = "refactor"
	Test     Type = "test"
	Chore    Type = "chore"
	Perf     Type = "perf"
	CI       Type = "ci"
	Build    Type = "build"
)

// Types lists every supported commit type.
var Types = []Type{Feat, Fix, Docs, Style, Refactor, Test, Chore, Perf, CI, Build}

// ParseType parses a string and returns the corresponding Type.
// It returns an error if the string doesn't match any known Type.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown commit type: %s", s)
}

// IsValid reports whether t is one of the supported commit types.
func (t Type) IsValid() bool {
	_, err := ParseType(string(t))
	return err == nil
}

func (t Type) String() string {
	return string(t)
}

// OrDefault returns t, or def when t is empty.
func (t Type) OrDefault(def Type) Type {
	if t == "" {
		return def
	}
	return t
}

// CommitStyle selects how a Message is rendered.
type CommitStyle int

const (
	// ConventionalStyle renders "type(scope): subject" with body and footer.
	ConventionalStyle CommitStyle = iota
	// SimpleStyle renders the subject alone.
	SimpleStyle
	// EmojiStyle prefixes the conventional header with a type symbol.
	EmojiStyle
)

var StyleIds = map[CommitStyle][]string{
	ConventionalStyle: {"conventional"},
	SimpleStyle:       {"simple"},
	EmojiStyle:        {"emoji"},
}

// ParseStyle parses a string and returns the corresponding CommitStyle.
func ParseStyle(s string) (CommitStyle, error) {
	for t, ids := range StyleIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return t, nil
			}
		}
	}
	return CommitStyle(0), fmt.Errorf("unknown style: %s", s)
}

// ToString converts the CommitStyle value to a string representation.
func (s CommitStyle) ToString() string {
	if val, ok := StyleIds[s]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownStyle(%d)", s)
}

// Language selects prompt template and fallback wording.
type Language int

const (
	English Language = iota
	Indonesian
)

var LanguageIds = map[Language][]string{
	English:    {"en", "english"},
	Indonesian: {"id", "indonesian"},
}

// ParseLanguage parses a language code or name.
func ParseLanguage(s string) (Language, error) {
	for l, ids := range LanguageIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return l, nil
			}
		}
	}
	return Language(0), fmt.Errorf("unknown language: %s", s)
}

// ToString returns the short language code.
func (l Language) ToString() string {
	if val, ok := LanguageIds[l]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownLanguage(%d)", l)
}
