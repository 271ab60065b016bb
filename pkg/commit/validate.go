package commit

import (
	"regexp"
	"strings"
)

var conventionalRegex = regexp.MustCompile(conventionalPattern())

func conventionalPattern() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return `^(` + strings.Join(names, "|") + `)(\(.+\))?\s*:\s*.+`
}

// Validate reports whether message starts with a well-formed conventional
// commit header using one of the supported types.
func Validate(message string) bool {
	return conventionalRegex.MatchString(message)
}

// TruncateSubject shortens subject to at most maxLength runes, marking the
// cut with an ellipsis.
func TruncateSubject(subject string, maxLength int) string {
	runes := []rune(subject)
	if len(runes) <= maxLength {
		return subject
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
