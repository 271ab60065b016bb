package commit

import (
	"regexp"
	"strings"
)

// headerRegex is deliberately lenient: the colon is optional and the type is
// any word token, so validation of the type is left to the caller.
var headerRegex = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?:?\s*(.+)$`)

// Header is the first line of a commit message split into its parts.
type Header struct {
	Type    string
	Scope   string
	Subject string
}

// ParseHeader splits a "type(scope): subject" line. The boolean result is
// false when the line does not follow the grammar at all.
func ParseHeader(line string) (Header, bool) {
	match := headerRegex.FindStringSubmatch(strings.TrimSpace(line))
	if len(match) == 0 {
		return Header{}, false
	}

	return Header{
		Type:    match[1],
		Scope:   match[2],
		Subject: match[3],
	}, true
}
