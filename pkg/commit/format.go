package commit

import (
	"strings"
)

// Render converts the Message into its textual form for the given style.
func Render(m Message, style CommitStyle) string {
	switch style {
	case EmojiStyle:
		return m.Emoji()
	case SimpleStyle:
		return m.Simple()
	default:
		return m.Conventional()
	}
}

func (m Message) header() string {
	var out strings.Builder
	out.WriteString(m.Type.String())
	if m.Scope != "" {
		out.WriteString("(" + m.Scope + ")")
	}
	out.WriteString(": " + m.Subject)
	return out.String()
}

// Conventional renders the message as a conventional commit.
func (m Message) Conventional() string {
	paragraphs := []string{m.header()}
	if m.Body != "" {
		paragraphs = append(paragraphs, m.Body)
	}
	if m.Footer != "" {
		paragraphs = append(paragraphs, m.Footer)
	}
	if m.BreakingChange {
		paragraphs = append(paragraphs, "BREAKING CHANGE: "+m.Subject)
	}
	return strings.Join(paragraphs, "\n\n")
}

// Emoji renders the conventional header prefixed with the type symbol,
// followed by the body. Footer and breaking change are not rendered.
func (m Message) Emoji() string {
	out := m.header()
	if emoji := m.Type.Emoji(); emoji != "" {
		out = emoji + " " + out
	}
	if m.Body != "" {
		out += "\n\n" + m.Body
	}
	return out
}

// Simple renders the subject alone.
func (m Message) Simple() string {
	return m.Subject
}
