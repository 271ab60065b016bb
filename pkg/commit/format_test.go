package commit

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	full := Message{
		Type:           Feat,
		Scope:          "api",
		Subject:        "add user endpoint",
		Body:           "Adds POST /users.",
		Footer:         "Refs: #12",
		BreakingChange: true,
	}

	tests := []struct {
		name     string
		message  Message
		style    CommitStyle
		expected string
	}{
		{
			name:     "conventional header only",
			message:  Message{Type: Fix, Subject: "correct typo"},
			style:    ConventionalStyle,
			expected: "fix: correct typo",
		},
		{
			name:     "conventional full",
			message:  full,
			style:    ConventionalStyle,
			expected: "feat(api): add user endpoint\n\nAdds POST /users.\n\nRefs: #12\n\nBREAKING CHANGE: add user endpoint",
		},
		{
			name:     "emoji omits footer and breaking change",
			message:  full,
			style:    EmojiStyle,
			expected: "✨ feat(api): add user endpoint\n\nAdds POST /users.",
		},
		{
			name:     "emoji without symbol",
			message:  Message{Type: Type("revert"), Subject: "undo"},
			style:    EmojiStyle,
			expected: "revert: undo",
		},
		{
			name:     "simple",
			message:  full,
			style:    SimpleStyle,
			expected: "add user endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render(tt.message, tt.style)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestRenderConventionalStartsWithType(t *testing.T) {
	for _, ct := range Types {
		out := Render(Message{Type: ct, Scope: "x", Subject: "s"}, ConventionalStyle)
		if !strings.HasPrefix(out, string(ct)+"(x):") {
			t.Errorf("Expected %q to start with %q", out, string(ct)+"(x):")
		}
		if !Validate(out) {
			t.Errorf("Expected %q to validate", out)
		}
	}
}
