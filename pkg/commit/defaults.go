package commit

const (
	DefaultMaxSubjectLength = 72
)

/**
 * References:
 * Commitlint:
 * https://github.com/conventional-changelog/commitlint/blob/18fbed7ea86ac0ec9d5449b4979b762ec4305a92/%40commitlint/config-conventional/index.js#L40-L100
 *
 * Conventional Changelog:
 * https://github.com/conventional-changelog/conventional-changelog/blob/d0e5d5926c8addba74bc962553dd8bcfba90e228/packages/conventional-changelog-conventionalcommits/writer-opts.js#L182-L193
 */
var TypeDescriptions = map[Type]string{
	Build:    "Changes that affect the build system or external dependencies",
	Chore:    "Other changes that don't modify src or test files",
	CI:       "Changes to our CI configuration files and scripts",
	Docs:     "Documentation only changes",
	Feat:     "A new feature",
	Fix:      "A bug fix",
	Perf:     "A code change that improves performance",
	Refactor: "A code change that neither fixes a bug nor adds a feature",
	Style:    "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)",
	Test:     "Adding missing tests or correcting existing tests",
}

// typeEmojis is used by EmojiStyle. Types without an entry get no symbol.
var typeEmojis = map[Type]string{
	Feat:     "✨",
	Fix:      "🐛",
	Docs:     "📝",
	Style:    "💄",
	Refactor: "♻️",
	Test:     "✅",
	Chore:    "🔧",
	Perf:     "⚡",
	CI:       "👷",
	Build:    "📦",
}

// Emoji returns the symbol associated with t, or an empty string.
func (t Type) Emoji() string {
	return typeEmojis[t]
}
