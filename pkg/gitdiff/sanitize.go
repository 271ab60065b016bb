package gitdiff

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DefaultMaxDiffLength = 5000
	DefaultMaxFiles      = 5

	RedactedMarker   = "[REDACTED]"
	TruncationNotice = "\n\n... (truncated for brevity)"
)

// sensitivePatterns catch common key/value secrets. This is best effort and
// is not a substitute for a real secret scanner.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password["']?\s*[:=]\s*["']?[^"'\s]+`),
	regexp.MustCompile(`(?i)api_key["']?\s*[:=]\s*["']?[^"'\s]+`),
	regexp.MustCompile(`(?i)token["']?\s*[:=]\s*["']?[^"'\s]+`),
	regexp.MustCompile(`(?i)secret["']?\s*[:=]\s*["']?[^"'\s]+`),
}

// Redact replaces likely secrets in diff with RedactedMarker.
func Redact(diff string) string {
	for _, re := range sensitivePatterns {
		diff = re.ReplaceAllLiteralString(diff, RedactedMarker)
	}
	return diff
}

// Sanitize redacts likely secrets and bounds the result to maxLength
// characters. When truncation is needed the cut is made at the last whole
// line that fits and TruncationNotice is appended.
func Sanitize(diff string, maxLength int) string {
	cleaned := Redact(diff)

	if utf8.RuneCountInString(cleaned) <= maxLength {
		return cleaned
	}

	var (
		kept   []string
		length int
	)
	for _, line := range strings.Split(cleaned, "\n") {
		lineLength := utf8.RuneCountInString(line)
		if length+lineLength > maxLength {
			break
		}
		kept = append(kept, line)
		length += lineLength + 1 // newline
	}

	return strings.Join(kept, "\n") + TruncationNotice
}

// ChunkByFiles keeps only the first maxFiles file segments of diff and
// appends a note with the number of omitted segments. A diff with maxFiles
// or fewer segments is returned unchanged.
func ChunkByFiles(diff string, maxFiles int) string {
	if maxFiles < 0 {
		maxFiles = 0
	}

	preamble, segments := SplitFiles(diff)
	if len(segments) <= maxFiles {
		return diff
	}

	kept := append([]string{preamble}, segments[:maxFiles]...)
	result := strings.Join(kept, FileHeader)
	result += fmt.Sprintf("\n\n... (%d more files omitted for brevity)", len(segments)-maxFiles)

	return result
}
