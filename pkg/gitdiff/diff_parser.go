package gitdiff

import (
	"regexp"
	"strings"
)

// FileHeader is the literal marker that begins each file's patch block.
const FileHeader = "diff --git a/"

var (
	fileHeaderRegex = regexp.MustCompile(`(?m)^diff --git a/`)
	filePathRegex   = regexp.MustCompile(`^[\w/._-]+`)
)

// Stats holds line and file counts for a diff.
type Stats struct {
	FilesChanged int      `json:"files_changed"`
	Insertions   int      `json:"insertions"`
	Deletions    int      `json:"deletions"`
	Files        []string `json:"files"`
}

// SplitFiles splits diff output on the per-file header. The preamble is
// whatever precedes the first header (usually empty), and each segment
// starts right after "diff --git a/".
func SplitFiles(diff string) (string, []string) {
	parts := fileHeaderRegex.Split(diff, -1)
	return parts[0], parts[1:]
}

// AnalyzeStats counts changed files, inserted and deleted lines in diff.
// Malformed or empty input yields zero counts, never an error.
func AnalyzeStats(diff string) Stats {
	stats := Stats{Files: []string{}}

	_, segments := SplitFiles(diff)
	for _, segment := range segments {
		stats.FilesChanged++

		// a segment begins with "path/to/file b/path/to/file"
		if path := filePathRegex.FindString(segment); path != "" {
			stats.Files = append(stats.Files, path)
		}

		adds, dels := countChanges(segment)
		stats.Insertions += adds
		stats.Deletions += dels
	}

	return stats
}

// countChanges counts additions and deletions, skipping the "+++" and "---"
// file markers.
func countChanges(content string) (int, int) {
	additions := 0
	deletions := 0

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			additions++
		} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			deletions++
		}
	}

	return additions, deletions
}
