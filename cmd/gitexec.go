package cmd

import (
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/zbiljic/gitexec"
)

var (
	// lock files and checksums produce large diffs that say nothing about
	// the intent of a change
	filesToExclude = []string{
		"*.lock*", // yarn.lock, Cargo.lock, Gemfile.lock, Pipfile.lock, etc.
		"go*.sum",
		"package-lock.json",
		"pnpm-lock.yaml",
	}

	excludeFromDiff = slice.FlatMap(filesToExclude, func(i int, s string) []string {
		return []string{":(exclude)" + s}
	})
)

// stagedChanges is what is about to be committed.
type stagedChanges struct {
	Files []string
	Diff  string
}

func (s stagedChanges) empty() bool {
	return len(s.Files) == 0 || strutil.IsBlank(s.Diff)
}

func gitWorkingTreeDir(path string) (string, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// gitStagedChanges returns the staged files and their diff, without the
// excluded lock files.
func gitStagedChanges(workDir string) (stagedChanges, error) {
	names, err := gitexec.Diff(&gitexec.DiffOptions{
		CmdDir:   workDir,
		Cached:   true,
		NameOnly: true,
		Path:     excludeFromDiff,
	})
	if err != nil {
		return stagedChanges{}, err
	}

	files := slice.Filter(strings.Split(string(names), "\n"), func(_ int, s string) bool {
		return strutil.IsNotBlank(s)
	})
	if len(files) == 0 {
		return stagedChanges{Files: []string{}}, nil
	}

	diff, err := gitexec.Diff(&gitexec.DiffOptions{
		CmdDir:  workDir,
		Cached:  true,
		Minimal: true,
		Path:    excludeFromDiff,
	})
	if err != nil {
		return stagedChanges{}, err
	}

	return stagedChanges{
		Files: files,
		Diff:  strings.TrimSpace(string(diff)),
	}, nil
}

func gitCommit(workDir, message string) error {
	_, err := gitexec.Commit(&gitexec.CommitOptions{
		CmdDir:  workDir,
		Message: message,
	})
	return err
}

func gitAddAll(workDir string) error {
	_, err := gitexec.Add(&gitexec.AddOptions{
		CmdDir: workDir,
		All:    true,
	})
	return err
}
