package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type (
	ctxKeyClackPromptStarted struct{}
	ctxKeyLogger             struct{}
)

var errNotGitRepository = errors.New("The current directory must be a Git repository") //nolint:staticcheck

func injectIntoCommandContextWithKey[K, V comparable](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// setupGitWorkDir validates and returns the git working directory
func setupGitWorkDir() (string, error) {
	workDir, err := gitWorkingTreeDir(getWd())
	if err != nil || workDir == "" {
		return "", errNotGitRepository
	}
	return workDir, nil
}

// loggerFrom returns the logger installed by the root command, or a no-op
// logger when the command runs without it (e.g. in tests).
func loggerFrom(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if log, ok := ctx.Value(ctxKeyLogger{}).(*zap.Logger); ok && log != nil {
		return log
	}
	return zap.NewNop()
}
