package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"

	"github.com/zbiljic/lee/internal/buildinfo"
	"github.com/zbiljic/lee/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "lee"

var rootFlags struct {
	Verbose bool
}

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Generate conventional commit messages with a local LLM",
	Long: `Generates conventional commit messages from staged changes using a local
Ollama model, with offline heuristic fallback when the model is unavailable.`,
	Version: versioninfo.Info{
		Version: buildinfo.Version,
		Commit:  buildinfo.GitCommit,
		Date:    buildinfo.BuildDate,
		BuiltBy: buildinfo.BuiltBy,
	}.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
		cmd.SetContext(ctx)

		injectIntoCommandContextWithKey(cmd, ctxKeyLogger{}, newLogger(rootFlags.Verbose))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		loggerFrom(cmd.Context()).Sync() //nolint:errcheck
	},
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.Verbose, "verbose", "v", false, "Log generation details to stderr")

	// `lee` alone behaves like `lee gen`
	genAddFlags(rootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called my main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	return runGenE(cmd, args)
}
