package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/lee/internal/config"
	"github.com/zbiljic/lee/pkg/llm"
)

var checkCmd = &cobra.Command{
	Use: "check",
	Aliases: []string{
		"test-connection",
	},
	Short: "Check the connection to the Ollama server",
	Long:  `Checks that the Ollama server is reachable and serves the configured model, then lists the installed models.`,
	Args:  cobra.NoArgs,
	RunE:  runCheckE,
}

var checkFlags llmFlags

func init() {
	checkCmd.Flags().StringVarP(&checkFlags.Model, "model", "m", "", "Model expected on the server")
	checkCmd.Flags().StringVar(&checkFlags.Host, "host", "", "Ollama server URL")

	rootCmd.AddCommand(checkCmd)
}

var errModelNotAvailable = errors.New("configured model is not available")

func runCheckE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ollama := newOllamaFromConfig(cfg, checkFlags, loggerFrom(cmd.Context()))

	return checkServer(cmd.Context(), cmd.OutOrStdout(), ollama, ollama.Host(), ollama.Model())
}

func checkServer(ctx context.Context, w io.Writer, lister llm.ModelLister, host, model string) error {
	fmt.Fprintf(w, "Checking %s for model %s\n", host, model)

	ok := lister.CheckConnection(ctx)
	models := lister.ListModels(ctx)

	if ok {
		fmt.Fprintf(w, "%s Connected, model %s is available\n", picocolors.Green("✔"), model)
	} else if len(models) > 0 {
		fmt.Fprintf(w, "%s Connected, but model %s is not installed (try: ollama pull %s)\n", picocolors.Yellow("!"), model, model)
	} else {
		fmt.Fprintf(w, "%s Cannot reach Ollama at %s\n", picocolors.Red("✘"), host)
	}

	if len(models) > 0 {
		fmt.Fprintf(w, "\nInstalled models:\n")
		for _, m := range models {
			fmt.Fprintf(w, "  %-32s %10s  %s\n", m.Name, units.HumanSize(float64(m.Size)), formatModified(m.ModifiedAt))
		}
	}

	if !ok {
		return errModelNotAvailable
	}
	return nil
}

func formatModified(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return units.HumanDuration(time.Since(t)) + " ago"
}
