package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zbiljic/lee/internal/config"
	"github.com/zbiljic/lee/pkg/commit"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration",
	Long: `Without flags, prints the effective configuration and the file it was loaded from.
With flags, updates the configuration file (the one found on the search path, or
~/.config/lee/lee.json) and saves it.`,
	Args: cobra.NoArgs,
	RunE: runConfigE,
}

var configFlags struct {
	LLM        llmFlags
	Language   commit.Language
	Style      commit.CommitStyle
	AutoCommit bool
}

func init() {
	addCommonLLMFlags(configCmd, &configFlags.LLM)
	addMessageFlags(configCmd, &configFlags.Language, &configFlags.Style)
	configCmd.Flags().BoolVar(&configFlags.AutoCommit, "auto-commit", false, "Commit generated messages without confirmation")

	rootCmd.AddCommand(configCmd)
}

// configSettingFlags are the flags that modify the stored configuration.
var configSettingFlags = []string{"provider", "model", "host", "language", "style", "auto-commit"}

func runConfigE(cmd *cobra.Command, args []string) error {
	changed := false
	for _, name := range configSettingFlags {
		if cmd.Flags().Changed(name) {
			changed = true
			break
		}
	}

	if !changed {
		return configShow(cmd.OutOrStdout())
	}

	return configUpdate(cmd, cmd.OutOrStdout())
}

func configShow(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if path, ok := config.GetPath(); ok {
		fmt.Fprintf(w, "# %s\n", path)
	} else {
		fmt.Fprintf(w, "# defaults (no configuration file found)\n")
	}

	out, err := json.MarshalIndent(maskSecrets(cfg), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))

	return nil
}

// maskSecrets returns a copy of cfg with API keys hidden.
func maskSecrets(cfg *config.Config) config.Config {
	masked := *cfg
	masked.Providers = make(map[string]config.ProviderConfig, len(cfg.Providers))
	for name, p := range cfg.Providers {
		if p.APIKey != "" {
			p.APIKey = "********"
		}
		masked.Providers[name] = p
	}
	return masked
}

func configUpdate(cmd *cobra.Command, w io.Writer) error {
	// environment overrides must not end up in the file
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	applyConfigFlags(cfg, func(name string) bool { return cmd.Flags().Changed(name) })

	path, ok := config.GetPath()
	if !ok {
		path = config.GetDefaultPath()
	}

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	fmt.Fprintf(w, "Configuration saved to %s\n", path)
	return nil
}

// applyConfigFlags copies the changed setting flags onto cfg. The model flag
// applies to the selected provider.
func applyConfigFlags(cfg *config.Config, changed func(string) bool) {
	if changed("provider") {
		cfg.Provider = configFlags.LLM.Provider.ToString()
	}
	if changed("host") {
		cfg.Ollama.Host = configFlags.LLM.Host
	}
	if changed("model") {
		if p, ok := parseProviderType(cfg.Provider); !ok || p == OllamaProvider {
			cfg.Ollama.Model = configFlags.LLM.Model
		} else {
			if cfg.Providers == nil {
				cfg.Providers = map[string]config.ProviderConfig{}
			}
			settings := cfg.Providers[cfg.Provider]
			settings.Model = configFlags.LLM.Model
			cfg.Providers[cfg.Provider] = settings
		}
	}
	if changed("language") {
		cfg.Language = configFlags.Language.ToString()
	}
	if changed("style") {
		cfg.Style = configFlags.Style.ToString()
	}
	if changed("auto-commit") {
		cfg.AutoCommit = configFlags.AutoCommit
	}
}
