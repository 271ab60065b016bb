package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/lee/pkg/commit"
)

// llmFlags are the backend selection flags shared by gen and check.
type llmFlags struct {
	Provider ProviderType
	Model    string
	Host     string
}

// addCommonLLMFlags adds the common LLM provider and model flags to a command
func addCommonLLMFlags(cmd *cobra.Command, f *llmFlags) {
	cmd.Flags().VarP(enumflag.New(&f.Provider, "provider", ProviderIds, enumflag.EnumCaseInsensitive), "provider", "p", "LLM provider to use (ollama, openai, claude, googleai, openrouter, groq, deepseek)")
	cmd.Flags().StringVarP(&f.Model, "model", "m", "", "Specific model to use for the selected provider")
	cmd.Flags().StringVar(&f.Host, "host", "", "Ollama server URL")
}

// addMessageFlags adds the language and style flags to a command
func addMessageFlags(cmd *cobra.Command, language *commit.Language, style *commit.CommitStyle) {
	cmd.Flags().VarP(enumflag.New(language, "language", commit.LanguageIds, enumflag.EnumCaseInsensitive), "language", "l", "Language of the generated message (en, id)")
	cmd.Flags().VarP(enumflag.New(style, "style", commit.StyleIds, enumflag.EnumCaseInsensitive), "style", "s", "Commit message style (conventional, simple, emoji)")
}
