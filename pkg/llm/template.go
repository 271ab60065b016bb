package llm

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/zbiljic/lee/pkg/commit"
	"github.com/zbiljic/lee/pkg/gitdiff"
)

//go:embed templates/commit/*.tmpl
var commitTemplatesFS embed.FS

var commitTemplates = template.Must(template.ParseFS(commitTemplatesFS, "templates/commit/*.tmpl"))

type promptData struct {
	Stats gitdiff.Stats
	Diff  string
}

func templateName(lang commit.Language) string {
	if _, ok := commit.LanguageIds[lang]; !ok {
		lang = commit.English
	}
	return lang.ToString() + ".tmpl"
}

// BuildPrompt renders the commit prompt for lang with the diff statistics
// and the already sanitized diff. Unknown languages use the English
// template.
func BuildPrompt(diff string, analysis gitdiff.Analysis, lang commit.Language) (string, error) {
	var buf bytes.Buffer

	err := commitTemplates.ExecuteTemplate(&buf, templateName(lang), promptData{
		Stats: analysis.Stats,
		Diff:  diff,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute commit prompt template: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
