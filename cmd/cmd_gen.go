package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/lee/internal/config"
	"github.com/zbiljic/lee/pkg/commit"
	"github.com/zbiljic/lee/pkg/gitdiff"
	"github.com/zbiljic/lee/pkg/llm"
	"github.com/zbiljic/lee/pkg/termio"
)

var genCmd = &cobra.Command{
	Use: "gen",
	Aliases: []string{
		"g",
		"generate",
	},
	Short: "Generate commit message",
	Long: `Generates a commit message for the staged changes and, after confirmation, commits them.

The diff can also be read from a file (--file, - for stdin), or piped on stdin
when nothing is staged. In both cases the message is printed and nothing is
committed.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runGenE,
}

var genFlags = genOptions{
	Language: commit.English,
	Style:    commit.ConventionalStyle,
}

type genOptions struct {
	LLM      llmFlags
	Language commit.Language
	Style    commit.CommitStyle
	All      bool
	Yes      bool
	DryRun   bool
	File     string
	MaxFiles int
	Breaking bool
}

func genAddFlags(cmd *cobra.Command) {
	addCommonLLMFlags(cmd, &genFlags.LLM)
	addMessageFlags(cmd, &genFlags.Language, &genFlags.Style)
	cmd.Flags().BoolVarP(&genFlags.All, "all", "a", false, "Automatically stage all changes before generating")
	cmd.Flags().BoolVarP(&genFlags.Yes, "yes", "y", false, "Run in non-interactive mode, committing the generated message")
	cmd.Flags().BoolVar(&genFlags.DryRun, "dry-run", false, "Print the generated message without committing")
	cmd.Flags().StringVarP(&genFlags.File, "file", "f", "", "Read the diff from a file instead of the staged changes (- for stdin)")
	cmd.Flags().IntVar(&genFlags.MaxFiles, "max-files", 0, "Maximum number of files included in the prompt")
	cmd.Flags().BoolVar(&genFlags.Breaking, "breaking", false, "Mark the message as a breaking change when the diff announces one")
}

func init() {
	genAddFlags(genCmd)

	rootCmd.AddCommand(genCmd)
}

// genSession carries the resolved settings of one gen run.
type genSession struct {
	cfg      *config.Config
	log      *zap.Logger
	ui       bool
	workDir  string // empty when the diff does not come from the repository
	language commit.Language
	style    commit.CommitStyle
}

func genSetup(cmd *cobra.Command) (*genSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s := &genSession{
		cfg:      cfg,
		log:      loggerFrom(cmd.Context()),
		ui:       isInteractive() && !genFlags.Yes,
		language: cfg.LanguageValue(),
		style:    cfg.StyleValue(),
	}

	if cmd.Flags().Changed("language") {
		s.language = genFlags.Language
	}
	if cmd.Flags().Changed("style") {
		s.style = genFlags.Style
	}

	if s.ui {
		prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
		// in order to show custom error
		injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)
	}

	return s, nil
}

type diffSource int

const (
	diffFromStaged diffSource = iota
	diffFromFile
	diffFromStdin
	diffMissing
)

// chooseDiffSource decides where the diff comes from. Staged changes win
// over stdin so that an inherited, never-closed stdin pipe is not read.
func chooseDiffSource(file string, haveStaged, stdinPiped bool) diffSource {
	switch {
	case file == "-":
		return diffFromStdin
	case file != "":
		return diffFromFile
	case haveStaged:
		return diffFromStaged
	case stdinPiped:
		return diffFromStdin
	default:
		return diffMissing
	}
}

// genReadDiff returns the diff to describe: the file given with --file,
// the staged changes, or a diff piped on stdin when nothing is staged.
// workDir is set only when the diff is the staged changes.
func genReadDiff(s *genSession) (string, error) {
	var staged stagedChanges

	if genFlags.File == "" {
		workDir, err := setupGitWorkDir()
		if err == nil {
			staged, err = genDetectStagedChanges(s, workDir)
			if err != nil {
				return "", err
			}
		} else if !termio.IsPiped(os.Stdin) {
			return "", err
		}
		if !staged.empty() {
			s.workDir = workDir
		}
	}

	switch chooseDiffSource(genFlags.File, !staged.empty(), termio.IsPiped(os.Stdin)) {
	case diffFromStaged:
		return staged.Diff, nil
	case diffFromFile:
		data, err := os.ReadFile(genFlags.File)
		if err != nil {
			return "", fmt.Errorf("failed to read diff file: %w", err)
		}
		return string(data), nil
	case diffFromStdin:
		return readAllString(os.Stdin)
	default:
		return "", errors.New("No staged changes found. Stage files with 'git add' or use --all") //nolint:staticcheck
	}
}

func readAllString(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read diff from stdin: %w", err)
	}
	return string(data), nil
}

func genDetectStagedChanges(s *genSession, workDir string) (stagedChanges, error) {
	var spinner *prompts.SpinnerController
	if s.ui {
		spinner = prompts.Spinner(prompts.SpinnerOptions{})
		spinner.Start("Detecting staged files")
	}

	stop := func(msg string, code int) {
		if spinner != nil {
			spinner.Stop(msg, code)
		}
	}

	if genFlags.All {
		if err := gitAddAll(workDir); err != nil {
			stop("Error staging files", 1)
			return stagedChanges{}, err
		}
	}

	staged, err := gitStagedChanges(workDir)
	if err != nil {
		stop("Error detecting staged files", 1)
		return stagedChanges{}, err
	}

	if staged.empty() {
		stop("No staged changes", 1)
		return staged, nil
	}

	stop(fmt.Sprintf(
		"Detected %d staged file(s):\n     %s",
		len(staged.Files),
		strings.Join(staged.Files, "\n     "),
	), 0)

	return staged, nil
}

func genMessage(cmd *cobra.Command, s *genSession, diff string, analysis gitdiff.Analysis) (commit.Message, error) {
	aip := initializeLLMProvider(cmd.Context(), s.cfg, resolveProvider(s.cfg, genFlags.LLM, cmd.Flags().Changed("provider")), genFlags.LLM, s.log)

	maxFiles := s.cfg.MaxFiles
	if genFlags.MaxFiles > 0 {
		maxFiles = genFlags.MaxFiles
	}

	generator := llm.NewGenerator(aip, llm.GeneratorOptions{
		Language:       s.language,
		Generate:       generateOptionsFromConfig(s.cfg),
		MaxDiffLength:  s.cfg.MaxDiffLength,
		MaxFiles:       maxFiles,
		DetectBreaking: s.cfg.DetectBreaking || genFlags.Breaking,
		Logger:         s.log,
	})

	var spinner *prompts.SpinnerController
	if s.ui {
		spinner = prompts.Spinner(prompts.SpinnerOptions{})
		spinner.Start(fmt.Sprintf("Generating commit message with %s", aip.String()))
	}

	message, err := generator.GenerateWithAnalysis(cmd.Context(), diff, analysis)
	if err != nil {
		if spinner != nil {
			spinner.Stop("Nothing to describe", 1)
		}
		return commit.Message{}, err
	}

	if spinner != nil {
		spinner.Stop(fmt.Sprintf("Changes analyzed: %s", formatStats(analysis.Stats)), 0)
		// keys pressed while waiting must not answer the next prompt
		termio.DiscardPendingInput()
	}

	return message, nil
}

func formatStats(stats gitdiff.Stats) string {
	return fmt.Sprintf("%d file(s) changed, %s, %s",
		stats.FilesChanged,
		picocolors.Green(fmt.Sprintf("+%d", stats.Insertions)),
		picocolors.Red(fmt.Sprintf("-%d", stats.Deletions)),
	)
}

type genAction string

const (
	genActionCommit genAction = "commit"
	genActionEdit   genAction = "edit"
	genActionCancel genAction = "cancel"
)

// genHandleMessage shows the message until it is committed or cancelled.
// It returns the final message, or "" when cancelled.
func genHandleMessage(s *genSession, message commit.Message) (string, error) {
	for {
		rendered := commit.Render(message, s.style)

		action, err := prompts.Select(prompts.SelectParams[genAction]{
			Message: fmt.Sprintf("%s\n\n%s\n", picocolors.Gray("Generated commit message:"), rendered),
			Options: []*prompts.SelectOption[genAction]{
				{Label: "Commit", Value: genActionCommit},
				{Label: "Edit", Value: genActionEdit},
				{Label: "Cancel", Value: genActionCancel},
			},
		})
		if err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Commit cancelled")
				return "", nil
			}
			return "", err
		}

		switch action {
		case genActionCommit:
			return rendered, nil
		case genActionCancel:
			prompts.Outro("Commit cancelled")
			return "", nil
		}

		edited, err := genEditCommitMessage(message, s.style)
		if err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Commit cancelled")
				return "", nil
			}
			return "", err
		}

		message = edited
	}
}

// commitForm holds the editable parts of a header, filled by the workflow
// steps of the same name.
type commitForm struct {
	Type    string
	Scope   string
	Subject string
}

func genEditCommitMessage(message commit.Message, style commit.CommitStyle) (commit.Message, error) {
	scope := message.Scope
	if message.BreakingChange {
		scope += "!"
	}

	form := commitForm{
		Type:    message.Type.String(),
		Scope:   scope,
		Subject: message.Subject,
	}

	err := prompts.Workflow(&form).
		ConditionalStep("Type",
			func() bool {
				return style != commit.SimpleStyle
			},
			func() (any, error) {
				options := slice.Map(commit.Types, func(_ int, t commit.Type) *prompts.SelectOption[string] {
					return &prompts.SelectOption[string]{
						Label: fmt.Sprintf("%-9s %s", t, picocolors.Gray(commit.TypeDescriptions[t])),
						Value: t.String(),
					}
				})

				return prompts.Select(prompts.SelectParams[string]{
					Message:      "Select a type",
					InitialValue: form.Type,
					Options:      options,
				})
			}).
		ConditionalStep("Scope",
			func() bool {
				return style != commit.SimpleStyle
			},
			func() (any, error) {
				return prompts.Text(prompts.TextParams{
					Message:      "Enter a scope",
					Placeholder:  "<optional scope, ! for breaking>",
					InitialValue: form.Scope,
					Validate: func(value string) error {
						if strings.ContainsAny(value, "()") {
							return errors.New("scope must not contain parentheses")
						}
						return nil
					},
				})
			}).
		Step("Subject", func() (any, error) {
			return prompts.Text(prompts.TextParams{
				Message:      "Enter a subject",
				Placeholder:  "<subject>",
				InitialValue: form.Subject,
				Validate: func(value string) error {
					if strings.TrimSpace(value) == "" {
						return errors.New("please enter a subject")
					}
					return nil
				},
			})
		}).
		Run()
	if err != nil {
		return commit.Message{}, err
	}

	return applyCommitForm(message, form), nil
}

// applyCommitForm copies the edited header onto message. A trailing "!" on
// the scope marks a breaking change.
func applyCommitForm(message commit.Message, form commitForm) commit.Message {
	if t, err := commit.ParseType(form.Type); err == nil {
		message.Type = t
	}

	scope := strings.TrimSpace(form.Scope)
	message.BreakingChange = strings.HasSuffix(scope, "!")
	message.Scope = strings.TrimSuffix(scope, "!")
	message.Subject = commit.TruncateSubject(strings.TrimSpace(form.Subject), commit.DefaultMaxSubjectLength)

	return message
}

// tidyMessage keeps the subject within the usual header length and reports
// conventional output that a linter would reject.
func tidyMessage(log *zap.Logger, message commit.Message, style commit.CommitStyle) commit.Message {
	message.Subject = commit.TruncateSubject(message.Subject, commit.DefaultMaxSubjectLength)

	if style == commit.ConventionalStyle {
		if rendered := commit.Render(message, style); !commit.Validate(rendered) {
			log.Warn("message is not a conventional commit", zap.String("header", strings.SplitN(rendered, "\n", 2)[0]))
		}
	}

	return message
}

func runGenE(cmd *cobra.Command, args []string) error {
	s, err := genSetup(cmd)
	if err != nil {
		return err
	}

	diff, err := genReadDiff(s)
	if err != nil {
		return err
	}

	analysis := gitdiff.Analyze(diff)
	s.log.Debug("diff analyzed",
		zap.Int("files", analysis.Stats.FilesChanged),
		zap.Int("insertions", analysis.Stats.Insertions),
		zap.Int("deletions", analysis.Stats.Deletions),
		zap.Strings("file_types", analysis.FileTypes),
		zap.String("suggested_scope", analysis.SuggestedScope),
		zap.String("suggested_type", analysis.SuggestedType.String()),
	)

	message, err := genMessage(cmd, s, diff, analysis)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyDiff) {
			return errors.New("The diff is empty, nothing to describe") //nolint:staticcheck
		}
		return err
	}

	message = tidyMessage(s.log, message, s.style)
	rendered := commit.Render(message, s.style)

	// nothing to commit to, or only a preview requested
	if s.workDir == "" || genFlags.DryRun {
		if s.ui {
			prompts.Outro("Dry run, nothing committed")
		}
		fmt.Println(rendered)
		return nil
	}

	autoCommit := genFlags.Yes || s.cfg.AutoCommit
	switch {
	case autoCommit:
		// commit as generated
	case s.ui:
		rendered, err = genHandleMessage(s, message)
		if err != nil {
			return err
		}
		if rendered == "" {
			return nil
		}
	default:
		// no terminal to confirm on
		fmt.Println(rendered)
		return nil
	}

	if err := gitCommit(s.workDir, rendered); err != nil {
		return err
	}

	if s.ui {
		prompts.Outro(fmt.Sprintf("%s Successfully committed", picocolors.Green("✔")))
	} else {
		fmt.Printf("Successfully committed: %s\n", strings.SplitN(rendered, "\n", 2)[0])
	}

	return nil
}
