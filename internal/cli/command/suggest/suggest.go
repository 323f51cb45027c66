package suggest

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
)

type SuggestCommandFactory struct {
	commitService ports.CommitService
	commitHandler ports.CommitHandler
	gitService    ports.GitService
}

func NewSuggestCommandFactory(commitService ports.CommitService, commitHandler ports.CommitHandler, gitService ports.GitService) *SuggestCommandFactory {
	return &SuggestCommandFactory{
		commitService: commitService,
		commitHandler: commitHandler,
		gitService:    gitService,
	}
}

func (f *SuggestCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "suggest",
		Aliases:     []string{"s"},
		Usage:       t.GetMessage("suggest_command_usage", 0, nil),
		Description: t.GetMessage("suggest_command_description", 0, nil),
		Flags:       f.createFlags(cfg, t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *SuggestCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   int64(cfg.SuggestionsCount),
			Usage:   t.GetMessage("suggest_count_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("suggest_lang_flag_usage", 0, nil),
			Value:   cfg.Language,
		},
		&cli.BoolFlag{
			Name:    "no-emoji",
			Aliases: []string{"ne"},
			Usage:   t.GetMessage("suggest_no_emoji_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Value:   cfg.AutoCommit,
			Usage:   t.GetMessage("suggest_yes_flag_usage", 0, nil),
		},
	}
}

func (f *SuggestCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		if command.Bool("no-emoji") {
			cfg.UseEmoji = false
		}

		count := int(command.Int("count"))
		if count < 1 || count > 10 {
			msg := t.GetMessage("invalid_suggestions_count", 0, map[string]interface{}{
				"Min": 1,
				"Max": 10,
			})
			return fmt.Errorf("%s", msg)
		}

		cfg.Language = command.String("lang")

		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("error al guardar la configuración: %w", err)
		}

		p := tea.NewProgram(initialModel(f.commitService, ctx, count, t))
		m, err := p.Run()
		if err != nil {
			return fmt.Errorf("error running spinner: %w", err)
		}

		model := m.(model)
		if model.err != nil {
			msg := t.GetMessage("suggestion_generation_error", 0, map[string]interface{}{"Error": model.err})
			return fmt.Errorf("%s", msg)
		}

		if len(model.suggestions) == 0 {
			return nil
		}

		// Con --yes y confianza suficiente se commitea directo la primera
		// sugerencia; si la evidencia es débil siempre se pregunta.
		first := model.suggestions[0]
		if command.Bool("yes") && first.Detection.Confidence >= cfg.MinAutoConfidence {
			if err := f.gitService.CreateCommit(ctx, first.CommitTitle); err != nil {
				return fmt.Errorf("%s", t.GetMessage("commit.error_creating_commit", 0, map[string]interface{}{
					"Commit": first.CommitTitle,
					"Error":  err,
				}))
			}
			fmt.Printf("%s\n", t.GetMessage("commit.commit_successful", 0, map[string]interface{}{
				"CommitTitle": first.CommitTitle,
			}))
			return nil
		}

		return f.commitHandler.HandleSuggestions(ctx, model.suggestions)
	}
}

// Modelo de Bubble Tea para el spinner mientras se analizan los cambios.

type model struct {
	commitService ports.CommitService
	ctx           context.Context
	count         int
	trans         *i18n.Translations

	spinner     spinner.Model
	loading     bool
	suggestions []models.CommitSuggestion
	err         error
}

type suggestionsMsg []models.CommitSuggestion
type errMsg error

func initialModel(cs ports.CommitService, ctx context.Context, count int, t *i18n.Translations) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return model{
		commitService: cs,
		ctx:           ctx,
		count:         count,
		trans:         t,
		spinner:       s,
		loading:       true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchSuggestions)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case suggestionsMsg:
		m.suggestions = msg
		m.loading = false
		return m, tea.Quit
	case errMsg:
		m.err = msg
		m.loading = false
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("cancelled by user")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.err != nil {
		return ""
	}
	if m.loading {
		msg := m.trans.GetMessage("analyzing_changes", 0, nil)
		return fmt.Sprintf("\n %s %s\n\n", m.spinner.View(), msg)
	}
	return ""
}

func (m model) fetchSuggestions() tea.Msg {
	suggestions, err := m.commitService.GenerateSuggestions(m.ctx, m.count)
	if err != nil {
		return errMsg(err)
	}
	return suggestionsMsg(suggestions)
}
