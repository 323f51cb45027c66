package config

import (
	"context"
	"fmt"

	cfgPkg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *cfgPkg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newShowCommand(t, cfg),
			f.newSetLangCommand(t, cfg),
			f.newSetTokenCommand(t, cfg),
		},
	}
}

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *cfgPkg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Printf("%s:\n", t.GetMessage("current_config", 0, nil))
			fmt.Printf("  language: %s\n", cfg.Language)
			fmt.Printf("  use_emoji: %t\n", cfg.UseEmoji)
			fmt.Printf("  max_length: %d\n", cfg.MaxLength)
			fmt.Printf("  suggestions_count: %d\n", cfg.SuggestionsCount)
			fmt.Printf("  min_auto_confidence: %.2f\n", cfg.MinAutoConfidence)
			if cfg.GitHubToken != "" {
				fmt.Println("  github_token: ****")
			} else {
				fmt.Println("  github_token: (not set)")
			}
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *cfgPkg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<en|es>",
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.Args().First()
			if lang != cfgPkg.LangEN && lang != cfgPkg.LangES {
				return fmt.Errorf("%s", t.GetMessage("unsupported_language", 0, map[string]interface{}{
					"Lang": lang,
				}))
			}

			cfg.Language = lang
			if err := cfgPkg.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("language_configured", 0, map[string]interface{}{"Lang": lang}))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newSetTokenCommand(t *i18n.Translations, cfg *cfgPkg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-token",
		Usage:     t.GetMessage("config_set_token_usage", 0, nil),
		ArgsUsage: "<token>",
		Action: func(ctx context.Context, command *cli.Command) error {
			token := command.Args().First()
			if token == "" {
				return fmt.Errorf("token vacío")
			}

			cfg.GitHubToken = token
			if err := cfgPkg.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("token_configured", 0, nil))
			return nil
		},
	}
}
