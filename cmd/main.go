package main

import (
	"context"
	"fmt"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/SmartCommit/internal/cli/command/config"
	"github.com/Tomas-vilte/SmartCommit/internal/cli/command/handler"
	releasecmd "github.com/Tomas-vilte/SmartCommit/internal/cli/command/release"
	"github.com/Tomas-vilte/SmartCommit/internal/cli/command/suggest"
	"github.com/Tomas-vilte/SmartCommit/internal/cli/registry"
	"github.com/Tomas-vilte/SmartCommit/internal/classifier"
	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/Tomas-vilte/SmartCommit/internal/infrastructure/git"
	"github.com/Tomas-vilte/SmartCommit/internal/services"
	"github.com/Tomas-vilte/SmartCommit/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfg.GetLocaleConfig(cfgApp.Language), "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, err
	}

	gitService := git.NewGitService()

	// Las tablas de reglas y las constantes de afinado se construyen una
	// sola vez y se inyectan: el detector no tiene estado propio.
	detector := classifier.NewDetector(gitService, classifier.DefaultRules(), classifier.DefaultTuning())

	commitService := services.NewCommitService(gitService, detector, cfgApp, translations)
	commitHandler := handler.NewSuggestionHandler(gitService, translations)
	projectDetector := services.NewProjectDetector()

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("suggest", suggest.NewSuggestCommandFactory(commitService, commitHandler, gitService)); err != nil {
		log.Fatalf("Error al registrar el comando 'suggest': %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	if err := registerCommand.Register("release", releasecmd.NewReleaseCommandFactory(gitService, projectDetector)); err != nil {
		log.Fatalf("Error al registrar el comando 'release': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "smart-commit",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
