package release

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/SmartCommit/internal/config"
	domainErrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/Tomas-vilte/SmartCommit/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/SmartCommit/internal/services"
	"github.com/urfave/cli/v3"
)

type ReleaseCommandFactory struct {
	gitService      ports.GitService
	projectDetector ports.ProjectDetector
}

func NewReleaseCommandFactory(gitService ports.GitService, projectDetector ports.ProjectDetector) *ReleaseCommandFactory {
	return &ReleaseCommandFactory{
		gitService:      gitService,
		projectDetector: projectDetector,
	}
}

func (f *ReleaseCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "release",
		Usage: t.GetMessage("release_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newCreateCommand(t, cfg),
		},
	}
}

func (f *ReleaseCommandFactory) newCreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: t.GetMessage("release_create_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "bump",
				Aliases: []string{"b"},
				Value:   string(services.BumpPatch),
				Usage:   t.GetMessage("release_bump_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: t.GetMessage("release_dry_run_flag_usage", 0, nil),
			},
		},
		Action: f.createAction(t, cfg),
	}
}

func (f *ReleaseCommandFactory) createAction(t *i18n.Translations, cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		bump, err := services.ParseBumpKind(command.String("bump"))
		if err != nil {
			return fmt.Errorf("%s", t.GetMessage("invalid_bump_kind", 0, map[string]interface{}{
				"Kind": command.String("bump"),
			}))
		}

		// El tipo de proyecto es informativo: el versionado sale de los
		// tags de git, no del manifiesto.
		fmt.Println(t.GetMessage("release_detecting_project", 0, nil))
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("error al obtener el directorio actual: %w", err)
		}
		if info, err := f.projectDetector.Detect(ctx, cwd); err == nil {
			fmt.Println(t.GetMessage("release_project_detected", 0, map[string]interface{}{
				"Kind":     string(info.Kind),
				"Manifest": info.Manifest,
			}))
		}

		owner, repo, provider, err := f.gitService.GetRepoInfo(ctx)
		if err != nil {
			return err
		}
		if provider != "github" {
			return domainErrors.NewVCSProviderNotConfiguredError(provider)
		}

		vcsClient := github.NewGitHubClient(owner, repo, cfg.GitHubToken)
		releaseService := services.NewReleaseService(f.gitService, vcsClient)

		release, err := releaseService.PrepareRelease(ctx, bump)
		if err != nil {
			return err
		}

		if len(release.Sections) == 0 {
			since := release.PreviousVersion
			if since == "" {
				since = "v0.0.0"
			}
			fmt.Println(t.GetMessage("release_no_commits", 0, map[string]interface{}{
				"Tag": since,
			}))
			return nil
		}

		if command.Bool("dry-run") {
			fmt.Println(t.GetMessage("release_dry_run_result", 0, map[string]interface{}{
				"Version":  release.Version,
				"Previous": release.PreviousVersion,
			}))
			fmt.Println()
			fmt.Println(release.Notes)
			return nil
		}

		if cfg.GitHubToken == "" {
			return fmt.Errorf("%s", t.GetMessage("release_missing_token", 0, nil))
		}

		url, err := releaseService.PublishRelease(ctx, release)
		if err != nil {
			return err
		}

		fmt.Println(t.GetMessage("release_tag_created", 0, map[string]interface{}{"Tag": release.Version}))
		fmt.Println(t.GetMessage("release_published", 0, map[string]interface{}{"URL": url}))
		return nil
	}
}
