package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gc := github.NewClient(httpClient)

	return &GitHubClient{
		client: gc,
		owner:  owner,
		repo:   repo,
	}
}

// CreateRelease publica un release en GitHub para el tag del release dado.
func (ghc *GitHubClient) CreateRelease(ctx context.Context, release models.Release) (string, error) {
	tagName := release.Version
	name := release.Title
	body := release.Notes

	ghRelease := &github.RepositoryRelease{
		TagName: &tagName,
		Name:    &name,
		Body:    &body,
	}

	created, _, err := ghc.client.Repositories.CreateRelease(ctx, ghc.owner, ghc.repo, ghRelease)
	if err != nil {
		return "", fmt.Errorf("error al crear el release %s en GitHub: %w", tagName, err)
	}

	if created.HTMLURL != nil {
		return *created.HTMLURL, nil
	}
	return "", nil
}

// GetLatestRelease devuelve el tag del último release publicado, o vacío
// si el repo todavía no tiene releases.
func (ghc *GitHubClient) GetLatestRelease(ctx context.Context) (string, error) {
	release, resp, err := ghc.client.Repositories.GetLatestRelease(ctx, ghc.owner, ghc.repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("error al obtener el último release de GitHub: %w", err)
	}

	if release.TagName != nil {
		return *release.TagName, nil
	}
	return "", nil
}
