package git

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	domainErrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// GetStagedFiles lista los paths en el área de staging.
func (s *GitService) GetStagedFiles(ctx context.Context) ([]string, error) {
	return s.listFiles(ctx, "diff", "--cached", "--name-only")
}

// GetModifiedFiles lista los paths modificados que todavía no están en staging.
func (s *GitService) GetModifiedFiles(ctx context.Context) ([]string, error) {
	return s.listFiles(ctx, "diff", "--name-only")
}

// GetAddedFiles lista los paths nuevos en el índice (status A).
func (s *GitService) GetAddedFiles(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-status")
	output, err := cmd.Output()
	if err != nil {
		return nil, domainErrors.NewGitCommandError("diff --cached --name-status", err)
	}

	return parseAddedFiles(string(output)), nil
}

// parseAddedFiles filtra las líneas "STATUS<TAB>path" con status A. Los
// paths pueden tener espacios, así que solo se corta por el tab.
func parseAddedFiles(output string) []string {
	added := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		status, path, found := strings.Cut(line, "\t")
		if !found || !strings.HasPrefix(status, "A") {
			continue
		}
		added = append(added, unquoteGitPath(strings.TrimSpace(path)))
	}
	return added
}

// unquoteGitPath deshace el quoting estilo C que git aplica a los paths
// con caracteres especiales (core.quotePath).
func unquoteGitPath(path string) string {
	if len(path) >= 2 && strings.HasPrefix(path, `"`) && strings.HasSuffix(path, `"`) {
		if unquoted, err := strconv.Unquote(path); err == nil {
			return unquoted
		}
	}
	return path
}

// GetStagedDiff devuelve el diff unificado completo del área de staging.
func (s *GitService) GetStagedDiff(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	output, err := cmd.Output()
	if err != nil {
		return "", domainErrors.NewGitCommandError("diff --cached", err)
	}
	return string(output), nil
}

// HasStagedChanges verifica si hay cambios en el área de staging
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// Si el comando retorna error (exit status 1), significa que hay cambios staged
	return err != nil && cmd.ProcessState.ExitCode() == 1
}

func (s *GitService) AddFileToStaging(ctx context.Context, file string) error {
	cmd := exec.CommandContext(ctx, "git", "add", "--all", "--", file)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error al agregar '%s': %v → %s", file, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	// Primero verificamos si hay cambios staged
	if !s.HasStagedChanges(ctx) {
		return fmt.Errorf("no hay cambios en el área de staging")
	}

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	return cmd.Run()
}

func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "branch", "--show-current")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("error al obtener el nombre de la branch: %v", err)
	}

	branchName := strings.TrimSpace(string(output))
	if branchName == "" {
		return "", fmt.Errorf("no se pudo detectar el nombre de la branch")
	}

	return branchName, nil
}

func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", "", fmt.Errorf("error al obtener la URL del repositorio: %w", err)
	}

	url := strings.TrimSpace(string(output))
	return parseRepoURL(url)
}

// GetLatestTag devuelve el último tag alcanzable desde HEAD, o vacío si
// el repo no tiene tags.
func (s *GitService) GetLatestTag(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "describe", "--tags", "--abbrev=0")
	output, err := cmd.Output()
	if err != nil {
		// repo sin tags: no es un error para el flujo de release
		return "", nil
	}
	return strings.TrimSpace(string(output)), nil
}

// GetCommitsSinceTag parsea los subjects de los commits desde el tag dado
// (o todo el historial si tag es vacío) como items de changelog.
func (s *GitService) GetCommitsSinceTag(ctx context.Context, tag string) ([]models.ReleaseItem, error) {
	args := []string{"log", "--pretty=format:%h%x09%s"}
	if tag != "" {
		args = append(args, tag+"..HEAD")
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, domainErrors.NewGitCommandError("log", err)
	}

	items := make([]models.ReleaseItem, 0)
	for _, line := range strings.Split(string(output), "\n") {
		hash, subject, found := strings.Cut(line, "\t")
		if !found || strings.TrimSpace(subject) == "" {
			continue
		}
		items = append(items, parseConventionalSubject(strings.TrimSpace(hash), strings.TrimSpace(subject)))
	}
	return items, nil
}

func (s *GitService) CreateTag(ctx context.Context, tag, message string) error {
	cmd := exec.CommandContext(ctx, "git", "tag", "-a", tag, "-m", message)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error al crear el tag '%s': %v → %s", tag, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func (s *GitService) PushTag(ctx context.Context, tag string) error {
	cmd := exec.CommandContext(ctx, "git", "push", "origin", tag)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error al pushear el tag '%s': %v → %s", tag, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func (s *GitService) listFiles(ctx context.Context, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, domainErrors.NewGitCommandError(strings.Join(args, " "), err)
	}

	files := make([]string, 0)
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

var conventionalSubjectRegex = regexp.MustCompile(`^(\w+)(\(([^)]*)\))?(!)?:\s*(.+)$`)

// parseConventionalSubject separa "type(scope): descripción". Si el subject
// no sigue la convención, cae en chore sin scope.
func parseConventionalSubject(hash, subject string) models.ReleaseItem {
	matches := conventionalSubjectRegex.FindStringSubmatch(subject)
	if matches != nil && models.IsValidCommitType(matches[1]) {
		return models.ReleaseItem{
			Type:        models.CommitType(matches[1]),
			Scope:       matches[3],
			Description: matches[5],
			Hash:        hash,
		}
	}
	return models.ReleaseItem{
		Type:        models.TypeChore,
		Description: subject,
		Hash:        hash,
	}
}

func parseRepoURL(url string) (string, string, string, error) {
	sshRegex := regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRegex := regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)

	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		provider := detectProvider(matches[1])
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, provider, nil
	}

	return "", "", "", fmt.Errorf("no se pudo extraer el propietario y el repositorio de la URL: %s", url)
}

func detectProvider(host string) string {
	if strings.Contains(host, "github") {
		return "github"
	}
	if strings.Contains(host, "gitlab") {
		return "gitlab"
	}
	return "unknown"
}
