package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// GitService define el inspector del repositorio: todo lo que el
// clasificador y el workflow de commit necesitan leer o tocar de git.
// Las consultas de lectura degradan a vacío en caso de fallo; los scorers
// nunca dependen de que git esté disponible.
type GitService interface {
	// GetStagedFiles lista los paths en staging (git diff --cached --name-only).
	GetStagedFiles(ctx context.Context) ([]string, error)
	// GetModifiedFiles lista los paths modificados sin stagear (git diff --name-only).
	GetModifiedFiles(ctx context.Context) ([]string, error)
	// GetAddedFiles lista los paths nuevos en el índice (status A).
	GetAddedFiles(ctx context.Context) ([]string, error)
	// GetStagedDiff devuelve el diff unificado completo del área de staging.
	GetStagedDiff(ctx context.Context) (string, error)

	HasStagedChanges(ctx context.Context) bool
	AddFileToStaging(ctx context.Context, file string) error
	CreateCommit(ctx context.Context, message string) error
	GetCurrentBranch(ctx context.Context) (string, error)
	GetRepoInfo(ctx context.Context) (owner, repo, provider string, err error)

	GetLatestTag(ctx context.Context) (string, error)
	GetCommitsSinceTag(ctx context.Context, tag string) ([]models.ReleaseItem, error)
	CreateTag(ctx context.Context, tag, message string) error
	PushTag(ctx context.Context, tag string) error
}
