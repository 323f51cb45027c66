package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// VCSClient define los métodos para publicar releases en el proveedor
// de hosting (GitHub por ahora).
type VCSClient interface {
	// CreateRelease publica un release para el tag indicado.
	CreateRelease(ctx context.Context, release models.Release) (url string, err error)
	// GetLatestRelease devuelve el tag del último release publicado, o
	// vacío si el repo no tiene releases.
	GetLatestRelease(ctx context.Context) (string, error)
}

// ProjectDetector detecta el tipo de proyecto del worktree a partir de
// sus manifiestos (package.json, go.mod, Cargo.toml, pyproject.toml).
type ProjectDetector interface {
	Detect(ctx context.Context, dir string) (models.ProjectInfo, error)
}
