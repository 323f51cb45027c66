package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
)

// BumpKind es el tipo de incremento de versión de un release.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

func ParseBumpKind(s string) (BumpKind, error) {
	switch BumpKind(strings.ToLower(s)) {
	case BumpMajor:
		return BumpMajor, nil
	case BumpMinor:
		return BumpMinor, nil
	case BumpPatch:
		return BumpPatch, nil
	default:
		return "", fmt.Errorf("tipo de incremento inválido: %s", s)
	}
}

// sectionOrder define el orden de las secciones del changelog.
var sectionOrder = []struct {
	commitType models.CommitType
	heading    string
}{
	{models.TypeFeat, "Features"},
	{models.TypeFix, "Bug Fixes"},
	{models.TypePerf, "Performance"},
	{models.TypeRefactor, "Refactors"},
	{models.TypeDocs, "Documentation"},
	{models.TypeTest, "Tests"},
	{models.TypeBuild, "Build"},
	{models.TypeCI, "CI"},
	{models.TypeStyle, "Styles"},
	{models.TypeRevert, "Reverts"},
	{models.TypeChore, "Chores"},
}

// ReleaseService calcula la próxima versión semver, agrupa los commits
// desde el último tag por tipo convencional y publica el release.
type ReleaseService struct {
	git ports.GitService
	vcs ports.VCSClient
}

func NewReleaseService(git ports.GitService, vcs ports.VCSClient) *ReleaseService {
	return &ReleaseService{git: git, vcs: vcs}
}

// PrepareRelease arma el release para el bump pedido sin tocar nada:
// ni tags ni publicación.
func (s *ReleaseService) PrepareRelease(ctx context.Context, bump BumpKind) (models.Release, error) {
	previousTag, err := s.git.GetLatestTag(ctx)
	if err != nil {
		return models.Release{}, fmt.Errorf("error al obtener el último tag: %w", err)
	}

	current := previousTag
	if current == "" {
		current = "v0.0.0"
	}

	next, err := NextVersion(current, bump)
	if err != nil {
		return models.Release{}, err
	}

	items, err := s.git.GetCommitsSinceTag(ctx, previousTag)
	if err != nil {
		return models.Release{}, fmt.Errorf("error al listar los commits desde %s: %w", previousTag, err)
	}

	// Sin commits nuevos las secciones quedan vacías; decidir si eso
	// corta el flujo es responsabilidad del comando, no del servicio.
	sections := make(map[models.CommitType][]models.ReleaseItem)
	for _, item := range items {
		sections[item.Type] = append(sections[item.Type], item)
	}

	release := models.Release{
		Version:         next,
		PreviousVersion: previousTag,
		Title:           next,
		Date:            time.Now(),
		Sections:        sections,
	}
	release.Notes = renderNotes(release)

	return release, nil
}

// PublishRelease crea el tag, lo pushea y publica el release en el VCS.
// Si el VCS ya tiene publicada esa versión se corta antes de taggear.
func (s *ReleaseService) PublishRelease(ctx context.Context, release models.Release) (string, error) {
	if published, err := s.vcs.GetLatestRelease(ctx); err == nil && published == release.Version {
		return "", fmt.Errorf("el release %s ya está publicado", release.Version)
	}

	if err := s.git.CreateTag(ctx, release.Version, release.Title); err != nil {
		return "", err
	}
	if err := s.git.PushTag(ctx, release.Version); err != nil {
		return "", err
	}
	url, err := s.vcs.CreateRelease(ctx, release)
	if err != nil {
		return "", fmt.Errorf("error al publicar el release %s: %w", release.Version, err)
	}
	return url, nil
}

func renderNotes(release models.Release) string {
	var b strings.Builder
	for _, section := range sectionOrder {
		items := release.Sections[section.commitType]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", section.heading)
		for _, item := range items {
			if item.Scope != "" {
				fmt.Fprintf(&b, "- **%s**: %s (%s)\n", item.Scope, item.Description, item.Hash)
			} else {
				fmt.Fprintf(&b, "- %s (%s)\n", item.Description, item.Hash)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// NextVersion calcula la versión siguiente a partir de una dada.
// Por ej: v1.3.0 + patch -> v1.3.1
func NextVersion(version string, bump BumpKind) (string, error) {
	trimmed := strings.TrimPrefix(version, "v")

	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return "", domainErrors.NewInvalidVersionError(version)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("versión major no válida: %s", parts[0])
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("versión minor no válida: %s", parts[1])
	}

	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("versión de parche no válida: %s", parts[2])
	}

	switch bump {
	case BumpMajor:
		major++
		minor = 0
		patch = 0
	case BumpMinor:
		minor++
		patch = 0
	case BumpPatch:
		patch++
	default:
		return "", fmt.Errorf("tipo de incremento inválido: %s", bump)
	}

	return fmt.Sprintf("v%d.%d.%d", major, minor, patch), nil
}
