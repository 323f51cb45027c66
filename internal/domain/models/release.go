package models

import "time"

type (
	// Release representa un release listo para publicar.
	Release struct {
		Version         string
		PreviousVersion string
		Title           string
		Notes           string
		Date            time.Time
		Sections        map[CommitType][]ReleaseItem
	}

	// ReleaseItem es una línea del changelog, derivada del subject
	// de un commit convencional.
	ReleaseItem struct {
		Type        CommitType
		Scope       string
		Description string
		Hash        string
	}

	// ProjectKind identifica el tipo de proyecto detectado en el worktree.
	ProjectKind string

	// ProjectInfo es el resultado de la detección de tipo de proyecto.
	ProjectInfo struct {
		Kind     ProjectKind
		Manifest string
		Version  string
	}
)

const (
	ProjectNode    ProjectKind = "node"
	ProjectGo      ProjectKind = "go"
	ProjectRust    ProjectKind = "rust"
	ProjectPython  ProjectKind = "python"
	ProjectUnknown ProjectKind = "unknown"
)
