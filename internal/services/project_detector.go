package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
)

var _ ports.ProjectDetector = (*ProjectDetector)(nil)

// ProjectDetector detecta el tipo de proyecto mirando los manifiestos del
// worktree. El primer manifiesto encontrado gana, en este orden:
// package.json, go.mod, Cargo.toml, pyproject.toml.
type ProjectDetector struct{}

func NewProjectDetector() *ProjectDetector {
	return &ProjectDetector{}
}

func (d *ProjectDetector) Detect(_ context.Context, dir string) (models.ProjectInfo, error) {
	probes := []struct {
		manifest string
		kind     models.ProjectKind
		version  func(content []byte) string
	}{
		{"package.json", models.ProjectNode, packageJSONVersion},
		{"go.mod", models.ProjectGo, func([]byte) string { return "" }},
		{"Cargo.toml", models.ProjectRust, tomlVersion},
		{"pyproject.toml", models.ProjectPython, tomlVersion},
	}

	for _, probe := range probes {
		path := filepath.Join(dir, probe.manifest)
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return models.ProjectInfo{
			Kind:     probe.kind,
			Manifest: probe.manifest,
			Version:  probe.version(content),
		}, nil
	}

	return models.ProjectInfo{Kind: models.ProjectUnknown}, fmt.Errorf("no se encontró ningún manifiesto de proyecto en %s", dir)
}

func packageJSONVersion(content []byte) string {
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return ""
	}
	return pkg.Version
}

// tomlVersion cubre los tres layouts de manifiesto TOML: [package] de
// Cargo, [project] de PEP 621 y [tool.poetry] de Poetry.
func tomlVersion(content []byte) string {
	var manifest struct {
		Package struct {
			Version string `toml:"version"`
		} `toml:"package"`
		Project struct {
			Version string `toml:"version"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Version string `toml:"version"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(content, &manifest); err != nil {
		return ""
	}

	switch {
	case manifest.Package.Version != "":
		return manifest.Package.Version
	case manifest.Project.Version != "":
		return manifest.Project.Version
	default:
		return manifest.Tool.Poetry.Version
	}
}
