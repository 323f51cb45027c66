package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProjectDetector_Detect(t *testing.T) {
	detector := NewProjectDetector()

	t.Run("node project with version", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "package.json", `{"name": "demo", "version": "2.1.0"}`)

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, models.ProjectNode, info.Kind)
		assert.Equal(t, "package.json", info.Manifest)
		assert.Equal(t, "2.1.0", info.Version)
	})

	t.Run("go project has no manifest version", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "go.mod", "module example.com/demo\n\ngo 1.23\n")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, models.ProjectGo, info.Kind)
		assert.Equal(t, "", info.Version)
	})

	t.Run("rust project reads Cargo.toml version", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"0.4.2\"\n")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, models.ProjectRust, info.Kind)
		assert.Equal(t, "0.4.2", info.Version)
	})

	t.Run("python project reads pyproject version", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "pyproject.toml", "[project]\nname = \"demo\"\nversion = \"1.5.0\"\n")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, models.ProjectPython, info.Kind)
		assert.Equal(t, "1.5.0", info.Version)
	})

	t.Run("poetry layout reads tool.poetry version", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "pyproject.toml", "[tool.poetry]\nname = \"demo\"\nversion = \"0.9.1\"\n")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, "0.9.1", info.Version)
	})

	t.Run("dependency versions do not leak into the manifest version", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"0.4.2\"\n\n[dependencies.serde]\nversion = \"1.0\"\n")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, "0.4.2", info.Version)
	})

	t.Run("broken Cargo.toml still detects rust", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "Cargo.toml", "[package\nversion =")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, models.ProjectRust, info.Kind)
		assert.Equal(t, "", info.Version)
	})

	t.Run("package.json wins over go.mod", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "package.json", `{"version": "1.0.0"}`)
		writeManifest(t, dir, "go.mod", "module example.com/demo\n")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, models.ProjectNode, info.Kind)
	})

	t.Run("empty dir is unknown with error", func(t *testing.T) {
		dir := t.TempDir()

		info, err := detector.Detect(context.Background(), dir)

		assert.Error(t, err)
		assert.Equal(t, models.ProjectUnknown, info.Kind)
	})

	t.Run("broken package.json still detects node", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "package.json", "{ not json")

		info, err := detector.Detect(context.Background(), dir)

		assert.NoError(t, err)
		assert.Equal(t, models.ProjectNode, info.Kind)
		assert.Equal(t, "", info.Version)
	})
}
