package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const readmeDiff = `diff --git a/README.md b/README.md
index 83db48f..bf269f7 100644
--- a/README.md
+++ b/README.md
@@ -1,3 +1,4 @@
 # smart-commit
+Instrucciones de instalación para desarrollo local.
`

const eslintDiff = `diff --git a/.eslintrc.js b/.eslintrc.js
--- a/.eslintrc.js
+++ b/.eslintrc.js
@@ -1,3 +1,3 @@
 module.exports = {
-  extends: 'eslint:all',
+  extends: 'eslint:recommended',
 }
diff --git a/.gitignore b/.gitignore
--- a/.gitignore
+++ b/.gitignore
@@ -1,2 +1,3 @@
 node_modules/
+dist/
`

const packageJSONDiff = `diff --git a/package.json b/package.json
--- a/package.json
+++ b/package.json
@@ -10,6 +10,7 @@
   "dependencies": {
+    "left-pad": "^1.3.0",
diff --git a/package-lock.json b/package-lock.json
--- a/package-lock.json
+++ b/package-lock.json
@@ -100,6 +100,12 @@
+    "left-pad": {
+      "version": "1.3.0"
+    },
`

const buttonDiff = `diff --git a/src/components/Button.tsx b/src/components/Button.tsx
new file mode 100644
--- /dev/null
+++ b/src/components/Button.tsx
@@ -0,0 +1,5 @@
+// add primary Button component
+export const Button = () => {
+  return <button>Click</button>
+}
`

const loginTestDiff = `diff --git a/tests/login.test.js b/tests/login.test.js
--- a/tests/login.test.js
+++ b/tests/login.test.js
@@ -5,6 +5,10 @@
+  it('rejects wrong passwords', () => {
+    expect(login('nope')).toBe(false)
+  })
`

func setupDetector(t *testing.T, staged, modified, added []string, diff string) *Detector {
	t.Helper()
	mockGit := new(MockGitService)
	mockGit.On("GetStagedFiles", mock.Anything).Return(staged, nil)
	mockGit.On("GetModifiedFiles", mock.Anything).Return(modified, nil)
	mockGit.On("GetAddedFiles", mock.Anything).Return(added, nil)
	mockGit.On("GetStagedDiff", mock.Anything).Return(diff, nil)
	return NewDetector(mockGit, DefaultRules(), DefaultTuning())
}

func TestDetector_DetectCommitType(t *testing.T) {
	t.Run("empty change set returns neutral chore", func(t *testing.T) {
		detector := setupDetector(t, []string{}, []string{}, []string{}, "")

		detection := detector.DetectCommitType(context.Background())

		assert.Equal(t, models.TypeChore, detection.Type)
		assert.Equal(t, 0.5, detection.Confidence)
		assert.Equal(t, "No changes found", detection.Reason)
	})

	t.Run("readme only goes through docs fallback", func(t *testing.T) {
		detector := setupDetector(t, []string{"README.md"}, nil, nil, readmeDiff)

		detection := detector.DetectCommitType(context.Background())

		assert.Equal(t, models.TypeDocs, detection.Type)
		assert.Equal(t, 0.8, detection.Confidence)
		assert.Equal(t, "Only documentation files modified", detection.Reason)
	})

	t.Run("config files only detects chore with solid confidence", func(t *testing.T) {
		detector := setupDetector(t, []string{".eslintrc.js", ".gitignore"}, nil, nil, eslintDiff)

		detection := detector.DetectCommitType(context.Background())

		assert.Equal(t, models.TypeChore, detection.Type)
		assert.GreaterOrEqual(t, detection.Confidence, 0.5)
	})

	t.Run("manifest files never classify as feat", func(t *testing.T) {
		detector := setupDetector(t, []string{"package.json", "package-lock.json"}, nil, nil, packageJSONDiff)

		detection := detector.DetectCommitType(context.Background())

		assert.Contains(t, []models.CommitType{models.TypeBuild, models.TypeChore}, detection.Type)
		assert.NotEqual(t, models.TypeFeat, detection.Type)
	})

	t.Run("new component dominates every other category", func(t *testing.T) {
		files := []string{"src/components/Button.tsx"}
		detector := setupDetector(t, files, nil, files, buttonDiff)

		detection := detector.DetectCommitType(context.Background())

		assert.Equal(t, models.TypeFeat, detection.Type)

		// el score combinado de feat tiene que superar a todas las demás categorías
		tuning := DefaultTuning()
		rules := DefaultRules()
		fileResult := NewFileScorer(rules, tuning).Score(files, files)
		contentResult := NewContentScorer(rules, tuning).Score(buttonDiff)
		featCombined := tuning.FileWeight*fileResult.AllScores[models.TypeFeat] +
			tuning.ContentWeight*contentResult.AllScores[models.TypeFeat]
		for _, commitType := range models.AllCommitTypes {
			if commitType == models.TypeFeat {
				continue
			}
			combined := tuning.FileWeight*fileResult.AllScores[commitType] +
				tuning.ContentWeight*contentResult.AllScores[commitType]
			assert.Greater(t, featCombined, combined, "feat debería superar a %s", commitType)
		}

		description := detector.GenerateDescription(detection.Type, files)
		assert.Contains(t, description, "component")
	})

	t.Run("test file classifies as test", func(t *testing.T) {
		detector := setupDetector(t, []string{"tests/login.test.js"}, nil, nil, loginTestDiff)

		detection := detector.DetectCommitType(context.Background())

		assert.Equal(t, models.TypeTest, detection.Type)
	})

	t.Run("detection is idempotent for the same repo state", func(t *testing.T) {
		detector := setupDetector(t, []string{"src/api/users.go"}, nil, nil, "diff --git a/src/api/users.go b/src/api/users.go\n+// add pagination support\n")

		first := detector.DetectCommitType(context.Background())
		second := detector.DetectCommitType(context.Background())

		assert.Equal(t, first, second)
	})

	t.Run("git failures degrade to neutral result", func(t *testing.T) {
		mockGit := new(MockGitService)
		gitErr := errors.New("git no está instalado")
		mockGit.On("GetStagedFiles", mock.Anything).Return([]string(nil), gitErr)
		mockGit.On("GetModifiedFiles", mock.Anything).Return([]string(nil), gitErr)
		mockGit.On("GetAddedFiles", mock.Anything).Return([]string(nil), gitErr)
		detector := NewDetector(mockGit, DefaultRules(), DefaultTuning())

		detection := detector.DetectCommitType(context.Background())

		assert.Equal(t, models.TypeChore, detection.Type)
		assert.Equal(t, 0.5, detection.Confidence)
	})

	t.Run("panic during scoring maps to degraded chore", func(t *testing.T) {
		mockGit := new(MockGitService)
		mockGit.On("GetStagedFiles", mock.Anything).Run(func(args mock.Arguments) {
			panic("algo explotó")
		}).Return([]string{}, nil)
		detector := NewDetector(mockGit, DefaultRules(), DefaultTuning())

		detection := detector.DetectCommitType(context.Background())

		assert.Equal(t, models.TypeChore, detection.Type)
		assert.Equal(t, 0.3, detection.Confidence)
		assert.Equal(t, "Fallback due to error", detection.Reason)
	})

	t.Run("every scenario stays inside the contract", func(t *testing.T) {
		scenarios := []struct {
			name   string
			staged []string
			added  []string
			diff   string
		}{
			{"empty", nil, nil, ""},
			{"readme", []string{"README.md"}, nil, readmeDiff},
			{"configs", []string{".eslintrc.js", ".gitignore"}, nil, eslintDiff},
			{"manifests", []string{"package.json", "package-lock.json"}, nil, packageJSONDiff},
			{"component", []string{"src/components/Button.tsx"}, []string{"src/components/Button.tsx"}, buttonDiff},
			{"tests", []string{"tests/login.test.js"}, nil, loginTestDiff},
		}

		for _, scenario := range scenarios {
			detector := setupDetector(t, scenario.staged, nil, scenario.added, scenario.diff)
			detection := detector.DetectCommitType(context.Background())

			assert.True(t, models.IsValidCommitType(string(detection.Type)), "tipo inválido en %s", scenario.name)
			assert.GreaterOrEqual(t, detection.Confidence, 0.0, "confianza negativa en %s", scenario.name)
			assert.LessOrEqual(t, detection.Confidence, 1.0, "confianza mayor a 1 en %s", scenario.name)
		}
	})
}

func TestDetector_Fallback(t *testing.T) {
	detector := NewDetector(new(MockGitService), DefaultRules(), DefaultTuning())

	t.Run("docs fallback wins first", func(t *testing.T) {
		fileResult := models.ScoreResult{Type: models.TypeDocs, Confidence: 0.9}

		detection := detector.fallback(fileResult)

		assert.Equal(t, models.TypeDocs, detection.Type)
		assert.Equal(t, 0.8, detection.Confidence)
	})

	t.Run("chore fallback wins second", func(t *testing.T) {
		fileResult := models.ScoreResult{Type: models.TypeChore, Confidence: 0.6}

		detection := detector.fallback(fileResult)

		assert.Equal(t, models.TypeChore, detection.Type)
		assert.Equal(t, 0.7, detection.Confidence)
	})

	t.Run("default fallback assumes feature work", func(t *testing.T) {
		fileResult := models.ScoreResult{Type: models.TypeRefactor, Confidence: 0.2}

		detection := detector.fallback(fileResult)

		assert.Equal(t, models.TypeFeat, detection.Type)
		assert.Equal(t, 0.4, detection.Confidence)
		assert.Equal(t, "Default fallback - assuming feature development", detection.Reason)
	})
}
