package classifier

import (
	"strings"
	"testing"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestContentScorer_Score(t *testing.T) {
	scorer := NewContentScorer(DefaultRules(), DefaultTuning())

	t.Run("empty diff returns neutral chore", func(t *testing.T) {
		result := scorer.Score("")

		assert.Equal(t, models.TypeChore, result.Type)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Equal(t, "No diff content", result.Reason)
	})

	t.Run("each keyword occurrence adds half a point", func(t *testing.T) {
		result := scorer.Score("+ optimize the cache lookup")

		// optimize y cache son keywords de perf: 2 × 0.5
		assert.Equal(t, 1.0, result.AllScores[models.TypePerf])
	})

	t.Run("repeated keywords count every occurrence", func(t *testing.T) {
		single := scorer.Score("+ fix the login")
		double := scorer.Score("+ fix the login, fix the logout")

		assert.Greater(t, double.AllScores[models.TypeFix], single.AllScores[models.TypeFix])
	})

	t.Run("keyword match is case insensitive and whole word", func(t *testing.T) {
		result := scorer.Score("+ Refactor everything")

		assert.Equal(t, 0.5, result.AllScores[models.TypeRefactor])

		// prefix no cuenta como palabra completa
		noMatch := scorer.Score("+ refactoring plan")
		assert.Equal(t, 0.0, noMatch.AllScores[models.TypeRefactor])
	})

	t.Run("removed buggy lines reinforce fix", func(t *testing.T) {
		diff := "-    return nil // known crash on empty input\n+    return defaultValue\n"
		result := scorer.Score(diff)

		// "crash" cuenta como keyword (0.5) y como match del patrón de
		// línea eliminada (+1)
		assert.Equal(t, 1.5, result.AllScores[models.TypeFix])
	})

	t.Run("added fixing lines reinforce fix", func(t *testing.T) {
		diff := "+    // fixed the timeout handling\n"
		result := scorer.Score(diff)

		// "fixed" no es keyword exacta pero sí matchea el patrón de línea
		// agregada; "fix" como keyword no matchea dentro de "fixed"
		assert.Equal(t, 1.0, result.AllScores[models.TypeFix])
	})

	t.Run("duplicating a fix keyword never lowers the fix score", func(t *testing.T) {
		base := "+ resolve the bug in parser\n"
		result := scorer.Score(base)
		duplicated := scorer.Score(base + "+ bug\n")

		assert.GreaterOrEqual(t,
			duplicated.AllScores[models.TypeFix],
			result.AllScores[models.TypeFix])
	})

	t.Run("confidence divides the winner by the fixed normalizer", func(t *testing.T) {
		diff := strings.Repeat("+ add new feature\n", 3)
		result := scorer.Score(diff)

		assert.InDelta(t, result.AllScores[result.Type]/10.0, result.Confidence, 1e-9)
	})

	t.Run("reason reports the total keyword hits", func(t *testing.T) {
		result := scorer.Score("+ add support for themes")

		assert.Contains(t, result.Reason, "keyword matches")
	})
}
