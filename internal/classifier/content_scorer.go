package classifier

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// ContentScorer puntúa el texto del diff contra las keywords por categoría.
type ContentScorer struct {
	rules  *Rules
	tuning Tuning
}

func NewContentScorer(rules *Rules, tuning Tuning) *ContentScorer {
	return &ContentScorer{rules: rules, tuning: tuning}
}

// Score suma KeywordHitScore por cada ocurrencia de keyword en el diff
// (las repeticiones de una misma keyword cuentan todas) y aplica los dos
// patrones de línea específicos de fix, que suman 1 por match.
func (s *ContentScorer) Score(diff string) models.ScoreResult {
	if strings.TrimSpace(diff) == "" {
		return models.ScoreResult{
			Type:       models.TypeChore,
			Confidence: 0,
			Reason:     "No diff content",
			AllScores:  newScoreMap(),
		}
	}

	lowered := strings.ToLower(diff)
	scores := newScoreMap()
	totalHits := 0

	for _, commitType := range models.AllCommitTypes {
		for _, keyword := range s.rules.keywords[commitType] {
			hits := len(keyword.FindAllStringIndex(lowered, -1))
			if hits > 0 {
				scores[commitType] += float64(hits) * s.tuning.KeywordHitScore
				totalHits += hits
			}
		}
	}

	// Las líneas eliminadas con palabras de bug y las agregadas con
	// palabras de corrección refuerzan fix por encima de sus keywords.
	removedHits := len(s.rules.fixRemovedLine.FindAllStringIndex(diff, -1))
	addedHits := len(s.rules.fixAddedLine.FindAllStringIndex(diff, -1))
	scores[models.TypeFix] += float64(removedHits + addedHits)

	winner := argmax(scores)

	return models.ScoreResult{
		Type:       winner,
		Confidence: scores[winner] / s.tuning.ContentNormalizer,
		Reason:     fmt.Sprintf("Content analysis: %d keyword matches", totalHits),
		AllScores:  scores,
	}
}
