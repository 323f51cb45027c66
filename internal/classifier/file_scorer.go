package classifier

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// FileScorer puntúa el change-set contra los patrones de path por categoría.
type FileScorer struct {
	rules  *Rules
	tuning Tuning
}

func NewFileScorer(rules *Rules, tuning Tuning) *FileScorer {
	return &FileScorer{rules: rules, tuning: tuning}
}

// Score evalúa cada archivo contra los patrones de cada categoría.
// Por cada par (archivo, categoría) gana el primer patrón que matchea:
// suma 1 y no se siguen probando patrones, para no contar doble un
// mismo archivo dentro de la misma categoría.
func (s *FileScorer) Score(allFiles, addedFiles []string) models.ScoreResult {
	scores := newScoreMap()
	reasons := make(map[models.CommitType][]string)

	for _, file := range allFiles {
		for _, commitType := range models.AllCommitTypes {
			for _, pattern := range s.rules.pathPatterns[commitType] {
				if pattern.MatchString(file) {
					scores[commitType]++
					reasons[commitType] = append(reasons[commitType],
						fmt.Sprintf("Matches %s pattern: %s", commitType, file))
					break
				}
			}
		}
	}

	if newSources := s.countNewSourceFiles(addedFiles); newSources > 0 {
		scores[models.TypeFeat] += s.tuning.NewSourceFileBonus
		reasons[models.TypeFeat] = append(reasons[models.TypeFeat],
			fmt.Sprintf("%d new source file(s) added", newSources))
	}

	winner := argmax(scores)
	fileCount := len(allFiles)
	if fileCount < 1 {
		fileCount = 1
	}

	return models.ScoreResult{
		Type:       winner,
		Confidence: scores[winner] / float64(fileCount),
		Reason:     strings.Join(reasons[winner], "; "),
		AllScores:  scores,
	}
}

func (s *FileScorer) countNewSourceFiles(addedFiles []string) int {
	count := 0
	for _, file := range addedFiles {
		ext := strings.TrimPrefix(filepath.Ext(file), ".")
		if s.rules.IsSourceExtension(strings.ToLower(ext)) {
			count++
		}
	}
	return count
}

// newScoreMap inicializa todas las categorías en 0 para que el argmax sea total.
func newScoreMap() map[models.CommitType]float64 {
	scores := make(map[models.CommitType]float64, len(models.AllCommitTypes))
	for _, t := range models.AllCommitTypes {
		scores[t] = 0
	}
	return scores
}

// argmax devuelve la categoría con mayor score. Recorre las categorías en
// orden estable y desempata por ese orden, para que el resultado sea
// determinístico entre invocaciones.
func argmax(scores map[models.CommitType]float64) models.CommitType {
	best := models.AllCommitTypes[0]
	bestScore := scores[best]
	for _, t := range models.AllCommitTypes[1:] {
		if scores[t] > bestScore {
			best = t
			bestScore = scores[t]
		}
	}
	return best
}
