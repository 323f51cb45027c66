package classifier

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
)

var _ ports.CommitClassifier = (*Detector)(nil)

// Detector es el clasificador de commits: una función pura de
// (archivos, diff) a Detection. No guarda estado entre invocaciones y
// nunca devuelve error: los fallos de git degradan a resultados
// neutrales y cualquier pánico del scoring se mapea a un fallback.
type Detector struct {
	git           ports.GitService
	fileScorer    *FileScorer
	contentScorer *ContentScorer
	tuning        Tuning
}

func NewDetector(git ports.GitService, rules *Rules, tuning Tuning) *Detector {
	return &Detector{
		git:           git,
		fileScorer:    NewFileScorer(rules, tuning),
		contentScorer: NewContentScorer(rules, tuning),
		tuning:        tuning,
	}
}

// DetectCommitType consulta el estado del repo, corre los dos scorers y
// combina sus resultados. Contrato: siempre devuelve una Detection con
// un tipo del set cerrado y confianza en [0, 1].
func (d *Detector) DetectCommitType(ctx context.Context) (detection models.Detection) {
	defer func() {
		if r := recover(); r != nil {
			detection = models.Detection{
				Type:       models.TypeChore,
				Confidence: 0.3,
				Reason:     "Fallback due to error",
			}
		}
	}()

	changeSet := d.collectChangeSet(ctx)
	if changeSet.IsEmpty() {
		return models.Detection{
			Type:       models.TypeChore,
			Confidence: 0.5,
			Reason:     "No changes found",
		}
	}

	fileResult := d.fileScorer.Score(changeSet.AllFiles(), changeSet.Added)

	diff, err := d.git.GetStagedDiff(ctx)
	if err != nil {
		diff = ""
	}
	contentResult := d.contentScorer.Score(diff)

	return d.combine(fileResult, contentResult)
}

// collectChangeSet junta staged, modified y added. Un fallo de git se
// trata como "sin datos", nunca se propaga.
func (d *Detector) collectChangeSet(ctx context.Context) models.ChangeSet {
	staged, err := d.git.GetStagedFiles(ctx)
	if err != nil {
		staged = nil
	}
	modified, err := d.git.GetModifiedFiles(ctx)
	if err != nil {
		modified = nil
	}
	added, err := d.git.GetAddedFiles(ctx)
	if err != nil {
		added = nil
	}
	return models.ChangeSet{Staged: staged, Modified: modified, Added: added}
}

// combine aplica la combinación lineal FileWeight/ContentWeight sobre los
// scores de todas las categorías, normaliza la confianza y delega en el
// fallback cuando la evidencia combinada es demasiado débil.
func (d *Detector) combine(fileResult, contentResult models.ScoreResult) models.Detection {
	combined := newScoreMap()
	for _, commitType := range models.AllCommitTypes {
		combined[commitType] = d.tuning.FileWeight*fileResult.AllScores[commitType] +
			d.tuning.ContentWeight*contentResult.AllScores[commitType]
	}

	winner := argmax(combined)
	confidence := combined[winner] / d.tuning.CombinedNormalizer
	if confidence > 1 {
		confidence = 1
	}

	if confidence < d.tuning.FallbackThreshold {
		return d.fallback(fileResult)
	}

	return models.Detection{
		Type:       winner,
		Confidence: confidence,
		Reason:     fmt.Sprintf("Combined analysis: %s + %s", fileResult.Reason, contentResult.Reason),
	}
}

// fallback es la cadena fija de heurísticas para cuando el combinador no
// es confiable. El orden importa: docs primero, después configuración,
// y como último recurso se asume desarrollo de features.
func (d *Detector) fallback(fileResult models.ScoreResult) models.Detection {
	if fileResult.Type == models.TypeDocs && fileResult.Confidence > 0.5 {
		return models.Detection{
			Type:       models.TypeDocs,
			Confidence: 0.8,
			Reason:     "Only documentation files modified",
		}
	}
	if fileResult.Type == models.TypeChore && fileResult.Confidence > 0.5 {
		return models.Detection{
			Type:       models.TypeChore,
			Confidence: 0.7,
			Reason:     "Only configuration files modified",
		}
	}
	return models.Detection{
		Type:       models.TypeFeat,
		Confidence: 0.4,
		Reason:     "Default fallback - assuming feature development",
	}
}
