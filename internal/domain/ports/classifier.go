package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// CommitClassifier clasifica el change-set pendiente en una de las once
// categorías de conventional commits. El contrato es "siempre devuelve
// una Detection": los fallos de git o del scoring degradan a resultados
// neutrales, nunca a errores.
type CommitClassifier interface {
	// DetectCommitType analiza archivos y diff y devuelve la categoría
	// ganadora con su confianza en [0, 1].
	DetectCommitType(ctx context.Context) models.Detection
	// GenerateDescription compone una frase corta en minúsculas para
	// usar después de "type: " en el subject del commit.
	GenerateDescription(commitType models.CommitType, files []string) string
}
