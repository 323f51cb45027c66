package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

type CommitService interface {
	// GenerateSuggestions genera sugerencias de commit basadas en los cambios detectados
	GenerateSuggestions(ctx context.Context, count int) ([]models.CommitSuggestion, error)
}

type CommitHandler interface {
	HandleSuggestions(ctx context.Context, suggestions []models.CommitSuggestion) error
}
