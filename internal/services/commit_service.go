package services

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
)

var _ ports.CommitService = (*CommitService)(nil)

// typeEmojis mapea cada categoría a su gitmoji para cuando use_emoji está activo.
var typeEmojis = map[models.CommitType]string{
	models.TypeFeat:     "✨",
	models.TypeFix:      "🐛",
	models.TypeDocs:     "📝",
	models.TypeStyle:    "💄",
	models.TypeRefactor: "♻️",
	models.TypePerf:     "⚡",
	models.TypeTest:     "✅",
	models.TypeBuild:    "📦",
	models.TypeCI:       "👷",
	models.TypeChore:    "🔧",
	models.TypeRevert:   "⏪",
}

// CommitService orquesta el flujo de sugerencias: lee el estado del repo,
// corre el clasificador heurístico y arma los títulos de commit.
type CommitService struct {
	git        ports.GitService
	classifier ports.CommitClassifier
	cfg        *config.Config
	t          *i18n.Translations
}

func NewCommitService(git ports.GitService, classifier ports.CommitClassifier, cfg *config.Config, t *i18n.Translations) *CommitService {
	return &CommitService{
		git:        git,
		classifier: classifier,
		cfg:        cfg,
		t:          t,
	}
}

func (s *CommitService) GenerateSuggestions(ctx context.Context, count int) ([]models.CommitSuggestion, error) {
	staged, err := s.git.GetStagedFiles(ctx)
	if err != nil {
		staged = nil
	}

	if len(staged) == 0 {
		msg := s.t.GetMessage("no_staged_changes", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	detection := s.classifier.DetectCommitType(ctx)

	suggestions := make([]models.CommitSuggestion, 0, count)
	for _, variant := range s.buildVariants(detection, staged) {
		if len(suggestions) == count {
			break
		}
		suggestions = append(suggestions, models.CommitSuggestion{
			CommitTitle: s.formatTitle(variant.commitType, variant.description),
			Explanation: fmt.Sprintf("%s (confidence: %.2f)", detection.Reason, detection.Confidence),
			Files:       staged,
			Detection:   detection,
		})
	}

	return suggestions, nil
}

type suggestionVariant struct {
	commitType  models.CommitType
	description string
}

// buildVariants arma las alternativas en orden de preferencia: la
// descripción generada para la categoría ganadora, una variante genérica
// del mismo tipo y un chore neutro como última opción. El clasificador es
// determinístico, así que para un mismo estado del repo las variantes son
// siempre las mismas.
func (s *CommitService) buildVariants(detection models.Detection, files []string) []suggestionVariant {
	primary := s.classifier.GenerateDescription(detection.Type, files)

	variants := []suggestionVariant{{commitType: detection.Type, description: primary}}

	generic := fmt.Sprintf("update %d file(s)", len(files))
	if generic != primary {
		variants = append(variants, suggestionVariant{commitType: detection.Type, description: generic})
	}

	if detection.Type != models.TypeChore {
		variants = append(variants, suggestionVariant{
			commitType:  models.TypeChore,
			description: s.classifier.GenerateDescription(models.TypeChore, files),
		})
	}

	return variants
}

// formatTitle compone "type: descripción", truncado a MaxLength y con el
// gitmoji adelante si está habilitado.
func (s *CommitService) formatTitle(commitType models.CommitType, description string) string {
	title := fmt.Sprintf("%s: %s", commitType, description)
	if s.cfg.UseEmoji {
		if emoji, ok := typeEmojis[commitType]; ok {
			title = emoji + " " + title
		}
	}
	if runes := []rune(title); s.cfg.MaxLength > 0 && len(runes) > s.cfg.MaxLength {
		title = string(runes[:s.cfg.MaxLength])
	}
	return title
}
