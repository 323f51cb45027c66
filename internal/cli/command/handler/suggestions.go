package handler

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"strings"
)

var _ ports.CommitHandler = (*SuggestionHandler)(nil)

type SuggestionHandler struct {
	gitService ports.GitService
	t          *i18n.Translations
}

func NewSuggestionHandler(git ports.GitService, t *i18n.Translations) *SuggestionHandler {
	return &SuggestionHandler{
		gitService: git,
		t:          t,
	}
}

func (h *SuggestionHandler) HandleSuggestions(ctx context.Context, suggestions []models.CommitSuggestion) error {
	h.displaySuggestions(ctx, suggestions)
	return h.handleCommitSelection(ctx, suggestions)
}

func (h *SuggestionHandler) displaySuggestions(ctx context.Context, suggestions []models.CommitSuggestion) {
	fmt.Printf("%s\n", h.t.GetMessage("commit.header_message", 0, nil))

	if branch, err := h.gitService.GetCurrentBranch(ctx); err == nil {
		fmt.Println(h.t.GetMessage("current_branch_label", 0, map[string]interface{}{
			"Branch": branch,
		}))
	}

	for i, suggestion := range suggestions {
		fmt.Printf("\n=========[ Sugerencia %d ]=========\n", i+1)

		fmt.Printf("Commit: %s\n", suggestion.CommitTitle)

		fmt.Println(h.t.GetMessage("detection_type_label", 0, map[string]interface{}{
			"Type":       suggestion.Detection.Type,
			"Confidence": fmt.Sprintf("%.2f", suggestion.Detection.Confidence),
		}))
		fmt.Println(h.t.GetMessage("detection_reason_label", 0, map[string]interface{}{
			"Reason": suggestion.Detection.Reason,
		}))

		fmt.Printf("\n%s (%s)\n", h.t.GetMessage("commit.files_label", 0, nil),
			h.t.GetMessage("modified_files_count", len(suggestion.Files), map[string]interface{}{
				"Count": len(suggestion.Files),
			}))
		for _, file := range suggestion.Files {
			fmt.Printf("   - %s\n", file)
		}

		fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━")
	}

	fmt.Println(h.t.GetMessage("commit.select_option_prompt", 0, nil))
	fmt.Println(h.t.GetMessage("commit.option_commit", 0, nil))
	fmt.Println(h.t.GetMessage("commit.option_exit", 0, nil))
}

func (h *SuggestionHandler) handleCommitSelection(ctx context.Context, suggestions []models.CommitSuggestion) error {
	var selection int
	fmt.Print(h.t.GetMessage("commit.prompt_selection", 0, nil))
	if _, err := fmt.Scan(&selection); err != nil {
		msg := h.t.GetMessage("commit.error_reading_selection", 0, map[string]interface{}{"Error": err})
		return fmt.Errorf("%s", msg)
	}

	if selection == 0 {
		fmt.Println(h.t.GetMessage("commit.operation_canceled", 0, nil))
		return nil
	}

	if selection < 1 || selection > len(suggestions) {
		msg := h.t.GetMessage("commit.invalid_selection", 0, map[string]interface{}{"Number": len(suggestions)})
		return fmt.Errorf("%s", msg)
	}

	return h.processCommit(ctx, suggestions[selection-1])
}

func (h *SuggestionHandler) processCommit(ctx context.Context, suggestion models.CommitSuggestion) error {
	commitTitle := strings.TrimSpace(strings.TrimPrefix(suggestion.CommitTitle, "Commit: "))

	for _, file := range suggestion.Files {
		if err := h.gitService.AddFileToStaging(ctx, file); err != nil {
			msg := h.t.GetMessage("commit.error_add_file_staging", 0, map[string]interface{}{
				"File":  file,
				"Error": err,
			})
			return fmt.Errorf("%s", msg)
		}
		msg := h.t.GetMessage("commit.add_file_to_staging", 0, map[string]interface{}{"File": file})
		fmt.Printf("%s", msg)
	}

	if err := h.gitService.CreateCommit(ctx, commitTitle); err != nil {
		msg := h.t.GetMessage("commit.error_creating_commit", 0, map[string]interface{}{
			"Commit": commitTitle,
			"Error":  err,
		})
		return fmt.Errorf("%s", msg)
	}

	fmt.Printf("%s\n", h.t.GetMessage("commit.commit_successful", 0, map[string]interface{}{"CommitTitle": commitTitle}))
	return nil
}
