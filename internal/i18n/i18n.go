package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle con los mensajes embebidos en inglés y
// los archivos de locale opcionales (locales/active.*.toml).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Smart conventional commits without leaving your terminal"

	[app_description]
	other = "Analyzes your pending changes, guesses the conventional commit type with a confidence score and suggests ready-to-use commit messages"

	[help_command_usage]
	other = "Shows help for the application"

	[suggest_command_usage]
	other = "Suggest commit messages for your staged changes"

	[suggest_command_description]
	other = "Analyze your changes and suggest appropriate commit messages"

	[suggest_count_flag_usage]
	other = "Number of suggestions to generate"

	[suggest_lang_flag_usage]
	other = "Language for the messages (en, es)"

	[suggest_no_emoji_flag_usage]
	other = "Disable the gitmoji prefix in suggestions"

	[suggest_yes_flag_usage]
	other = "Commit the first suggestion without asking when confidence is high enough"

	[invalid_suggestions_count]
	other = "Number of suggestions must be between {{.Min}} and {{.Max}}"

	[no_staged_changes]
	other = "No staged changes to commit.\nUse 'git add' to stage your changes first"

	[analyzing_changes]
	other = "Analyzing changes..."

	[suggestion_generation_error]
	other = "Could not generate suggestions: {{.Error}}"

	[detection_type_label]
	other = "Detected type: {{.Type}} (confidence {{.Confidence}})"

	[detection_reason_label]
	other = "Reason: {{.Reason}}"

	[commit.header_message]
	other = "Commit suggestions"

	[current_branch_label]
	other = "Branch: {{.Branch}}"

	[commit.files_label]
	other = "Modified files:"

	[commit.select_option_prompt]
	other = "Select an option:"

	[commit.option_commit]
	other = "1-N: Use that suggestion"

	[commit.option_exit]
	other = "0: Exit without committing"

	[commit.prompt_selection]
	other = "Enter your selection: "

	[commit.error_reading_selection]
	other = "Error reading selection: {{.Error}}"

	[commit.operation_canceled]
	other = "Operation cancelled"

	[commit.invalid_selection]
	other = "Invalid selection. Choose a number between 0 and {{.Number}}"

	[commit.add_file_to_staging]
	other = "File added to staging: {{.File}}\n"

	[commit.error_add_file_staging]
	other = "Error staging '{{.File}}': {{.Error}}"

	[commit.error_creating_commit]
	other = "Error creating commit '{{.Commit}}': {{.Error}}"

	[commit.commit_successful]
	other = "Commit created successfully: {{.CommitTitle}}"

	[config_command_usage]
	other = "Manage smart-commit configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[current_config]
	other = "Current configuration"

	[config_set_lang_usage]
	other = "Set the interface language"

	[language_configured]
	other = "Language set to '{{.Lang}}'"

	[unsupported_language]
	other = "Unsupported language: '{{.Lang}}'. Supported: en, es"

	[config_set_token_usage]
	other = "Set the GitHub token used to publish releases"

	[token_configured]
	other = "GitHub token saved"

	[release_command_usage]
	other = "Create and publish a release"

	[release_create_usage]
	other = "Bump the version, tag it and publish a GitHub release"

	[release_bump_flag_usage]
	other = "Version bump kind: major, minor or patch"

	[release_dry_run_flag_usage]
	other = "Compute the release without tagging or publishing"

	[release_detecting_project]
	other = "Detecting project type..."

	[release_project_detected]
	other = "Detected {{.Kind}} project (manifest: {{.Manifest}})"

	[release_no_commits]
	other = "No commits since {{.Tag}}; nothing to release"

	[release_tag_created]
	other = "Tag {{.Tag}} created and pushed"

	[release_published]
	other = "Release published: {{.URL}}"

	[release_dry_run_result]
	other = "Dry run: would release {{.Version}} (previous {{.Previous}})"

	[release_missing_token]
	other = "No GitHub token configured. Set it with 'smart-commit config set-token'"

	[invalid_bump_kind]
	other = "Invalid bump kind '{{.Kind}}'. Use major, minor or patch"

	[factory_already_registered]
	other = "Command factory '{{.FactoryName}}' is already registered"

	[modified_files_count]
	one = "{{.Count}} file modified"
	other = "{{.Count}} files modified"
	`
