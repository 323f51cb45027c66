package release

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/SmartCommit/internal/config"
	domainErrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock para GitService
type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) GetStagedFiles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitService) GetModifiedFiles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitService) GetAddedFiles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitService) GetStagedDiff(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) HasStagedChanges(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockGitService) AddFileToStaging(ctx context.Context, file string) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockGitService) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockGitService) GetCurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

func (m *MockGitService) GetLatestTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetCommitsSinceTag(ctx context.Context, tag string) ([]models.ReleaseItem, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).([]models.ReleaseItem), args.Error(1)
}

func (m *MockGitService) CreateTag(ctx context.Context, tag, message string) error {
	args := m.Called(ctx, tag, message)
	return args.Error(0)
}

func (m *MockGitService) PushTag(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// Mock para ProjectDetector
type MockProjectDetector struct {
	mock.Mock
}

func (m *MockProjectDetector) Detect(ctx context.Context, dir string) (models.ProjectInfo, error) {
	args := m.Called(ctx, dir)
	return args.Get(0).(models.ProjectInfo), args.Error(1)
}

func setupCommand(t *testing.T) (*MockGitService, *MockProjectDetector, *i18n.Translations, *config.Config) {
	trans, err := i18n.NewTranslations("en", "../../../i18n/locales")
	require.NoError(t, err)

	cfg := &config.Config{Language: "en", MaxLength: 72, SuggestionsCount: 3}
	return new(MockGitService), new(MockProjectDetector), trans, cfg
}

func TestReleaseCreate(t *testing.T) {
	t.Run("rejects an invalid bump kind", func(t *testing.T) {
		mockGit, mockDetector, trans, cfg := setupCommand(t)
		factory := NewReleaseCommandFactory(mockGit, mockDetector)
		cmd := factory.CreateCommand(trans, cfg)

		err := cmd.Run(context.Background(), []string{"release", "create", "--bump", "gigantic"})

		assert.Error(t, err)
	})

	t.Run("refuses providers other than github", func(t *testing.T) {
		mockGit, mockDetector, trans, cfg := setupCommand(t)
		mockDetector.On("Detect", mock.Anything, mock.Anything).Return(models.ProjectInfo{}, assert.AnError)
		mockGit.On("GetRepoInfo", mock.Anything).Return("team", "tool", "gitlab", nil)

		factory := NewReleaseCommandFactory(mockGit, mockDetector)
		cmd := factory.CreateCommand(trans, cfg)

		err := cmd.Run(context.Background(), []string{"release", "create"})

		require.Error(t, err)
		var providerErr *domainErrors.VCSProviderNotConfiguredError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "gitlab", providerErr.Provider)
		mockGit.AssertExpectations(t)
	})
}
