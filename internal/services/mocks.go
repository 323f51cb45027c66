package services

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockClassifier struct {
		mock.Mock
	}

	MockVCSClient struct {
		mock.Mock
	}
)

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

func (m *MockClassifier) DetectCommitType(ctx context.Context) models.Detection {
	args := m.Called(ctx)
	return args.Get(0).(models.Detection)
}

func (m *MockClassifier) GenerateDescription(commitType models.CommitType, files []string) string {
	args := m.Called(commitType, files)
	return args.String(0)
}

func (m *MockVCSClient) CreateRelease(ctx context.Context, release models.Release) (string, error) {
	args := m.Called(ctx, release)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) GetLatestRelease(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
