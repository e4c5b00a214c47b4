package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/jeeprep/internal/models"
)

// MockSubmissionRepository is a mock implementation of repository.SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Append(ctx context.Context, s models.Submission) (models.Submission, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListAll(ctx context.Context) ([]models.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListByUser(ctx context.Context, userID string) ([]models.Submission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Submission, error) {
	args := m.Called(ctx, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}
