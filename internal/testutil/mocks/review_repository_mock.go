package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/jeeprep/internal/models"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Append(ctx context.Context, rv models.Review) (models.Review, error) {
	args := m.Called(ctx, rv)
	return args.Get(0).(models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByProblem(ctx context.Context, problemID models.ProblemID) ([]models.Review, error) {
	args := m.Called(ctx, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}
