package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/jeeprep/internal/models"
)

// MockLeaderboardCache is a mock implementation of cache.LeaderboardCache
type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Version(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaderboardCache) Get(ctx context.Context, version int64) ([]models.LeaderboardEntry, bool, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Bool(1), args.Error(2)
}

func (m *MockLeaderboardCache) Set(ctx context.Context, version int64, entries []models.LeaderboardEntry) error {
	args := m.Called(ctx, version, entries)
	return args.Error(0)
}

func (m *MockLeaderboardCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
