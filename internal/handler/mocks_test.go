package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/UserAchievements_Go/internal/achievement"
	"github.com/osse101/UserAchievements_Go/internal/domain"
)

// MockLevelService implements achievement.Service for testing
type MockLevelService struct {
	mock.Mock
}

func (m *MockLevelService) GetLevel(ctx context.Context, userID int) domain.LevelResult {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.LevelResult)
}

func (m *MockLevelService) ListLevels(ctx context.Context) []domain.LevelResult {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LevelResult)
}

func (m *MockLevelService) GetPercentages(ctx context.Context, userID int) []domain.PerGamePercentage {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PerGamePercentage)
}

func (m *MockLevelService) CacheStats() achievement.CacheStats {
	args := m.Called()
	return args.Get(0).(achievement.CacheStats)
}

// MockPinger mocks the upstream readiness probe
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
