package achievement

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/UserAchievements_Go/internal/domain"
)

// MockClient implements upstream.Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) ListUsers(ctx context.Context) []domain.User {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User)
}

func (m *MockClient) GetUser(ctx context.Context, id int) domain.User {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User)
}

func (m *MockClient) GetLibrary(ctx context.Context, userID int) domain.OwnedGamesLibrary {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.OwnedGamesLibrary)
}

func (m *MockClient) GetCompletion(ctx context.Context, userID, gameID int) domain.GameCompletionRecord {
	args := m.Called(ctx, userID, gameID)
	return args.Get(0).(domain.GameCompletionRecord)
}

func (m *MockClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fixtureUser describes one upstream user and their progress per owned game
type fixtureUser struct {
	user  domain.User
	games []fixtureGame
}

type fixtureGame struct {
	total     int
	completed int
}

// expectUser registers mock expectations for a user, their library and every completion record
func expectUser(m *MockClient, f fixtureUser) {
	m.On("GetUser", mock.Anything, f.user.ID).Return(f.user)

	games := make([]domain.Game, len(f.games))
	for i, g := range f.games {
		games[i] = domain.Game{ID: 100 + i, Title: "Game", TotalAvailableAchievements: g.total}
		m.On("GetCompletion", mock.Anything, f.user.ID, games[i].ID).Return(domain.GameCompletionRecord{
			User:                       f.user,
			Game:                       games[i],
			TotalCompletedAchievements: g.completed,
		})
	}
	m.On("GetLibrary", mock.Anything, f.user.ID).Return(domain.OwnedGamesLibrary{User: f.user, OwnedGames: games})
}

// uniformGames returns n games that are each pct percent complete out of 100 achievements
func uniformGames(n, pct int) []fixtureGame {
	games := make([]fixtureGame, n)
	for i := range games {
		games[i] = fixtureGame{total: 100, completed: pct}
	}
	return games
}
