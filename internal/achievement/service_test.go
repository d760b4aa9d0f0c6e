package achievement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/UserAchievements_Go/internal/domain"
	"github.com/osse101/UserAchievements_Go/internal/testing/leaktest"
)

var (
	john  = domain.User{ID: 23, Name: "John", Email: "john@test.com"}
	jane  = domain.User{ID: 24, Name: "Jane", Email: "jane@test.com"}
	ghost = domain.User{ID: 25, Name: "Ghost"}
)

// standardFixture wires three users: a Gold player, a Bronze player and one
// listed by upstream but missing on direct lookup.
func standardFixture() *MockClient {
	m := new(MockClient)
	m.On("ListUsers", mock.Anything).Return([]domain.User{john, jane, ghost})
	expectUser(m, fixtureUser{user: john, games: uniformGames(26, 80)})
	expectUser(m, fixtureUser{user: jane, games: uniformGames(11, 10)})
	m.On("GetUser", mock.Anything, ghost.ID).Return(domain.User{})
	return m
}

func TestService_GetLevel(t *testing.T) {
	tests := []struct {
		name  string
		games []fixtureGame
		want  domain.Level
	}{
		{"no owned games", nil, domain.LevelNone},
		{"bronze", uniformGames(11, 10), domain.LevelBronze},
		{"silver", uniformGames(11, 75), domain.LevelSilver},
		{"gold", uniformGames(26, 80), domain.LevelGold},
		{"platinum", uniformGames(50, 100), domain.LevelPlatinum},
		{"ten games is not enough", uniformGames(10, 0), domain.LevelNone},
		{"ten complete plus one untouched", append(uniformGames(10, 100), fixtureGame{total: 40, completed: 0}), domain.LevelSilver},
		{"zero-achievement games count as 0%", append(uniformGames(10, 100), fixtureGame{total: 0, completed: 0}), domain.LevelSilver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockClient)
			expectUser(client, fixtureUser{user: john, games: tt.games})
			svc := NewService(client, NopCache{}, 4)

			result := svc.GetLevel(context.Background(), john.ID)

			assert.Equal(t, domain.LevelResult{UserID: john.ID, Name: john.Name, Level: tt.want}, result)
			client.AssertExpectations(t)
		})
	}
}

func TestService_GetLevel_UserNotFound(t *testing.T) {
	client := new(MockClient)
	client.On("GetUser", mock.Anything, 999).Return(domain.User{})
	svc := NewService(client, NewLRUCache(DefaultCacheConfig()), 4)

	result := svc.GetLevel(context.Background(), 999)

	assert.Equal(t, domain.NotFoundResult(), result)
	assert.False(t, result.Found())
	client.AssertNotCalled(t, "GetLibrary", mock.Anything, 999)

	// not-found results are not cached, so upstream is asked again
	svc.GetLevel(context.Background(), 999)
	client.AssertNumberOfCalls(t, "GetUser", 2)
}

func TestService_GetLevel_FailedCompletionDegrades(t *testing.T) {
	client := new(MockClient)
	games := make([]domain.Game, 11)
	for i := range games {
		games[i] = domain.Game{ID: i + 1, TotalAvailableAchievements: 10}
	}
	client.On("GetUser", mock.Anything, john.ID).Return(john)
	client.On("GetLibrary", mock.Anything, john.ID).Return(domain.OwnedGamesLibrary{User: john, OwnedGames: games})
	for _, g := range games {
		record := domain.GameCompletionRecord{User: john, Game: g, TotalCompletedAchievements: 10}
		if g.ID == 6 {
			// a failed lookup comes back as the zero record
			record = domain.GameCompletionRecord{}
		}
		client.On("GetCompletion", mock.Anything, john.ID, g.ID).Return(record)
	}
	svc := NewService(client, nil, 3)

	pcts := svc.GetPercentages(context.Background(), john.ID)
	require.Len(t, pcts, 11)
	assert.Equal(t, 0, pcts[5].AchievementPercentage)
	assert.Equal(t, 100, pcts[10].AchievementPercentage)

	// ten at 100% and one at 0% average 90 across 11 games
	assert.Equal(t, domain.LevelSilver, svc.GetLevel(context.Background(), john.ID).Level)
}

func TestService_GetPercentages_PreservesLibraryOrder(t *testing.T) {
	client := new(MockClient)
	var fixture []fixtureGame
	for i := 0; i < 40; i++ {
		fixture = append(fixture, fixtureGame{total: 100, completed: i})
	}
	expectUser(client, fixtureUser{user: john, games: fixture})
	svc := NewService(client, NopCache{}, 8)

	pcts := svc.GetPercentages(context.Background(), john.ID)

	require.Len(t, pcts, 40)
	for i, p := range pcts {
		assert.Equal(t, 100+i, p.GameID)
		assert.Equal(t, i, p.AchievementPercentage)
		assert.Equal(t, john.ID, p.UserID)
	}
}

func TestService_GetPercentages_UsesCompletionRecordTotal(t *testing.T) {
	client := new(MockClient)
	listed := domain.Game{ID: 7, Title: "Relisted", TotalAvailableAchievements: 10}
	current := domain.Game{ID: 7, Title: "Relisted", TotalAvailableAchievements: 20}
	client.On("GetLibrary", mock.Anything, john.ID).Return(domain.OwnedGamesLibrary{User: john, OwnedGames: []domain.Game{listed}})
	client.On("GetCompletion", mock.Anything, john.ID, 7).Return(domain.GameCompletionRecord{
		User:                       john,
		Game:                       current,
		TotalCompletedAchievements: 10,
	})

	svc := NewService(client, NopCache{}, 4)
	got := svc.GetPercentages(context.Background(), john.ID)

	require.Len(t, got, 1)
	assert.Equal(t, 50, got[0].AchievementPercentage)
}

func TestService_GetPercentages_EmptyLibrary(t *testing.T) {
	client := new(MockClient)
	client.On("GetLibrary", mock.Anything, 7).Return(domain.OwnedGamesLibrary{OwnedGames: []domain.Game{}})
	svc := NewService(client, NopCache{}, 2)

	pcts := svc.GetPercentages(context.Background(), 7)

	assert.NotNil(t, pcts)
	assert.Empty(t, pcts)
}

func TestService_ListLevels(t *testing.T) {
	client := standardFixture()
	svc := NewService(client, NopCache{}, 2)

	results := svc.ListLevels(context.Background())

	assert.Equal(t, []domain.LevelResult{
		{UserID: john.ID, Name: john.Name, Level: domain.LevelGold},
		{UserID: jane.ID, Name: jane.Name, Level: domain.LevelBronze},
	}, results, "Missing users are dropped and upstream order is kept")
}

func TestService_ListLevels_Empty(t *testing.T) {
	client := new(MockClient)
	client.On("ListUsers", mock.Anything).Return([]domain.User{})
	svc := NewService(client, NewLRUCache(DefaultCacheConfig()), 2)

	results := svc.ListLevels(context.Background())

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestService_BatchMatchesSingle(t *testing.T) {
	client := standardFixture()
	svc := NewService(client, NopCache{}, 4)
	ctx := context.Background()

	for _, r := range svc.ListLevels(ctx) {
		assert.Equal(t, svc.GetLevel(ctx, r.UserID), r)
	}
}

func TestService_Idempotent(t *testing.T) {
	client := standardFixture()
	svc := NewService(client, NopCache{}, 4)
	ctx := context.Background()

	first := svc.ListLevels(ctx)
	second := svc.ListLevels(ctx)

	assert.Equal(t, first, second)
}

func TestService_CacheDoesNotChangeResults(t *testing.T) {
	ctx := context.Background()
	uncached := NewService(standardFixture(), NopCache{}, 4)
	cached := NewService(standardFixture(), NewLRUCache(DefaultCacheConfig()), 4)

	assert.Equal(t, uncached.ListLevels(ctx), cached.ListLevels(ctx))
	assert.Equal(t, uncached.ListLevels(ctx), cached.ListLevels(ctx), "Cached second read should match")
	for _, u := range []domain.User{john, jane} {
		assert.Equal(t, uncached.GetLevel(ctx, u.ID), cached.GetLevel(ctx, u.ID))
		assert.Equal(t, uncached.GetPercentages(ctx, u.ID), cached.GetPercentages(ctx, u.ID))
	}
	assert.Equal(t, uncached.GetLevel(ctx, ghost.ID), cached.GetLevel(ctx, ghost.ID))
}

func TestService_ReadThroughCache(t *testing.T) {
	client := standardFixture()
	cache := NewLRUCache(DefaultCacheConfig())
	svc := NewService(client, cache, 4)
	ctx := context.Background()

	svc.ListLevels(ctx)
	svc.ListLevels(ctx)
	svc.GetLevel(ctx, john.ID)

	client.AssertNumberOfCalls(t, "ListUsers", 1)
	client.AssertNumberOfCalls(t, "GetLibrary", 2)
	// ghost is never cached, john and jane hit the user-level family afterwards
	client.AssertNumberOfCalls(t, "GetUser", 3)

	stats := svc.CacheStats()
	assert.True(t, stats.Enabled)
	assert.Positive(t, stats.Hits)
	assert.Positive(t, stats.Misses)
}

func TestService_ListLevels_NoGoroutineLeak(t *testing.T) {
	client := standardFixture()
	svc := NewService(client, NopCache{}, 8)

	leaktest.CheckNoGoroutineLeak(t, func() {
		for i := 0; i < 5; i++ {
			svc.ListLevels(context.Background())
		}
	})
}

func TestService_GetLevel_CancelledRequestIsNotCached(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := new(MockClient)
	client.On("GetLibrary", mock.Anything, john.ID).
		Run(func(mock.Arguments) { cancel() }).
		Return(domain.OwnedGamesLibrary{User: john, OwnedGames: []domain.Game{}}).
		Once()
	expectUser(client, fixtureUser{user: john, games: uniformGames(11, 100)})

	svc := NewService(client, NewLRUCache(DefaultCacheConfig()), 4)

	degraded := svc.GetLevel(ctx, john.ID)
	assert.Equal(t, domain.LevelNone, degraded.Level)

	later := svc.GetLevel(context.Background(), john.ID)
	assert.Equal(t, domain.LevelSilver, later.Level)
	client.AssertNumberOfCalls(t, "GetLibrary", 2)

	_, found := svc.(*service).cache.GetAchievements(john.ID)
	assert.True(t, found, "uncancelled result should be cached")
}

func TestService_ListLevels_CancelledRequestIsNotCached(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := new(MockClient)
	client.On("ListUsers", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return([]domain.User{john}).
		Once()
	client.On("ListUsers", mock.Anything).Return([]domain.User{john, jane})
	expectUser(client, fixtureUser{user: john, games: uniformGames(26, 80)})
	expectUser(client, fixtureUser{user: jane, games: uniformGames(11, 10)})

	svc := NewService(client, NewLRUCache(DefaultCacheConfig()), 4)

	svc.ListLevels(ctx)
	got := svc.ListLevels(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, john.ID, got[0].UserID)
	assert.Equal(t, jane.ID, got[1].UserID)
	client.AssertNumberOfCalls(t, "ListUsers", 2)
	// john is recomputed because nothing from the cancelled pass was cached
	client.AssertNumberOfCalls(t, "GetLibrary", 3)
}
