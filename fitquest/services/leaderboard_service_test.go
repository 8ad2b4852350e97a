package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	repomock "github.com/fitquest/fitquest-api/fitquest/database/repositories/mock"
	"github.com/fitquest/fitquest-api/fitquest/services"
	"github.com/fitquest/fitquest-api/fitquest/services/mock"
)

var boardRows = []*models.LeaderboardRow{
	{UserID: uuid.New(), Username: "carol", CharacterName: "Storm Runner", Level: 7, XP: 6100},
	{UserID: uuid.New(), Username: "bob", CharacterName: "Iron Lotus", Level: 5, XP: 4300},
	{UserID: uuid.New(), Username: "alice", CharacterName: "alice's Character", Level: 5, XP: 4020},
}

func TestLeaderboardService_Top(t *testing.T) {
	tests := []struct {
		name       string
		period     string
		wantWindow time.Duration
	}{
		{name: "default is all time", period: ""},
		{name: "all", period: "all"},
		{name: "weekly", period: "weekly", wantWindow: 7 * 24 * time.Hour},
		{name: "monthly", period: "MONTHLY", wantWindow: 30 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomock.NewMockLeaderboardRepository(gomock.NewController(t))
			repo.EXPECT().
				Top(gomock.Any(), gomock.Any(), 100).
				DoAndReturn(func(_ context.Context, since *time.Time, _ int) ([]*models.LeaderboardRow, error) {
					if tt.wantWindow == 0 {
						assert.Nil(t, since)
					} else {
						require.NotNil(t, since)
						assert.WithinDuration(t, time.Now().Add(-tt.wantWindow), *since, time.Minute)
					}
					return boardRows, nil
				})

			got, err := services.NewLeaderboardService(repo, nil).Top(context.Background(), tt.period, "")
			require.NoError(t, err)
			require.Len(t, got, 3)
			for i, want := range []string{"carol", "bob", "alice"} {
				assert.Equal(t, i+1, got[i].Rank)
				assert.Equal(t, want, got[i].Username)
			}
		})
	}
}

func TestLeaderboardService_Top_InvalidPeriod(t *testing.T) {
	repo := repomock.NewMockLeaderboardRepository(gomock.NewController(t))

	_, err := services.NewLeaderboardService(repo, nil).Top(context.Background(), "yearly", "")
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "period", verr.Field)
}

func TestLeaderboardService_Top_SearchKeepsRanks(t *testing.T) {
	repo := repomock.NewMockLeaderboardRepository(gomock.NewController(t))
	repo.EXPECT().Top(gomock.Any(), gomock.Any(), 100).Return(boardRows, nil)

	got, err := services.NewLeaderboardService(repo, nil).Top(context.Background(), "all", "lotus")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].Username)
	assert.Equal(t, 2, got[0].Rank)
}

func TestLeaderboardService_Top_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockLeaderboardRepository(ctrl)
	cache := mock.NewMockLeaderboardCache(ctrl)
	cached := []services.LeaderboardEntry{{Rank: 1, Username: "dave", Level: 9}}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "weekly").Return(nil, false, nil),
		repo.EXPECT().Top(gomock.Any(), gomock.Any(), 100).Return(boardRows, nil),
		cache.EXPECT().
			Set(gomock.Any(), "weekly", gomock.Len(3)).
			Return(nil),
		cache.EXPECT().Get(gomock.Any(), "weekly").Return(cached, true, nil),
	)

	s := services.NewLeaderboardService(repo, cache)

	first, err := s.Top(context.Background(), "weekly", "")
	require.NoError(t, err)
	assert.Len(t, first, 3)

	second, err := s.Top(context.Background(), "weekly", "")
	require.NoError(t, err)
	assert.Equal(t, cached, second)
}

func TestLeaderboardService_Top_CacheFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockLeaderboardRepository(ctrl)
	cache := mock.NewMockLeaderboardCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "all").Return(nil, false, errors.New("redis down"))
	repo.EXPECT().Top(gomock.Any(), gomock.Any(), 100).Return(boardRows, nil)
	cache.EXPECT().Set(gomock.Any(), "all", gomock.Any()).Return(errors.New("redis down"))

	got, err := services.NewLeaderboardService(repo, cache).Top(context.Background(), "all", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRedisLeaderboardCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	cache := services.NewRedisLeaderboardCache(client, time.Second)

	_, ok, err := cache.Get(context.Background(), "all")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to read leaderboard cache")

	err = cache.Set(context.Background(), "all", []services.LeaderboardEntry{{Rank: 1}})
	assert.ErrorContains(t, err, "failed to write leaderboard cache")
}
