package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories/mock"
	"github.com/fitquest/fitquest-api/fitquest/economy/utils"
)

// inlineTx runs fn directly, standing in for a database transaction.
type inlineTx struct {
	calls int
}

func (t *inlineTx) WithTransaction(ctx context.Context, _ *utils.TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	t.calls++
	return fn(ctx, bun.Tx{})
}

var fixedNow = time.Date(2024, time.March, 9, 22, 30, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

type repoMocks struct {
	users        *mock.MockUserRepository
	characters   *mock.MockCharacterRepository
	fitness      *mock.MockFitnessRepository
	quests       *mock.MockQuestRepository
	battles      *mock.MockBattleRepository
	story        *mock.MockStoryRepository
	achievements *mock.MockAchievementRepository
	leaderboard  *mock.MockLeaderboardRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	ctrl := gomock.NewController(t)
	return &repoMocks{
		users:        mock.NewMockUserRepository(ctrl),
		characters:   mock.NewMockCharacterRepository(ctrl),
		fitness:      mock.NewMockFitnessRepository(ctrl),
		quests:       mock.NewMockQuestRepository(ctrl),
		battles:      mock.NewMockBattleRepository(ctrl),
		story:        mock.NewMockStoryRepository(ctrl),
		achievements: mock.NewMockAchievementRepository(ctrl),
		leaderboard:  mock.NewMockLeaderboardRepository(ctrl),
	}
}

func (m *repoMocks) ledger() rewardLedger {
	return rewardLedger{characters: m.characters, achievements: m.achievements}
}

// expectLocked hands out character on the next row-locking read for userID.
func (m *repoMocks) expectLocked(userID uuid.UUID, character *models.Character) {
	m.characters.EXPECT().
		GetByUserIDForUpdate(gomock.Any(), gomock.Any(), userID).
		Return(character, nil)
}

func (m *repoMocks) expectSaved() {
	m.characters.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
}

func newCharacter(userID uuid.UUID) *models.Character {
	return &models.Character{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Hero",
		Level:     1,
		Strength:  10,
		Endurance: 10,
		Agility:   10,
		Health:    100,
		MaxHealth: 100,
		Coins:     100,
	}
}

func intPtr(v int) *int {
	return &v
}
