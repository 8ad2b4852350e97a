package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/economy"
)

// fixedRoll always draws the same offset into the enemy power range.
type fixedRoll int

func (r fixedRoll) IntN(int) int {
	return int(r)
}

func TestBattleService_Fight(t *testing.T) {
	tests := []struct {
		name        string
		strength    int
		roll        fixedRoll
		req         BattleRequest
		wantVictory bool
		wantXP      int64
		wantCoins   int64
		wantEnemy   string
		wantAction  string
	}{
		{
			name:        "victory",
			strength:    30,
			roll:        0,
			req:         BattleRequest{EnemyType: "Dragon", PlayerAction: "defend"},
			wantVictory: true,
			wantXP:      50,
			wantCoins:   125,
			wantEnemy:   "Dragon",
			wantAction:  "defend",
		},
		{
			name:        "tie goes to the enemy",
			strength:    10,
			roll:        0,
			wantVictory: false,
			wantXP:      10,
			wantCoins:   105,
			wantEnemy:   "Goblin",
			wantAction:  "attack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newRepoMocks(t)
			userID := uuid.New()
			character := newCharacter(userID)
			character.Strength = tt.strength

			repos.expectLocked(userID, character)
			repos.battles.EXPECT().
				Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil)
			if tt.wantVictory {
				repos.quests.EXPECT().
					AdvanceProgress(gomock.Any(), gomock.Any(), userID, models.MetricBattlesWon, 1).
					Return(int64(1), nil)
			}
			repos.expectSaved()

			s := &battleService{
				tx:       &inlineTx{},
				ledger:   repos.ledger(),
				battles:  repos.battles,
				quests:   repos.quests,
				resolver: economy.NewBattleResolver(tt.roll),
				now:      clock,
			}

			got, err := s.Fight(context.Background(), userID, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVictory, got.Victory)
			assert.Equal(t, tt.strength+10, got.PlayerPower)
			assert.Equal(t, 20, got.EnemyPower)
			assert.Equal(t, tt.wantEnemy, got.EnemyType)
			assert.Equal(t, tt.wantAction, got.PlayerAction)
			assert.Equal(t, tt.wantXP, got.Character.XP)
			assert.Equal(t, tt.wantCoins, got.Character.Coins)
		})
	}
}

func TestBattleService_Fight_LongEnemyName(t *testing.T) {
	s := &battleService{tx: &inlineTx{}, resolver: economy.NewBattleResolver(fixedRoll(0)), now: clock}

	_, err := s.Fight(context.Background(), uuid.New(), BattleRequest{EnemyType: strings.Repeat("x", 65)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "enemyType", verr.Field)
}
