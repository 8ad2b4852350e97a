package services

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/config"
	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
)

// BattleRequest labels an encounter. Neither field changes the odds.
type BattleRequest struct {
	EnemyType    string
	PlayerAction string
}

type BattleResult struct {
	*models.Battle
	Character *models.Character `json:"character"`
	Rewards   []economy.Reward  `json:"rewards"`
}

type BattleService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.Battle, error)
	Fight(ctx context.Context, userID uuid.UUID, req BattleRequest) (*BattleResult, error)
}

type battleService struct {
	tx       Transactor
	ledger   rewardLedger
	battles  repositories.BattleRepository
	quests   repositories.QuestRepository
	resolver *economy.BattleResolver
	now      func() time.Time
}

func NewBattleService(tx Transactor, characters repositories.CharacterRepository, battles repositories.BattleRepository, quests repositories.QuestRepository, achievements repositories.AchievementRepository, resolver *economy.BattleResolver) BattleService {
	return &battleService{
		tx:       tx,
		ledger:   rewardLedger{characters: characters, achievements: achievements},
		battles:  battles,
		quests:   quests,
		resolver: resolver,
		now:      time.Now,
	}
}

func (s *battleService) List(ctx context.Context, userID uuid.UUID) ([]*models.Battle, error) {
	return s.battles.ListRecent(ctx, userID, config.RecentBattlesLimit)
}

func normalizeLabel(field, value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	if utf8.RuneCountInString(value) > config.MaxLabelLength {
		return "", invalid(field, "must be at most 64 characters")
	}
	return value, nil
}

func (s *battleService) Fight(ctx context.Context, userID uuid.UUID, req BattleRequest) (*BattleResult, error) {
	enemy, err := normalizeLabel("enemyType", req.EnemyType, config.DefaultEnemyType)
	if err != nil {
		return nil, err
	}
	action, err := normalizeLabel("playerAction", req.PlayerAction, config.DefaultPlayerMove)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	result := &BattleResult{}
	err = s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		character, err := s.ledger.characters.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		outcome := s.resolver.Resolve(character.Strength, character.Agility)
		battle := &models.Battle{
			UserID:       userID,
			EnemyType:    enemy,
			PlayerAction: action,
			Victory:      outcome.Victory,
			XPGained:     outcome.XP,
			CoinsGained:  outcome.Coins,
			PlayerPower:  outcome.PlayerPower,
			EnemyPower:   outcome.EnemyPower,
		}
		if err := s.battles.Create(ctx, tx, battle); err != nil {
			return err
		}

		if outcome.Victory {
			if _, err := s.quests.AdvanceProgress(ctx, tx, userID, models.MetricBattlesWon, 1); err != nil {
				return err
			}
		}

		extra, err := s.ledger.grant(ctx, tx, character, outcome.XP, outcome.Coins, now)
		if err != nil {
			return err
		}

		result.Battle = battle
		result.Character = character
		result.Rewards = append(economy.BattleRewards(outcome), extra...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Battle resolved",
		slog.String("user_id", userID.String()),
		slog.String("enemy", enemy),
		slog.Int("player_power", result.PlayerPower),
		slog.Int("enemy_power", result.EnemyPower),
		slog.Bool("victory", result.Victory))
	return result, nil
}
