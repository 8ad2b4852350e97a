package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/config"
	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
)

type DailyRewardResult struct {
	XPReward   int64             `json:"xpReward"`
	CoinReward int64             `json:"coinReward"`
	Character  *models.Character `json:"character"`
	Rewards    []economy.Reward  `json:"rewards"`
}

type DailyRewardStatus struct {
	Claimed     bool      `json:"claimed"`
	NextClaimAt time.Time `json:"nextClaimAt"`
}

type RewardService interface {
	// ClaimDaily grants the daily reward once per UTC calendar day.
	ClaimDaily(ctx context.Context, userID uuid.UUID) (*DailyRewardResult, error)
	DailyStatus(ctx context.Context, userID uuid.UUID) (*DailyRewardStatus, error)
	Achievements(ctx context.Context, userID uuid.UUID) ([]*models.Achievement, error)
}

type rewardService struct {
	tx           Transactor
	ledger       rewardLedger
	achievements repositories.AchievementRepository
	now          func() time.Time
}

func NewRewardService(tx Transactor, characters repositories.CharacterRepository, achievements repositories.AchievementRepository) RewardService {
	return &rewardService{
		tx:           tx,
		ledger:       rewardLedger{characters: characters, achievements: achievements},
		achievements: achievements,
		now:          time.Now,
	}
}

func (s *rewardService) ClaimDaily(ctx context.Context, userID uuid.UUID) (*DailyRewardResult, error) {
	now := s.now().UTC()
	today := utcDay(now)

	result := &DailyRewardResult{
		XPReward:   economy.DailyRewardXP,
		CoinReward: economy.DailyRewardCoins,
		Rewards:    economy.DailyRewards(),
	}
	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// The marker insert goes first: the partial unique index lets exactly one
		// concurrent claim through, and the loser sees zero rows affected.
		marker := &models.Achievement{
			UserID:      userID,
			Type:        models.AchievementDailyReward,
			Title:       "Daily Login",
			Description: "Claimed daily login reward",
			UnlockedAt:  now,
			ClaimDay:    &today,
		}
		inserted, err := s.achievements.CreateDailyMarker(ctx, tx, marker)
		if err != nil {
			return err
		}
		if !inserted {
			return economy.ErrAlreadyClaimed
		}

		character, err := s.ledger.characters.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}
		extra, err := s.ledger.grant(ctx, tx, character, economy.DailyRewardXP, economy.DailyRewardCoins, now)
		if err != nil {
			return err
		}

		result.Character = character
		result.Rewards = append(result.Rewards, extra...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Daily reward claimed",
		slog.String("user_id", userID.String()),
		slog.String("day", today.Format(time.DateOnly)),
		slog.Int64("coins", result.Character.Coins))
	return result, nil
}

func (s *rewardService) DailyStatus(ctx context.Context, userID uuid.UUID) (*DailyRewardStatus, error) {
	today := utcDay(s.now())
	claimed, err := s.achievements.HasDailyMarker(ctx, userID, models.AchievementDailyReward, today)
	if err != nil {
		return nil, err
	}

	status := &DailyRewardStatus{Claimed: claimed, NextClaimAt: today}
	if claimed {
		status.NextClaimAt = today.AddDate(0, 0, 1)
	}
	return status, nil
}

func (s *rewardService) Achievements(ctx context.Context, userID uuid.UUID) ([]*models.Achievement, error) {
	return s.achievements.ListRecent(ctx, userID, config.RecentAchievementLimit)
}
