package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
)

type QuestCompletion struct {
	Quest     *models.Quest     `json:"quest"`
	Character *models.Character `json:"character"`
	Rewards   []economy.Reward  `json:"rewards"`
}

type QuestService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error)
	// Complete marks the quest done and pays its reward. It fails for quests
	// that are already completed, so rewards are paid at most once.
	Complete(ctx context.Context, userID, questID uuid.UUID) (*QuestCompletion, error)
}

type questService struct {
	tx     Transactor
	ledger rewardLedger
	quests repositories.QuestRepository
	now    func() time.Time
}

func NewQuestService(tx Transactor, characters repositories.CharacterRepository, quests repositories.QuestRepository, achievements repositories.AchievementRepository) QuestService {
	return &questService{
		tx:     tx,
		ledger: rewardLedger{characters: characters, achievements: achievements},
		quests: quests,
		now:    time.Now,
	}
}

func (s *questService) List(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error) {
	return s.quests.ListByUser(ctx, userID)
}

func (s *questService) Complete(ctx context.Context, userID, questID uuid.UUID) (*QuestCompletion, error) {
	now := s.now().UTC()
	result := &QuestCompletion{}

	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		character, err := s.ledger.characters.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		quest, err := s.quests.GetForUpdate(ctx, tx, userID, questID)
		if err != nil {
			return err
		}
		if quest.Completed {
			return economy.ErrQuestAlreadyCompleted
		}

		quest.Completed = true
		quest.CompletedAt = &now
		if quest.Progress < quest.Target {
			quest.Progress = quest.Target
		}
		if err := s.quests.Update(ctx, tx, quest); err != nil {
			return err
		}

		extra, err := s.ledger.grant(ctx, tx, character, quest.XPReward, quest.CoinReward, now)
		if err != nil {
			return err
		}

		result.Quest = quest
		result.Character = character
		result.Rewards = append(economy.QuestRewards(quest.Title, quest.XPReward, quest.CoinReward), extra...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Quest completed",
		slog.String("user_id", userID.String()),
		slog.String("quest_id", questID.String()),
		slog.Int64("xp_reward", result.Quest.XPReward),
		slog.Int64("coin_reward", result.Quest.CoinReward))
	return result, nil
}
