package services

import (
	"context"
	"fmt"
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
	"github.com/fitquest/fitquest-api/fitquest/progression"
)

// FitnessInput is one activity submission. Nil numeric fields count as zero.
type FitnessInput struct {
	Calories        *int
	Steps           *int
	ExerciseMinutes *int
	ActivityType    string
}

func (in FitnessInput) activity() progression.Activity {
	return progression.Activity{
		Calories:        derefInt(in.Calories),
		Steps:           derefInt(in.Steps),
		ExerciseMinutes: derefInt(in.ExerciseMinutes),
	}
}

func (in FitnessInput) validate() error {
	bounds := []struct {
		field string
		value *int
		max   int
	}{
		{"calories", in.Calories, config.MaxCalories},
		{"steps", in.Steps, config.MaxSteps},
		{"exerciseMinutes", in.ExerciseMinutes, config.MaxExerciseMinutes},
	}
	for _, b := range bounds {
		if b.value == nil {
			continue
		}
		if *b.value < 0 {
			return invalid(b.field, "must be non-negative")
		}
		if *b.value > b.max {
			return invalid(b.field, fmt.Sprintf("must be at most %d", b.max))
		}
	}
	if utf8.RuneCountInString(in.ActivityType) > config.MaxLabelLength {
		return invalid("activityType", "must be at most 64 characters")
	}
	return nil
}

type FitnessLogResult struct {
	Entry     *models.FitnessEntry `json:"entry"`
	XPGained  int64                `json:"xpGained"`
	Character *models.Character    `json:"character"`
	Rewards   []economy.Reward     `json:"rewards"`
}

type FitnessService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.FitnessEntry, error)
	// Log merges the submission into today's entry and grants xp for it.
	Log(ctx context.Context, userID uuid.UUID, input FitnessInput) (*FitnessLogResult, error)
}

type fitnessService struct {
	tx      Transactor
	ledger  rewardLedger
	fitness repositories.FitnessRepository
	quests  repositories.QuestRepository
	now     func() time.Time
}

func NewFitnessService(tx Transactor, characters repositories.CharacterRepository, fitness repositories.FitnessRepository, quests repositories.QuestRepository, achievements repositories.AchievementRepository) FitnessService {
	return &fitnessService{
		tx:      tx,
		ledger:  rewardLedger{characters: characters, achievements: achievements},
		fitness: fitness,
		quests:  quests,
		now:     time.Now,
	}
}

func (s *fitnessService) List(ctx context.Context, userID uuid.UUID) ([]*models.FitnessEntry, error) {
	return s.fitness.ListRecent(ctx, userID, config.RecentFitnessLimit)
}

// mergeFitness overwrites stored values with provided non-zero ones.
func mergeFitness(entry *models.FitnessEntry, in FitnessInput) {
	if v := derefInt(in.Calories); v != 0 {
		entry.Calories = v
	}
	if v := derefInt(in.Steps); v != 0 {
		entry.Steps = v
	}
	if v := derefInt(in.ExerciseMinutes); v != 0 {
		entry.ExerciseMinutes = v
	}
	if t := strings.TrimSpace(in.ActivityType); t != "" {
		entry.ActivityType = t
	}
}

func (s *fitnessService) Log(ctx context.Context, userID uuid.UUID, input FitnessInput) (*FitnessLogResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := utcDay(now)
	activity := input.activity()
	xp := progression.XPForActivity(activity)

	result := &FitnessLogResult{XPGained: xp, Rewards: economy.WorkoutRewards(xp)}
	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// The character lock serializes same-user submissions; the unique
		// (user_id, entry_date) index backs it up.
		character, err := s.ledger.characters.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		entry, err := s.fitness.GetByDate(ctx, tx, userID, today)
		switch {
		case err == nil:
			mergeFitness(entry, input)
			err = s.fitness.Update(ctx, tx, entry)
		case repositories.IsNotFound(err):
			entry = &models.FitnessEntry{UserID: userID, EntryDate: today, ActivityType: config.DefaultActivityType}
			mergeFitness(entry, input)
			err = s.fitness.Create(ctx, tx, entry)
		}
		if err != nil {
			return err
		}

		progress := map[string]int{
			models.MetricSteps:           activity.Steps,
			models.MetricCalories:        activity.Calories,
			models.MetricExerciseMinutes: activity.ExerciseMinutes,
		}
		for metric, amount := range progress {
			if amount <= 0 {
				continue
			}
			if _, err := s.quests.AdvanceProgress(ctx, tx, userID, metric, amount); err != nil {
				return err
			}
		}

		extra, err := s.ledger.grant(ctx, tx, character, xp, 0, now)
		if err != nil {
			return err
		}

		result.Entry = entry
		result.Character = character
		result.Rewards = append(result.Rewards, extra...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Fitness logged",
		slog.String("user_id", userID.String()),
		slog.String("date", today.Format(time.DateOnly)),
		slog.Int64("xp_gained", xp),
		slog.Int("level", result.Character.Level))
	return result, nil
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
