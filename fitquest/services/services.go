// Package services holds the game rules that span more than one repository.
// Every mutation of a character runs inside a transaction that holds the
// character row lock.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
	"github.com/fitquest/fitquest-api/fitquest/economy/utils"
	"github.com/fitquest/fitquest-api/fitquest/progression"
)

// Transactor is satisfied by *utils.EconomicTransactionManager.
type Transactor interface {
	WithTransaction(ctx context.Context, opts *utils.TransactionOptions, fn func(context.Context, bun.Tx) error) error
}

// ValidationError reports a malformed or out-of-range request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// utcDay truncates t to the start of its UTC calendar day.
func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// rewardLedger applies xp and coin grants to a character that the caller has locked.
type rewardLedger struct {
	characters   repositories.CharacterRepository
	achievements repositories.AchievementRepository
}

// grant adds xp and coins, recomputes the level, saves the character and records
// a level_up achievement when the level rose. It returns any extra rewards to show.
func (l rewardLedger) grant(ctx context.Context, db bun.IDB, character *models.Character, xp, coins int64, now time.Time) ([]economy.Reward, error) {
	result, err := progression.Apply(character.XP, character.Level, xp)
	if err != nil {
		return nil, fmt.Errorf("failed to grant xp: %w", err)
	}
	character.XP = result.XP
	character.Level = result.Level
	character.Coins += coins
	if character.Coins < 0 {
		character.Coins = 0
	}

	if err := l.characters.Update(ctx, db, character); err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}

	if result.LevelsGained == 0 {
		return nil, nil
	}

	achievement := &models.Achievement{
		UserID:      character.UserID,
		Type:        models.AchievementLevelUp,
		Title:       fmt.Sprintf("Level %d", character.Level),
		Description: fmt.Sprintf("%s reached level %d", character.Name, character.Level),
		UnlockedAt:  now,
	}
	if err := l.achievements.Create(ctx, db, achievement); err != nil {
		return nil, fmt.Errorf("failed to record level up: %w", err)
	}
	return []economy.Reward{economy.LevelUpReward(achievement.Title, achievement.Description)}, nil
}
