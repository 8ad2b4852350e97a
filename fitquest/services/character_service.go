package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/config"
	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
)

// CharacterUpdate is a partial edit; nil fields are left unchanged.
type CharacterUpdate struct {
	Name      *string
	Strength  *int
	Endurance *int
	Agility   *int
}

type UpgradeResult struct {
	Character *models.Character `json:"character"`
	Cost      int64             `json:"cost"`
}

type CharacterService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Character, error)
	Update(ctx context.Context, userID uuid.UUID, update CharacterUpdate) (*models.Character, error)
	// Upgrade spends coins on stat points at a flat price per point.
	Upgrade(ctx context.Context, userID uuid.UUID, delta economy.StatDelta) (*UpgradeResult, error)
}

type characterService struct {
	tx         Transactor
	characters repositories.CharacterRepository
}

func NewCharacterService(tx Transactor, characters repositories.CharacterRepository) CharacterService {
	return &characterService{tx: tx, characters: characters}
}

func (s *characterService) Get(ctx context.Context, userID uuid.UUID) (*models.Character, error) {
	return s.characters.GetByUserID(ctx, userID)
}

func (u CharacterUpdate) validate() error {
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return invalid("name", "must not be empty")
		}
		if utf8.RuneCountInString(name) > config.MaxNameLength {
			return invalid("name", "must be at most 64 characters")
		}
	}
	for field, v := range map[string]*int{"strength": u.Strength, "endurance": u.Endurance, "agility": u.Agility} {
		if v != nil && *v < 0 {
			return invalid(field, "must be non-negative")
		}
	}
	return nil
}

func (s *characterService) Update(ctx context.Context, userID uuid.UUID, update CharacterUpdate) (*models.Character, error) {
	if err := update.validate(); err != nil {
		return nil, err
	}

	var character *models.Character
	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		character, err = s.characters.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		if update.Name != nil {
			character.Name = strings.TrimSpace(*update.Name)
		}
		if update.Strength != nil {
			character.Strength = *update.Strength
		}
		if update.Endurance != nil {
			character.Endurance = *update.Endurance
		}
		if update.Agility != nil {
			character.Agility = *update.Agility
		}
		return s.characters.Update(ctx, tx, character)
	})
	if err != nil {
		return nil, err
	}
	return character, nil
}

func (s *characterService) Upgrade(ctx context.Context, userID uuid.UUID, delta economy.StatDelta) (*UpgradeResult, error) {
	if err := delta.Validate(); err != nil {
		if errors.Is(err, economy.ErrNegativeDelta) || errors.Is(err, economy.ErrDeltaTooLarge) {
			return nil, invalid("upgrade", err.Error())
		}
		return nil, err
	}

	result := &UpgradeResult{}
	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		character, err := s.characters.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		cost, err := economy.CheckAffordable(character.Coins, delta)
		if err != nil {
			return err
		}

		character.Strength += delta.Strength
		character.Endurance += delta.Endurance
		character.Agility += delta.Agility
		character.Coins -= cost
		if err := s.characters.Update(ctx, tx, character); err != nil {
			return err
		}

		result.Character = character
		result.Cost = cost
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Character upgraded",
		slog.String("user_id", userID.String()),
		slog.Int("points", delta.Points()),
		slog.Int64("cost", result.Cost),
		slog.Int64("coins_left", result.Character.Coins))
	return result, nil
}
