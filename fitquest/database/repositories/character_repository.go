package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type CharacterRepository interface {
	Create(ctx context.Context, db bun.IDB, character *models.Character) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Character, error)
	// GetByUserIDForUpdate locks the character row until the surrounding transaction ends.
	GetByUserIDForUpdate(ctx context.Context, db bun.IDB, userID uuid.UUID) (*models.Character, error)
	Update(ctx context.Context, db bun.IDB, character *models.Character) error
}

type characterRepository struct {
	BaseRepository
}

func NewCharacterRepository(db *bun.DB) CharacterRepository {
	return &characterRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *characterRepository) Create(ctx context.Context, db bun.IDB, character *models.Character) error {
	now := time.Now().UTC()
	if character.ID == uuid.Nil {
		character.ID = uuid.New()
	}
	character.CreatedAt = now
	character.UpdatedAt = now

	_, err := db.NewInsert().Model(character).Exec(ctx)
	return r.HandleError("create", "character", character.UserID, err)
}

func (r *characterRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Character, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	character := new(models.Character)
	err := r.db.NewSelect().
		Model(character).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "character", userID, err)
	}
	return character, nil
}

func (r *characterRepository) GetByUserIDForUpdate(ctx context.Context, db bun.IDB, userID uuid.UUID) (*models.Character, error) {
	character := new(models.Character)
	err := db.NewSelect().
		Model(character).
		Where("user_id = ?", userID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("lock", "character", userID, err)
	}
	return character, nil
}

func (r *characterRepository) Update(ctx context.Context, db bun.IDB, character *models.Character) error {
	character.UpdatedAt = time.Now().UTC()

	res, err := db.NewUpdate().
		Model(character).
		Column("name", "level", "xp", "strength", "endurance", "agility",
			"health", "max_health", "coins", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return r.HandleError("update", "character", character.UserID, err)
	}
	if rowsAffected(res) == 0 {
		return &NotFoundError{Entity: "character", ID: character.UserID}
	}
	return nil
}
