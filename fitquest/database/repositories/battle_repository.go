package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type BattleRepository interface {
	Create(ctx context.Context, db bun.IDB, battle *models.Battle) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Battle, error)
}

type battleRepository struct {
	BaseRepository
}

func NewBattleRepository(db *bun.DB) BattleRepository {
	return &battleRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *battleRepository) Create(ctx context.Context, db bun.IDB, battle *models.Battle) error {
	if battle.ID == uuid.Nil {
		battle.ID = uuid.New()
	}
	battle.CreatedAt = time.Now().UTC()

	_, err := db.NewInsert().Model(battle).Exec(ctx)
	return r.HandleError("create", "battle", battle.UserID, err)
}

func (r *battleRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Battle, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	battles := make([]*models.Battle, 0, limit)
	err := r.db.NewSelect().
		Model(&battles).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "battle", userID, err)
	}
	return battles, nil
}
