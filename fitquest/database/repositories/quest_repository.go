package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type QuestRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error)
	// GetForUpdate returns the quest only when it belongs to userID, locking its row.
	GetForUpdate(ctx context.Context, db bun.IDB, userID, questID uuid.UUID) (*models.Quest, error)
	Update(ctx context.Context, db bun.IDB, quest *models.Quest) error
	CreateBatch(ctx context.Context, db bun.IDB, quests []*models.Quest) error
	// AdvanceProgress adds amount to every open quest of the user tracking metric, capped at target.
	AdvanceProgress(ctx context.Context, db bun.IDB, userID uuid.UUID, metric string, amount int) (int64, error)
}

type questRepository struct {
	BaseRepository
}

func NewQuestRepository(db *bun.DB) QuestRepository {
	return &questRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *questRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	quests := make([]*models.Quest, 0)
	err := r.db.NewSelect().
		Model(&quests).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "quest", userID, err)
	}
	return quests, nil
}

func (r *questRepository) GetForUpdate(ctx context.Context, db bun.IDB, userID, questID uuid.UUID) (*models.Quest, error) {
	quest := new(models.Quest)
	err := db.NewSelect().
		Model(quest).
		Where("id = ?", questID).
		Where("user_id = ?", userID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("lock", "quest", questID, err)
	}
	return quest, nil
}

func (r *questRepository) Update(ctx context.Context, db bun.IDB, quest *models.Quest) error {
	_, err := db.NewUpdate().
		Model(quest).
		Column("progress", "completed", "completed_at").
		WherePK().
		Exec(ctx)
	return r.HandleError("update", "quest", quest.ID, err)
}

func (r *questRepository) CreateBatch(ctx context.Context, db bun.IDB, quests []*models.Quest) error {
	if len(quests) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, q := range quests {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.CreatedAt = now
	}

	_, err := db.NewInsert().Model(&quests).Exec(ctx)
	return r.HandleError("batch_insert", "quest", quests[0].UserID, err)
}

func (r *questRepository) AdvanceProgress(ctx context.Context, db bun.IDB, userID uuid.UUID, metric string, amount int) (int64, error) {
	if amount <= 0 || metric == "" {
		return 0, nil
	}

	res, err := db.NewUpdate().
		Model((*models.Quest)(nil)).
		Set("progress = LEAST(progress + ?, target)", amount).
		Where("user_id = ?", userID).
		Where("metric = ?", metric).
		Where("completed = false").
		Exec(ctx)
	if err != nil {
		return 0, r.HandleError("advance_progress", "quest", userID, err)
	}
	return rowsAffected(res), nil
}
