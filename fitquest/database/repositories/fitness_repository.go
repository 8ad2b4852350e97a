package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type FitnessRepository interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.FitnessEntry, error)
	GetByDate(ctx context.Context, db bun.IDB, userID uuid.UUID, day time.Time) (*models.FitnessEntry, error)
	Create(ctx context.Context, db bun.IDB, entry *models.FitnessEntry) error
	Update(ctx context.Context, db bun.IDB, entry *models.FitnessEntry) error
}

type fitnessRepository struct {
	BaseRepository
}

func NewFitnessRepository(db *bun.DB) FitnessRepository {
	return &fitnessRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *fitnessRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.FitnessEntry, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	entries := make([]*models.FitnessEntry, 0, limit)
	err := r.db.NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		Order("entry_date DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "fitness_entry", userID, err)
	}
	return entries, nil
}

func (r *fitnessRepository) GetByDate(ctx context.Context, db bun.IDB, userID uuid.UUID, day time.Time) (*models.FitnessEntry, error) {
	entry := new(models.FitnessEntry)
	err := db.NewSelect().
		Model(entry).
		Where("user_id = ?", userID).
		Where("entry_date = ?", day.Format(time.DateOnly)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_by_date", "fitness_entry", day.Format(time.DateOnly), err)
	}
	return entry, nil
}

func (r *fitnessRepository) Create(ctx context.Context, db bun.IDB, entry *models.FitnessEntry) error {
	now := time.Now().UTC()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := db.NewInsert().Model(entry).Exec(ctx)
	return r.HandleError("create", "fitness_entry", entry.UserID, err)
}

func (r *fitnessRepository) Update(ctx context.Context, db bun.IDB, entry *models.FitnessEntry) error {
	entry.UpdatedAt = time.Now().UTC()

	_, err := db.NewUpdate().
		Model(entry).
		Column("calories", "steps", "exercise_minutes", "activity_type", "updated_at").
		WherePK().
		Exec(ctx)
	return r.HandleError("update", "fitness_entry", entry.ID, err)
}
