package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type StoryRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StoryProgress, error)
	Upsert(ctx context.Context, progress *models.StoryProgress) error
}

type storyRepository struct {
	BaseRepository
}

func NewStoryRepository(db *bun.DB) StoryRepository {
	return &storyRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *storyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StoryProgress, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	progress := new(models.StoryProgress)
	err := r.db.NewSelect().
		Model(progress).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get", "story_progress", userID, err)
	}
	return progress, nil
}

func (r *storyRepository) Upsert(ctx context.Context, progress *models.StoryProgress) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	if progress.CompletedChapters == nil {
		progress.CompletedChapters = []int{}
	}
	progress.UpdatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(progress).
		On("CONFLICT (user_id) DO UPDATE").
		Set("current_chapter = EXCLUDED.current_chapter").
		Set("completed_chapters = EXCLUDED.completed_chapters").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	return r.HandleError("upsert", "story_progress", progress.UserID, err)
}
