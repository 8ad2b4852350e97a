package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type AchievementRepository interface {
	Create(ctx context.Context, db bun.IDB, achievement *models.Achievement) error
	// CreateDailyMarker inserts a once-per-day achievement and reports false when
	// the (user, type, day) marker already exists.
	CreateDailyMarker(ctx context.Context, db bun.IDB, achievement *models.Achievement) (bool, error)
	HasDailyMarker(ctx context.Context, userID uuid.UUID, achievementType string, day time.Time) (bool, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Achievement, error)
}

type achievementRepository struct {
	BaseRepository
}

func NewAchievementRepository(db *bun.DB) AchievementRepository {
	return &achievementRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *achievementRepository) Create(ctx context.Context, db bun.IDB, achievement *models.Achievement) error {
	prepareAchievement(achievement)

	_, err := db.NewInsert().Model(achievement).Exec(ctx)
	return r.HandleError("create", "achievement", achievement.UserID, err)
}

func (r *achievementRepository) CreateDailyMarker(ctx context.Context, db bun.IDB, achievement *models.Achievement) (bool, error) {
	if achievement.ClaimDay == nil {
		return false, &RepositoryError{Operation: "create_daily_marker", Entity: "achievement", Err: errMissingClaimDay}
	}
	prepareAchievement(achievement)

	res, err := db.NewInsert().
		Model(achievement).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, r.HandleError("create_daily_marker", "achievement", achievement.UserID, err)
	}
	return rowsAffected(res) > 0, nil
}

func (r *achievementRepository) HasDailyMarker(ctx context.Context, userID uuid.UUID, achievementType string, day time.Time) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	exists, err := r.db.NewSelect().
		Model((*models.Achievement)(nil)).
		Where("user_id = ?", userID).
		Where("type = ?", achievementType).
		Where("claim_day = ?", day.Format(time.DateOnly)).
		Exists(ctx)
	if err != nil {
		return false, r.HandleError("exists", "achievement", userID, err)
	}
	return exists, nil
}

func (r *achievementRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Achievement, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	achievements := make([]*models.Achievement, 0, limit)
	err := r.db.NewSelect().
		Model(&achievements).
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "achievement", userID, err)
	}
	return achievements, nil
}

func prepareAchievement(a *models.Achievement) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.UnlockedAt.IsZero() {
		a.UnlockedAt = time.Now().UTC()
	}
}
