package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type LeaderboardRepository interface {
	// Top ranks characters by level then xp. A nil since disables the recency filter.
	Top(ctx context.Context, since *time.Time, limit int) ([]*models.LeaderboardRow, error)
}

type leaderboardRepository struct {
	BaseRepository
}

func NewLeaderboardRepository(db *bun.DB) LeaderboardRepository {
	return &leaderboardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *leaderboardRepository) Top(ctx context.Context, since *time.Time, limit int) ([]*models.LeaderboardRow, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	query := r.db.NewSelect().
		TableExpr("characters AS c").
		Join("JOIN users AS u ON u.id = c.user_id").
		ColumnExpr("c.user_id, u.username, c.name AS character_name, c.level, c.xp").
		OrderExpr("c.level DESC, c.xp DESC, c.created_at ASC").
		Limit(limit)
	if since != nil {
		query = query.Where("c.updated_at >= ?", *since)
	}

	rows := make([]*models.LeaderboardRow, 0, limit)
	if err := query.Scan(ctx, &rows); err != nil {
		return nil, r.HandleError("rank", "leaderboard", "top", err)
	}
	return rows, nil
}
