package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	AchievementDailyReward = "daily_reward"
	AchievementLevelUp     = "level_up"
)

// Achievement is an append-only log entry. ClaimDay is set only for once-per-day
// markers and is covered by a partial unique index with (user_id, type).
type Achievement struct {
	bun.BaseModel `bun:"table:achievements,alias:a"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	UserID      uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"userId"`
	Title       string     `bun:"title,notnull" json:"title"`
	Description string     `bun:"description" json:"description"`
	Type        string     `bun:"type,notnull" json:"type"`
	UnlockedAt  time.Time  `bun:"unlocked_at,notnull,default:current_timestamp" json:"unlockedAt"`
	ClaimDay    *time.Time `bun:"claim_day,type:date" json:"-"`
}
