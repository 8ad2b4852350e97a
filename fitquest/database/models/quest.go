package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	QuestTypeDaily       = "daily"
	QuestTypeWeekly      = "weekly"
	QuestTypeAchievement = "achievement"
)

// Quest metrics advanced automatically by gameplay. An empty metric means manual tracking.
const (
	MetricSteps           = "steps"
	MetricCalories        = "calories"
	MetricExerciseMinutes = "exercise_minutes"
	MetricBattlesWon      = "battles_won"
)

type Quest struct {
	bun.BaseModel `bun:"table:quests,alias:q"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	UserID      uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"userId"`
	Title       string     `bun:"title,notnull" json:"title"`
	Description string     `bun:"description" json:"description"`
	Type        string     `bun:"type,notnull" json:"type"`
	Metric      string     `bun:"metric,notnull,default:''" json:"metric,omitempty"`
	Target      int        `bun:"target,notnull" json:"target"`
	Progress    int        `bun:"progress,notnull,default:0" json:"progress"`
	Completed   bool       `bun:"completed,notnull,default:false" json:"completed"`
	XPReward    int64      `bun:"xp_reward,notnull,default:50" json:"xpReward"`
	CoinReward  int64      `bun:"coin_reward,notnull,default:25" json:"coinReward"`
	CompletedAt *time.Time `bun:"completed_at" json:"completedAt,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}
