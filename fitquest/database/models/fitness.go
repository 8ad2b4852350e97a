package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// FitnessEntry holds one user's activity for a single UTC calendar day.
type FitnessEntry struct {
	bun.BaseModel `bun:"table:fitness_entries,alias:fe"`

	ID              uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	UserID          uuid.UUID `bun:"user_id,notnull,type:uuid" json:"userId"`
	EntryDate       time.Time `bun:"entry_date,notnull,type:date" json:"date"`
	Calories        int       `bun:"calories,notnull,default:0" json:"calories"`
	Steps           int       `bun:"steps,notnull,default:0" json:"steps"`
	ExerciseMinutes int       `bun:"exercise_minutes,notnull,default:0" json:"exerciseMinutes"`
	ActivityType    string    `bun:"activity_type" json:"activityType,omitempty"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}
