package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type StoryProgress struct {
	bun.BaseModel `bun:"table:story_progress,alias:sp"`

	ID                uuid.UUID `bun:"id,pk,type:uuid" json:"-"`
	UserID            uuid.UUID `bun:"user_id,notnull,unique,type:uuid" json:"-"`
	CurrentChapter    int       `bun:"current_chapter,notnull,default:1" json:"currentChapter"`
	CompletedChapters []int     `bun:"completed_chapters,type:jsonb,notnull" json:"completedChapters"`
	UpdatedAt         time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}
