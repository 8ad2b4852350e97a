package models

import "github.com/google/uuid"

// LeaderboardRow is the projection returned by the ranking query.
type LeaderboardRow struct {
	UserID        uuid.UUID `bun:"user_id" json:"userId"`
	Username      string    `bun:"username" json:"username"`
	CharacterName string    `bun:"character_name" json:"characterName"`
	Level         int       `bun:"level" json:"level"`
	XP            int64     `bun:"xp" json:"xp"`
}
