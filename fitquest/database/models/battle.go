package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Battle is the immutable record of one resolved encounter.
type Battle struct {
	bun.BaseModel `bun:"table:battles,alias:b"`

	ID           uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	UserID       uuid.UUID `bun:"user_id,notnull,type:uuid" json:"userId"`
	EnemyType    string    `bun:"enemy_type,notnull" json:"enemyType"`
	PlayerAction string    `bun:"player_action,notnull" json:"playerAction"`
	Victory      bool      `bun:"victory,notnull" json:"victory"`
	XPGained     int64     `bun:"xp_gained,notnull" json:"xpGained"`
	CoinsGained  int64     `bun:"coins_gained,notnull" json:"coinsGained"`
	PlayerPower  int       `bun:"player_power,notnull" json:"playerPower"`
	EnemyPower   int       `bun:"enemy_power,notnull" json:"enemyPower"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}
