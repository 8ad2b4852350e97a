package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Character struct {
	bun.BaseModel `bun:"table:characters,alias:c"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	UserID    uuid.UUID `bun:"user_id,notnull,unique,type:uuid" json:"userId"`
	Name      string    `bun:"name,notnull" json:"name"`
	Level     int       `bun:"level,notnull,default:1" json:"level"`
	XP        int64     `bun:"xp,notnull,default:0" json:"xp"`
	Strength  int       `bun:"strength,notnull,default:10" json:"strength"`
	Endurance int       `bun:"endurance,notnull,default:10" json:"endurance"`
	Agility   int       `bun:"agility,notnull,default:10" json:"agility"`
	Health    int       `bun:"health,notnull,default:100" json:"health"`
	MaxHealth int       `bun:"max_health,notnull,default:100" json:"maxHealth"`
	Coins     int64     `bun:"coins,notnull,default:100" json:"coins"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}
