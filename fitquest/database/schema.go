package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

const userForeignKey = `("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`

// InitializeSchema creates all tables, constraints and indexes. It is idempotent.
func (db *DB) InitializeSchema(ctx context.Context) error {
	if _, err := db.bunDB.NewCreateTable().
		Model((*models.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	owned := []any{
		(*models.Character)(nil),
		(*models.FitnessEntry)(nil),
		(*models.Quest)(nil),
		(*models.Battle)(nil),
		(*models.StoryProgress)(nil),
		(*models.Achievement)(nil),
	}
	for _, model := range owned {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			ForeignKey(userForeignKey).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	if err := db.MigrateSchema(ctx); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	indexes := []string{
		// One fitness row per user per day; upserts rely on this.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_fitness_entries_user_date ON fitness_entries(user_id, entry_date);",
		// Daily markers: at most one per (user, type, day).
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_achievements_daily_claim ON achievements(user_id, type, claim_day) WHERE claim_day IS NOT NULL;",
		"CREATE INDEX IF NOT EXISTS idx_achievements_user_unlocked ON achievements(user_id, unlocked_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_characters_rank ON characters(level DESC, xp DESC);",
		"CREATE INDEX IF NOT EXISTS idx_characters_updated_at ON characters(updated_at);",
		"CREATE INDEX IF NOT EXISTS idx_quests_user_created ON quests(user_id, created_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_quests_user_open_metric ON quests(user_id, metric) WHERE completed = false;",
		"CREATE INDEX IF NOT EXISTS idx_battles_user_created ON battles(user_id, created_at DESC);",
	}
	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	slog.Info("Database schema initialized", slog.String("type", "db"))
	return nil
}

// MigrateSchema applies column and constraint changes to tables created by older builds.
func (db *DB) MigrateSchema(ctx context.Context) error {
	columns := []string{
		`ALTER TABLE quests ADD COLUMN IF NOT EXISTS metric VARCHAR NOT NULL DEFAULT '';`,
		`ALTER TABLE battles ADD COLUMN IF NOT EXISTS player_power INTEGER NOT NULL DEFAULT 0;`,
		`ALTER TABLE battles ADD COLUMN IF NOT EXISTS enemy_power INTEGER NOT NULL DEFAULT 0;`,
		`ALTER TABLE achievements ADD COLUMN IF NOT EXISTS claim_day DATE;`,
	}
	for _, stmt := range columns {
		if _, err := db.ExecWithLog(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add column: %w", err)
		}
	}

	// Non-negative balances are enforced by the store as well as the services.
	checks := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'characters_non_negative'
			) THEN
				ALTER TABLE characters
				ADD CONSTRAINT characters_non_negative
				CHECK (coins >= 0 AND xp >= 0 AND level >= 1
					AND strength >= 0 AND endurance >= 0 AND agility >= 0);
			END IF;
		END $$;
	`
	if _, err := db.ExecWithLog(ctx, checks); err != nil {
		slog.Warn("Failed to add characters check constraint",
			slog.String("type", "db"),
			slog.Any("error", err))
	}

	return nil
}
