package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			health INTEGER NOT NULL,
			moves_left INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			enemies_defeated INTEGER NOT NULL,
			rooms_cleared INTEGER NOT NULL,
			finished_at DATETIME NOT NULL
		);`,
		// Loot is kept per-row so history can show it sorted as the game
		// left it, without a serialized blob.
		`CREATE TABLE IF NOT EXISTS run_loot (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL,
			item TEXT NOT NULL,
			FOREIGN KEY(run_id) REFERENCES runs(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_finished_at ON runs(finished_at);`,
		`CREATE INDEX IF NOT EXISTS idx_run_loot_run_id ON run_loot(run_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
