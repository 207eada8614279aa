package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

type RunInsert struct {
	PlayerName      string
	Outcome         string
	Health          int
	MovesLeft       int
	Coins           int
	EnemiesDefeated int
	RoomsCleared    int
	FinishedAt      time.Time
	Loot            []string
}

// Insert writes the run and its loot rows in one transaction.
func (r *RunRepo) Insert(ctx context.Context, in RunInsert) (int64, error) {
	var id int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO runs (player_name, outcome, health, moves_left, coins, enemies_defeated, rooms_cleared, finished_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, in.PlayerName, in.Outcome, in.Health, in.MovesLeft, in.Coins, in.EnemiesDefeated, in.RoomsCleared, in.FinishedAt)
		if err != nil {
			return fmt.Errorf("run insert: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("run last insert id: %w", err)
		}
		for _, item := range in.Loot {
			if _, err := tx.ExecContext(ctx, `INSERT INTO run_loot (run_id, item) VALUES (?, ?)`, id, item); err != nil {
				return fmt.Errorf("loot insert: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RunRepo) Get(ctx context.Context, id int64) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, player_name, outcome, health, moves_left, coins, enemies_defeated, rooms_cleared, finished_at
		FROM runs
		WHERE id = ?
	`, id)

	var run Run
	if err := row.Scan(&run.ID, &run.PlayerName, &run.Outcome, &run.Health, &run.MovesLeft, &run.Coins, &run.EnemiesDefeated, &run.RoomsCleared, &run.FinishedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("run get: %w", err)
	}
	return &run, nil
}

// ListRecent returns up to limit runs, newest first.
func (r *RunRepo) ListRecent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, player_name, outcome, health, moves_left, coins, enemies_defeated, rooms_cleared, finished_at
		FROM runs
		ORDER BY finished_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("run list: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

// ListTop returns the leaderboard: escapes first, then coins, then
// enemies defeated, oldest run winning ties.
func (r *RunRepo) ListTop(ctx context.Context, limit int) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, player_name, outcome, health, moves_left, coins, enemies_defeated, rooms_cleared, finished_at
		FROM runs
		ORDER BY (outcome = 'escaped') DESC, coins DESC, enemies_defeated DESC, finished_at ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("run top: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

// LootByRun returns the run's loot in insertion order, which is the
// sorted order the game ended with.
func (r *RunRepo) LootByRun(ctx context.Context, runID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item FROM run_loot WHERE run_id = ? ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("loot list: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("loot scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loot rows: %w", err)
	}
	return items, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.PlayerName, &run.Outcome, &run.Health, &run.MovesLeft, &run.Coins, &run.EnemiesDefeated, &run.RoomsCleared, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("run scan: %w", err)
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run rows: %w", err)
	}
	return out, nil
}
