package engine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dungeonescape/internal/storage"
)

// Service records finished runs and serves the history/leaderboard
// queries on top of the storage repos.
type Service struct {
	db   *sql.DB
	runs *storage.RunRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:   db,
		runs: storage.NewRunRepo(db),
	}
}

func (s *Service) RunRepo() *storage.RunRepo { return s.runs }

// RecordRun stores a finished session as a run. Recording an unfinished
// session is a programming error on the front-end side.
func (s *Service) RecordRun(ctx context.Context, sess *Session) (int64, error) {
	if !sess.Over() {
		return 0, errors.New("session is still in progress")
	}
	p := sess.Player
	return s.runs.Insert(ctx, storage.RunInsert{
		PlayerName:      p.Name,
		Outcome:         string(sess.Outcome()),
		Health:          p.Health,
		MovesLeft:       p.Moves,
		Coins:           p.Coins,
		EnemiesDefeated: p.EnemiesDefeated,
		RoomsCleared:    sess.RoomsCleared(),
		FinishedAt:      time.Now().UTC(),
		Loot:            p.Loot,
	})
}

// History returns recent runs, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]storage.Run, error) {
	return s.runs.ListRecent(ctx, limit)
}

// Top returns the leaderboard.
func (s *Service) Top(ctx context.Context, limit int) ([]storage.Run, error) {
	return s.runs.ListTop(ctx, limit)
}

// Loot returns the stored loot of one run.
func (s *Service) Loot(ctx context.Context, runID int64) ([]string, error) {
	return s.runs.LootByRun(ctx, runID)
}
