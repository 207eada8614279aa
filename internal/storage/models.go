package storage

import "time"

// Run is one finished game, whatever way it ended.
type Run struct {
	ID              int64
	PlayerName      string
	Outcome         string
	Health          int
	MovesLeft       int
	Coins           int
	EnemiesDefeated int
	RoomsCleared    int
	FinishedAt      time.Time
}
