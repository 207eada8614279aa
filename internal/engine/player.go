package engine

import (
	"sort"
	"strings"
)

const (
	// MaxHealth is the starting and maximum player health.
	MaxHealth = 100
	// StartingMoves is the move budget for a whole run.
	StartingMoves = 10
	// CriticalHealth is the loss threshold: the run ends once health
	// drops below it.
	CriticalHealth = 20
)

type Player struct {
	Name            string
	Health          int
	Moves           int
	Coins           int
	EnemiesDefeated int
	Loot            []string
}

func NewPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Health: MaxHealth,
		Moves:  StartingMoves,
	}
}

// TakeDamage reduces health, never below zero.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores health, never above MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > MaxHealth {
		p.Health = MaxHealth
	}
}

// UseMove spends one move from the budget, never below zero.
func (p *Player) UseMove() {
	if p.Moves > 0 {
		p.Moves--
	}
}

func (p *Player) AddLoot(item string) {
	p.Loot = append(p.Loot, item)
}

// SortLoot orders the loot case-insensitively. Called once, at game end.
func (p *Player) SortLoot() {
	sort.SliceStable(p.Loot, func(i, j int) bool {
		return strings.ToLower(p.Loot[i]) < strings.ToLower(p.Loot[j])
	})
}
