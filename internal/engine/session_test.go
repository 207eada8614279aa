package engine

import (
	"reflect"
	"testing"
)

func TestRoomOrderIsFixed(t *testing.T) {
	rooms := NewDungeon().Rooms()
	if len(rooms) != 5 {
		t.Fatalf("room count=%d, want 5", len(rooms))
	}
	want := []string{"Base", "Bronze", "Platinum", "Silver", "Gold"}
	for i, room := range rooms {
		if room.Name != want[i] {
			t.Fatalf("room[%d]=%q, want %q", i, room.Name, want[i])
		}
	}
}

func TestNewSessionEntersFirstRoom(t *testing.T) {
	sess := NewSession("Hero")
	if got := sess.Room().Name; got != "Base" {
		t.Fatalf("starting room=%q, want Base", got)
	}
	if sess.Player.Health != MaxHealth || sess.Player.Moves != StartingMoves {
		t.Fatalf("player start=%d hp/%d moves, want %d/%d", sess.Player.Health, sess.Player.Moves, MaxHealth, StartingMoves)
	}
	if sess.Over() {
		t.Fatalf("new session must be in progress")
	}
}

func TestNewSessionDefaultsEmptyName(t *testing.T) {
	if got := NewSession("").Player.Name; got != "Adventurer" {
		t.Fatalf("empty name=%q, want Adventurer", got)
	}
	long := "0123456789012345678901234567"
	if got := NewSession(long).Player.Name; len([]rune(got)) != 24 {
		t.Fatalf("long name not trimmed, got %q", got)
	}
}

func TestFightVictoryArithmetic(t *testing.T) {
	sess := NewSession("Hero")
	res := sess.Resolve(ActionFight)

	if res.Event != EventVictory {
		t.Fatalf("event=%v, want victory", res.Event)
	}
	if res.Enemy != "Shadow Stalker" {
		t.Fatalf("enemy=%q", res.Enemy)
	}
	p := sess.Player
	if p.Health != 85 {
		t.Fatalf("health=%d, want 85 (100 - strength 15)", p.Health)
	}
	if p.Moves != 9 {
		t.Fatalf("moves=%d, want 9", p.Moves)
	}
	if p.Coins != 10 || p.EnemiesDefeated != 1 {
		t.Fatalf("coins=%d defeated=%d, want 10/1", p.Coins, p.EnemiesDefeated)
	}
	if want := []string{"5 Coins", "Armour"}; !reflect.DeepEqual(p.Loot, want) {
		t.Fatalf("loot=%v, want %v", p.Loot, want)
	}
	if sess.Room().Name != "Bronze" {
		t.Fatalf("room=%q, want Bronze", sess.Room().Name)
	}
}

func TestFightVictoryDrinksLootedPotion(t *testing.T) {
	sess := NewSession("Hero")
	sess.Resolve(ActionFight) // Base: 100 -> 85

	res := sess.Resolve(ActionFight) // Bronze loot has the potion
	if res.Event != EventVictory {
		t.Fatalf("event=%v, want victory", res.Event)
	}
	if res.Healed != 20 {
		t.Fatalf("healed=%d, want 20", res.Healed)
	}
	if got := sess.Player.Health; got != 80 {
		t.Fatalf("health=%d, want 80 (85 - 25 + 20)", got)
	}
}

func TestFightTooWeakFlees(t *testing.T) {
	sess := NewSession("Hero")
	for i := 0; i < 3; i++ {
		sess.Resolve(ActionBypass) // reach Silver, health 85
	}
	if sess.Room().Name != "Silver" {
		t.Fatalf("room=%q, want Silver", sess.Room().Name)
	}
	sess.Player.Health = 45 // below the Hunter's strength of 50

	res := sess.Resolve(ActionFight)
	if res.Event != EventFled {
		t.Fatalf("event=%v, want fled", res.Event)
	}
	if sess.Player.Health != 35 {
		t.Fatalf("health=%d, want 35 (45 - flee damage 10)", sess.Player.Health)
	}
	if sess.Over() {
		t.Fatalf("flee at 35 health must not end the run")
	}
	if sess.Room().Name != "Silver" {
		t.Fatalf("flee must not advance, room=%q", sess.Room().Name)
	}
}

func TestBypassRunEscapes(t *testing.T) {
	sess := NewSession("Hero")
	var last TurnResult
	for i := 0; i < 5; i++ {
		last = sess.Resolve(ActionBypass)
	}
	if !last.Escaped || last.Event != EventBypassed {
		t.Fatalf("last turn=%+v, want bypass escape", last)
	}
	if sess.Outcome() != OutcomeEscaped {
		t.Fatalf("outcome=%q, want escaped", sess.Outcome())
	}
	p := sess.Player
	if p.Health != 75 || p.Moves != 5 {
		t.Fatalf("health=%d moves=%d, want 75/5", p.Health, p.Moves)
	}
	if len(p.Loot) != 0 {
		t.Fatalf("bypass run must loot nothing, got %v", p.Loot)
	}
	if sess.RoomsCleared() != 5 {
		t.Fatalf("rooms cleared=%d, want 5", sess.RoomsCleared())
	}
}

func TestBacktrackReversesOneStep(t *testing.T) {
	sess := NewSession("Hero")
	sess.Resolve(ActionBypass) // Base -> Bronze

	res := sess.Resolve(ActionBacktrack)
	if res.Event != EventBacktracked {
		t.Fatalf("event=%v, want backtracked", res.Event)
	}
	if sess.Room().Name != "Base" {
		t.Fatalf("room=%q, want Base", sess.Room().Name)
	}
	if sess.Player.Moves != 8 {
		t.Fatalf("moves=%d, want 8", sess.Player.Moves)
	}
}

func TestBacktrackBlockedAtEntrance(t *testing.T) {
	sess := NewSession("Hero")
	res := sess.Resolve(ActionBacktrack)
	if res.Event != EventBlocked {
		t.Fatalf("event=%v, want blocked", res.Event)
	}
	if sess.Room().Name != "Base" {
		t.Fatalf("room=%q, want Base", sess.Room().Name)
	}
	if sess.Player.Moves != 9 {
		t.Fatalf("a blocked backtrack still costs the move, moves=%d", sess.Player.Moves)
	}
}

func TestHesitationWastesTheTurn(t *testing.T) {
	sess := NewSession("Hero")
	res := sess.Resolve(Action(9))
	if res.Event != EventHesitated {
		t.Fatalf("event=%v, want hesitated", res.Event)
	}
	if sess.Player.Moves != 9 || sess.Player.Health != MaxHealth {
		t.Fatalf("hesitation must only cost a move, got moves=%d health=%d", sess.Player.Moves, sess.Player.Health)
	}
}

func TestMovesRunOut(t *testing.T) {
	sess := NewSession("Hero")
	for i := 0; i < StartingMoves; i++ {
		if sess.Over() {
			t.Fatalf("session over after %d moves", i)
		}
		sess.Resolve(Action(9))
	}
	if sess.Outcome() != OutcomeExhausted {
		t.Fatalf("outcome=%q, want exhausted", sess.Outcome())
	}
}

func TestHealthDropsBelowThreshold(t *testing.T) {
	sess := NewSession("Hero")
	for i := 0; i < 3; i++ {
		sess.Resolve(ActionBypass) // Silver, health 85
	}
	sess.Player.Health = 25

	res := sess.Resolve(ActionFight) // flee: 25 -> 15
	if !res.GameOver {
		t.Fatalf("expected game over")
	}
	if sess.Outcome() != OutcomeDefeated {
		t.Fatalf("outcome=%q, want defeated", sess.Outcome())
	}
}

func TestEscapeWinsOverMoveExhaustion(t *testing.T) {
	sess := NewSession("Hero")
	for i := 0; i < 4; i++ {
		sess.Resolve(ActionBypass) // reach Gold
	}
	sess.Player.Moves = 1

	res := sess.Resolve(ActionBypass)
	if !res.Escaped {
		t.Fatalf("expected escape, got %+v", res)
	}
	if sess.Outcome() != OutcomeEscaped {
		t.Fatalf("outcome=%q, want escaped (escape beats exhaustion)", sess.Outcome())
	}
	if sess.Player.Moves != 0 {
		t.Fatalf("moves=%d, want 0", sess.Player.Moves)
	}
}

func TestEscapeWinsOverCriticalHealth(t *testing.T) {
	sess := NewSession("Hero")
	for i := 0; i < 4; i++ {
		sess.Resolve(ActionBypass) // reach Gold, health 80
	}
	sess.Player.Health = 24

	res := sess.Resolve(ActionBypass) // 24 - 5 = 19, below the threshold
	if !res.Escaped {
		t.Fatalf("expected escape, got %+v", res)
	}
	if sess.Player.Health != 19 {
		t.Fatalf("health=%d, want 19", sess.Player.Health)
	}
	if sess.Outcome() != OutcomeEscaped {
		t.Fatalf("outcome=%q, want escaped (escape beats critical health)", sess.Outcome())
	}
}

func TestQuitEndsTheRun(t *testing.T) {
	sess := NewSession("Hero")
	res := sess.Resolve(ActionQuit)
	if res.Event != EventQuit || !res.GameOver {
		t.Fatalf("result=%+v, want quit game over", res)
	}
	if sess.Outcome() != OutcomeQuit {
		t.Fatalf("outcome=%q, want quit", sess.Outcome())
	}
}

func TestLootSortedCaseInsensitivelyAtGameEnd(t *testing.T) {
	sess := NewSession("Hero")
	sess.Resolve(ActionFight) // 5 Coins, Armour
	sess.Resolve(ActionFight) // 5 Coins, Health Booster Potion
	sess.Resolve(ActionQuit)

	want := []string{"5 Coins", "5 Coins", "Armour", "Health Booster Potion"}
	if !reflect.DeepEqual(sess.Player.Loot, want) {
		t.Fatalf("loot=%v, want %v", sess.Player.Loot, want)
	}
}

func TestResolveAfterGameOverIsNoOp(t *testing.T) {
	sess := NewSession("Hero")
	sess.Resolve(ActionQuit)
	moves := sess.Player.Moves

	res := sess.Resolve(ActionFight)
	if res.Event != EventNone || !res.GameOver {
		t.Fatalf("result=%+v, want inert game-over result", res)
	}
	if sess.Player.Moves != moves {
		t.Fatalf("resolve after game over must not spend moves")
	}
}

func TestActionValidity(t *testing.T) {
	for _, a := range []Action{ActionFight, ActionBypass, ActionBacktrack, ActionQuit} {
		if !a.IsValid() {
			t.Fatalf("action %d should be valid", a)
		}
	}
	for _, a := range []Action{0, 5, 42} {
		if a.IsValid() {
			t.Fatalf("action %d should be invalid", a)
		}
	}
}
