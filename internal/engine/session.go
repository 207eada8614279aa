package engine

const (
	fightReward   = 10 // coins per defeated enemy
	fleeDamage    = 10 // failed fight
	bypassDamage  = 5  // sneaking past costs a little health
	potionHeal    = 20 // Health Booster Potion, applied when looted
	healthPotion  = "Health Booster Potion"
	defaultName   = "Adventurer"
	maxNameLength = 24
)

type Action int

const (
	ActionFight Action = iota + 1
	ActionBypass
	ActionBacktrack
	ActionQuit
)

func (a Action) IsValid() bool {
	switch a {
	case ActionFight, ActionBypass, ActionBacktrack, ActionQuit:
		return true
	default:
		return false
	}
}

// Outcome is the terminal state of a session. Stored with the run record,
// so the values are stable strings.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeEscaped    Outcome = "escaped"
	OutcomeDefeated   Outcome = "defeated"  // health dropped below CriticalHealth
	OutcomeExhausted  Outcome = "exhausted" // move budget ran out
	OutcomeQuit       Outcome = "quit"
)

// Event says what a single resolved turn did.
type Event int

const (
	EventNone Event = iota
	EventVictory
	EventFled
	EventBypassed
	EventBacktracked
	EventBlocked // backtrack with nothing underneath
	EventQuit
	EventHesitated // unknown action, turn wasted
)

// TurnResult is everything a front-end needs to narrate one turn.
type TurnResult struct {
	Event    Event
	Enemy    string // defeated or fled-from enemy, fight turns only
	Room     *Room  // room after the action; nil only while escaping
	Healed   int    // health restored by looted potions
	Escaped  bool
	GameOver bool
}

// Session binds one player to one dungeon and resolves turns until the
// run ends. It is single-threaded by construction: one front-end drives
// it, one action at a time.
type Session struct {
	Player  *Player
	Dungeon *Dungeon

	outcome      Outcome
	roomsCleared int
}

// NewSession starts a run: fresh player, fresh dungeon, first room
// entered. An empty name falls back to a default, an oversized one is
// trimmed.
func NewSession(name string) *Session {
	s := &Session{
		Player:  NewPlayer(normalizeName(name)),
		Dungeon: NewDungeon(),
		outcome: OutcomeInProgress,
	}
	s.Dungeon.Advance()
	return s
}

func normalizeName(name string) string {
	trimmed := []rune(name)
	if len(trimmed) > maxNameLength {
		trimmed = trimmed[:maxNameLength]
	}
	if len(trimmed) == 0 {
		return defaultName
	}
	return string(trimmed)
}

func (s *Session) Outcome() Outcome { return s.outcome }

func (s *Session) Over() bool { return s.outcome != OutcomeInProgress }

// Room returns the current room. It stays on the final room after an
// escape so the end screens can still name it.
func (s *Session) Room() *Room { return s.Dungeon.Current() }

// RoomsCleared is the number of forward exits (victories and bypasses).
func (s *Session) RoomsCleared() int { return s.roomsCleared }

// Resolve applies one action. Every accepted action, including an
// unknown one, costs a move; front-ends must not call Resolve for input
// they could not parse at all. Resolving a finished session is a no-op.
func (s *Session) Resolve(action Action) TurnResult {
	if s.Over() {
		return TurnResult{Event: EventNone, Room: s.Room(), GameOver: true}
	}

	s.Player.UseMove()

	var res TurnResult
	switch action {
	case ActionFight:
		res = s.fight()
	case ActionBypass:
		res = s.bypass()
	case ActionBacktrack:
		res = s.backtrack()
	case ActionQuit:
		s.outcome = OutcomeQuit
		res = TurnResult{Event: EventQuit, Room: s.Room()}
	default:
		res = TurnResult{Event: EventHesitated, Room: s.Room()}
	}

	s.settle(&res)
	return res
}

func (s *Session) fight() TurnResult {
	room := s.Dungeon.Current()
	enemy := room.Enemy
	if s.Player.Health < enemy.Strength {
		s.Player.TakeDamage(fleeDamage)
		return TurnResult{Event: EventFled, Enemy: enemy.Name, Room: room}
	}

	s.Player.TakeDamage(enemy.Strength)
	healed := s.collect(room.Treasure)
	s.Player.Coins += fightReward
	s.Player.EnemiesDefeated++

	next := s.advance()
	return TurnResult{Event: EventVictory, Enemy: enemy.Name, Room: next, Healed: healed, Escaped: next == nil}
}

func (s *Session) bypass() TurnResult {
	s.Player.TakeDamage(bypassDamage)
	next := s.advance()
	return TurnResult{Event: EventBypassed, Room: next, Escaped: next == nil}
}

func (s *Session) backtrack() TurnResult {
	prev, err := s.Dungeon.Backtrack()
	if err != nil {
		return TurnResult{Event: EventBlocked, Room: s.Room()}
	}
	return TurnResult{Event: EventBacktracked, Room: prev}
}

// advance moves forward and counts the cleared room. A nil return means
// the player just left the final room.
func (s *Session) advance() *Room {
	s.roomsCleared++
	next := s.Dungeon.Advance()
	if next == nil {
		s.outcome = OutcomeEscaped
	}
	return next
}

// collect loots both treasure items. A looted booster potion is drunk on
// the spot; the chest key stays behind.
func (s *Session) collect(t Treasure) (healed int) {
	for _, item := range []string{t.Item1, t.Item2} {
		s.Player.AddLoot(item)
		if item == healthPotion {
			before := s.Player.Health
			s.Player.Heal(potionHeal)
			healed += s.Player.Health - before
		}
	}
	return healed
}

// settle applies the end-of-turn checks. Escape is decided inside
// advance and wins over the health and move checks, so clearing the
// final room counts even when the winning fight left health critical.
func (s *Session) settle(res *TurnResult) {
	if s.outcome == OutcomeInProgress {
		switch {
		case s.Player.Health < CriticalHealth:
			s.outcome = OutcomeDefeated
		case s.Player.Moves <= 0:
			s.outcome = OutcomeExhausted
		}
	}
	if s.outcome != OutcomeInProgress {
		s.Player.SortLoot()
		res.GameOver = true
	}
}
