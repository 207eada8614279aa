package engine

// Enemy blocks a room. Strength is the health a player must have to win
// the fight; a victory costs exactly that much health.
type Enemy struct {
	Name        string
	Description string
	Strength    int
}

// Treasure is what a defeated enemy leaves behind. The key stays with the
// treasure chest; only the two items are collected.
type Treasure struct {
	Item1 string
	Item2 string
	Key   string
}

type Room struct {
	Name      string
	Enemy     Enemy
	Treasure  Treasure
	Challenge string
}

// Dungeon is the fixed five-room sequence plus a visited stack. The stack
// exists only to reverse a single step of traversal at a time.
type Dungeon struct {
	rooms   []Room
	visited []int // indices into rooms, in order of entry
	current int   // index of the current room, -1 before the first entry
}

// NewDungeon builds the fixed room sequence. The content never varies
// across runs.
func NewDungeon() *Dungeon {
	return &Dungeon{
		current: -1,
		rooms: []Room{
			{
				Name:      "Base",
				Enemy:     Enemy{Name: "Shadow Stalker", Description: "A stealthy, dark creature.", Strength: 15},
				Treasure:  Treasure{Item1: "5 Coins", Item2: "Armour", Key: "Key1"},
				Challenge: "Collect 5 coins",
			},
			{
				Name:      "Bronze",
				Enemy:     Enemy{Name: "Viper", Description: "A venomous menace.", Strength: 25},
				Treasure:  Treasure{Item1: "5 Coins", Item2: "Health Booster Potion", Key: "Key2"},
				Challenge: "Exit the room within 5 seconds",
			},
			{
				Name:      "Platinum",
				Enemy:     Enemy{Name: "Crawler", Description: "A fast, wall-climbing creature.", Strength: 35},
				Treasure:  Treasure{Item1: "Health Booster Potion", Item2: "Armour", Key: "Key3"},
				Challenge: "Defeat the enemy without armour",
			},
			{
				Name:      "Silver",
				Enemy:     Enemy{Name: "Hunter", Description: "A swift and deadly assassin.", Strength: 50},
				Treasure:  Treasure{Item1: "5 Coins", Item2: "Armour", Key: "Key4"},
				Challenge: "Riddle: I have no voice, but I can teach you all I know. What am I? (Answer: book)",
			},
			{
				Name:      "Gold",
				Enemy:     Enemy{Name: "Boss", Description: "The ultimate challenge.", Strength: 70},
				Treasure:  Treasure{Item1: "5 Coins", Item2: "Health Booster Potion", Key: "Key5"},
				Challenge: "Defeat the boss",
			},
		},
	}
}

// Rooms returns a copy of the room sequence.
func (d *Dungeon) Rooms() []Room {
	out := make([]Room, len(d.rooms))
	copy(out, d.rooms)
	return out
}

// Current returns the room the player is in, or nil before the dungeon
// has been entered.
func (d *Dungeon) Current() *Room {
	if d.current < 0 || d.current >= len(d.rooms) {
		return nil
	}
	return &d.rooms[d.current]
}

// Advance moves one room forward and pushes it onto the visited stack.
// It returns nil when the player is already in the last room, which is
// how a forward exit out of the dungeon is detected.
func (d *Dungeon) Advance() *Room {
	if d.current >= len(d.rooms)-1 {
		return nil
	}
	d.current++
	d.visited = append(d.visited, d.current)
	return &d.rooms[d.current]
}

// Backtrack pops the visited stack and returns to the previous room.
// It fails from the first room (or before entry), where there is nothing
// underneath the current entry.
func (d *Dungeon) Backtrack() (*Room, error) {
	if len(d.visited) <= 1 {
		return nil, ErrNoPreviousRoom
	}
	d.visited = d.visited[:len(d.visited)-1]
	d.current = d.visited[len(d.visited)-1]
	return &d.rooms[d.current], nil
}
