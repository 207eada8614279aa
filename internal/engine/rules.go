package engine

// Rules is the instructions text shared by both front-ends.
func Rules() string {
	return `Welcome to Dungeon Escape!

1. You have 10 moves to escape the dungeon.
2. Each room has an enemy, a treasure, and a challenge.
3. Defeating enemies gets you treasure.
4. If your health drops below 20, you lose.
5. Clear the final room to win.

Good luck!`
}
