package engine

import "errors"

// ErrNoPreviousRoom is returned by Dungeon.Backtrack at the dungeon
// entrance, where the visited stack has nothing underneath the current
// room. Front-ends show it as-is.
var ErrNoPreviousRoom = errors.New("there is no room to backtrack to")
