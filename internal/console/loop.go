// Package console is the line-based text front-end: the same game the
// GUI runs, driven by numbered prompts over stdin.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dungeonescape/internal/engine"
	"dungeonescape/internal/ui"
)

// ParseChoice maps one input line to an action. Non-numeric input is an
// error and must not cost the player a move; out-of-range numbers are
// returned as-is so the session can charge the wasted turn.
func ParseChoice(line string) (engine.Action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid input, please enter a number")
	}
	return engine.Action(n), nil
}

// Run plays a full game over in/out and records the finished run.
func Run(ctx context.Context, svc *engine.Service, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, ui.Heading(ui.IconDungeon, "Dungeon Escape"))
	fmt.Fprintln(out, engine.Rules())
	fmt.Fprintln(out)
	fmt.Fprint(out, ui.Key.Render("Enter your name:")+" ")

	name, ok := readLine(sc)
	if !ok {
		return sc.Err()
	}

	sess := engine.NewSession(name)
	for !sess.Over() {
		printRoom(out, sess)
		fmt.Fprint(out, ui.Key.Render("Enter choice:")+" ")

		line, ok := readLine(sc)
		if !ok {
			// stdin closed mid-game, treat it like quitting
			res := sess.Resolve(engine.ActionQuit)
			printResult(out, sess, res)
			break
		}
		action, err := ParseChoice(line)
		if err != nil {
			fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+err.Error()))
			continue
		}
		res := sess.Resolve(action)
		printResult(out, sess, res)
	}

	printFinal(out, sess)

	if _, err := svc.RecordRun(ctx, sess); err != nil {
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" could not record the run: "+err.Error()))
	}
	return sc.Err()
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func printRoom(out io.Writer, sess *engine.Session) {
	room := sess.Room()
	p := sess.Player

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Muted.Render(strings.Repeat("-", 40)))
	fmt.Fprintln(out, ui.LabelValue("Room", ui.H2.Render(room.Name)))
	fmt.Fprintf(out, "%s %s | %s %s | %s %d\n",
		ui.Key.Render("Player:"), p.Name,
		ui.Key.Render("Health:"), ui.HealthText(p.Health),
		ui.Key.Render("Moves:"), p.Moves)
	fmt.Fprintf(out, "%s %s - %s\n", ui.Key.Render("Enemy:"), room.Enemy.Name, ui.Muted.Render(room.Enemy.Description))
	fmt.Fprintln(out, ui.LabelValue("Challenge", ui.Muted.Render(room.Challenge)))
	fmt.Fprintln(out, ui.Muted.Render(strings.Repeat("-", 40)))
	fmt.Fprintln(out, "Choose your action:")
	fmt.Fprintln(out, "  1. Fight enemy")
	fmt.Fprintln(out, "  2. Attempt to bypass")
	fmt.Fprintln(out, "  3. Backtrack to previous room")
	fmt.Fprintln(out, "  4. Quit game")
}

func printResult(out io.Writer, sess *engine.Session, res engine.TurnResult) {
	fmt.Fprintln(out)
	switch res.Event {
	case engine.EventVictory:
		fmt.Fprintln(out, ui.Good.Render(ui.IconSword+" Victory! You defeated the "+res.Enemy+"."))
		fmt.Fprintln(out, ui.Gold.Render(ui.IconLoot+" You collected the treasure!"))
		if res.Healed > 0 {
			fmt.Fprintf(out, "%s\n", ui.Good.Render(fmt.Sprintf(ui.IconHeart+" The booster potion restores %d health.", res.Healed)))
		}
		if res.Escaped {
			fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Congratulations! You cleared the final room and escaped the dungeon!"))
		}
	case engine.EventFled:
		fmt.Fprintln(out, ui.Bad.Render(ui.IconRun+" You were too weak! You flee, taking damage."))
	case engine.EventBypassed:
		if res.Escaped {
			fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Congratulations! You snuck out of the final room and escaped!"))
		} else {
			fmt.Fprintln(out, ui.Muted.Render(ui.IconDoor+" You sneak past, avoiding the fight but finding no treasure."))
		}
	case engine.EventBacktracked:
		fmt.Fprintln(out, ui.Muted.Render(ui.IconDoor+" You backtrack to the "+res.Room.Name+" room."))
	case engine.EventBlocked:
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" There is no room to backtrack to!"))
	case engine.EventQuit:
		fmt.Fprintln(out, ui.Muted.Render("You have quit the dungeon."))
	case engine.EventHesitated:
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Invalid choice. You hesitate and lose a turn."))
	}

	if res.GameOver && !res.Escaped {
		switch sess.Outcome() {
		case engine.OutcomeDefeated:
			fmt.Fprintln(out, ui.Bad.Render(ui.IconSkull+" Game Over! Your health dropped below 20."))
		case engine.OutcomeExhausted:
			fmt.Fprintln(out, ui.Bad.Render(ui.IconSkull+" Game Over! You ran out of moves."))
		}
	}
}

func printFinal(out io.Writer, sess *engine.Session) {
	p := sess.Player

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Heading("", "======== GAME OVER ========"))
	fmt.Fprintln(out, ui.LabelValue("Outcome", ui.OutcomeText(string(sess.Outcome()))))
	fmt.Fprintln(out, ui.LabelValue("Name", p.Name))
	fmt.Fprintln(out, ui.LabelValue("Health", ui.HealthText(p.Health)))
	fmt.Fprintln(out, ui.LabelValue("Moves Left", p.Moves))
	fmt.Fprintln(out, ui.LabelValue("Coins Collected", p.Coins))
	fmt.Fprintln(out, ui.LabelValue("Enemies Defeated", p.EnemiesDefeated))
	loot := "Empty"
	if len(p.Loot) > 0 {
		loot = strings.Join(p.Loot, ", ")
	}
	fmt.Fprintln(out, ui.LabelValue("Inventory (Sorted)", loot))
}
