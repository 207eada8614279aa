// Package gui is the windowed front-end. It reproduces the console
// script on a fixed 800x600 layout: name input, instructions, the
// four-button playing screen, and a game-over screen.
package gui

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeonescape/internal/engine"
)

const (
	screenW = 800
	screenH = 600
)

type screen int

const (
	screenNameInput screen = iota
	screenInstructions
	screenPlaying
	screenGameOver
)

var (
	colBG          = color.RGBA{30, 30, 40, 255}
	colPanel       = color.RGBA{45, 45, 55, 255}
	colButton      = color.RGBA{60, 60, 75, 255}
	colButtonHover = color.RGBA{80, 80, 100, 255}
	colOutline     = color.RGBA{100, 100, 120, 255}
	colHealthGood  = color.RGBA{100, 255, 100, 255}
	colHealthWarn  = color.RGBA{255, 255, 100, 255}
	colHealthCrit  = color.RGBA{255, 100, 100, 255}
)

type rect struct {
	x, y, w, h float32
}

func (r rect) contains(px, py int) bool {
	x, y := float32(px), float32(py)
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

var actionLabels = [4]string{"Fight", "Bypass", "Backtrack", "Quit"}

// Game implements ebiten.Game. All state transitions happen in Update;
// Draw only renders.
type Game struct {
	ctx context.Context
	svc *engine.Service

	scr  screen
	name string

	sess        *engine.Session
	message     string
	gameOverMsg string
	recordErr   error

	buttons  [4]rect
	startBtn rect

	inputRunes []rune
}

func New(ctx context.Context, svc *engine.Service) *Game {
	g := &Game{
		ctx: ctx,
		svc: svc,
		scr: screenNameInput,
	}
	const bw, bh = 180, 55
	for i := range g.buttons {
		g.buttons[i] = rect{x: float32(20 + i*(bw+20)), y: 440, w: bw, h: bh}
	}
	g.startBtn = rect{x: screenW/2 - 100, y: 450, w: 200, h: 60}
	return g
}

func (g *Game) Update() error {
	switch g.scr {
	case screenNameInput:
		g.updateNameInput()
	case screenInstructions:
		if clickedIn(g.startBtn) {
			g.startGame()
		}
	case screenPlaying:
		g.updatePlaying()
	case screenGameOver:
		if anyInput() {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) updateNameInput() {
	g.inputRunes = ebiten.AppendInputChars(g.inputRunes[:0])
	for _, r := range g.inputRunes {
		if r >= ' ' && len(g.name) < 24 {
			g.name += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.name = trimLastRune(g.name)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.scr = screenInstructions
	}
}

func (g *Game) startGame() {
	g.sess = engine.NewSession(strings.TrimSpace(g.name))
	g.message = "You have entered the " + g.sess.Room().Name + " room."
	g.scr = screenPlaying
}

func (g *Game) updatePlaying() {
	choice := -1
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i := range g.buttons {
			if g.buttons[i].contains(x, y) {
				choice = i + 1
				break
			}
		}
	}
	if choice < 0 {
		return
	}

	res := g.sess.Resolve(engine.Action(choice))
	g.message = narrate(res)

	if g.sess.Over() {
		g.gameOverMsg = gameOverMessage(g.sess.Outcome())
		if _, err := g.svc.RecordRun(g.ctx, g.sess); err != nil {
			g.recordErr = err
		}
		g.scr = screenGameOver
	}
}

func narrate(res engine.TurnResult) string {
	switch res.Event {
	case engine.EventVictory:
		msg := "Victory! You defeated the " + res.Enemy + " and took the treasure."
		if res.Healed > 0 {
			msg += fmt.Sprintf(" A booster potion restores %d health.", res.Healed)
		}
		return msg
	case engine.EventFled:
		return "Too weak! You fled and took damage."
	case engine.EventBypassed:
		return "You bypassed the enemy, taking minor damage."
	case engine.EventBacktracked:
		return "You backtracked to the " + res.Room.Name + " room."
	case engine.EventBlocked:
		return "No room to backtrack to!"
	case engine.EventQuit:
		return "You have quit the dungeon."
	case engine.EventHesitated:
		return "You hesitate and lose a turn."
	default:
		return ""
	}
}

func gameOverMessage(o engine.Outcome) string {
	switch o {
	case engine.OutcomeEscaped:
		return "Congratulations! You escaped!"
	case engine.OutcomeDefeated:
		return "Game Over! Your health is critical."
	case engine.OutcomeExhausted:
		return "Game Over! You ran out of moves."
	case engine.OutcomeQuit:
		return "You have quit the dungeon."
	default:
		return "Game Over."
	}
}

func clickedIn(r rect) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return r.contains(x, y)
}

func anyInput() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(colBG)
	switch g.scr {
	case screenNameInput:
		g.drawNameInput(dst)
	case screenInstructions:
		g.drawInstructions(dst)
	case screenPlaying:
		g.drawPlaying(dst)
	case screenGameOver:
		g.drawGameOver(dst)
	}
}

func (g *Game) drawNameInput(dst *ebiten.Image) {
	ebitenutil.DebugPrintAt(dst, "DUNGEON ESCAPE", screenW/2-42, 80)
	ebitenutil.DebugPrintAt(dst, "Enter your name and press Enter:", screenW/2-96, 220)
	fillRect(dst, rect{x: screenW/2 - 200, y: 255, w: 400, h: 50}, colPanel, true)
	ebitenutil.DebugPrintAt(dst, g.name+"_", screenW/2-190, 272)
}

func (g *Game) drawInstructions(dst *ebiten.Image) {
	ebitenutil.DebugPrintAt(dst, "GAME INSTRUCTIONS", screenW/2-51, 80)
	y := 150
	for _, line := range strings.Split(engine.Rules(), "\n") {
		ebitenutil.DebugPrintAt(dst, line, 100, y)
		y += 20
	}

	hover := cursorIn(g.startBtn)
	fillRect(dst, g.startBtn, buttonColor(hover), true)
	ebitenutil.DebugPrintAt(dst, "Start Game", int(g.startBtn.x)+70, int(g.startBtn.y)+22)
}

func (g *Game) drawPlaying(dst *ebiten.Image) {
	p := g.sess.Player
	room := g.sess.Room()

	ebitenutil.DebugPrintAt(dst, "DUNGEON ESCAPE", screenW/2-42, 40)
	ebitenutil.DebugPrintAt(dst, "Choose an action:", 20, 120)

	fillRect(dst, rect{x: 20, y: 180, w: screenW - 40, h: 200}, colPanel, true)
	lines := []string{
		"Room: " + room.Name,
		fmt.Sprintf("Health: %d", p.Health),
		fmt.Sprintf("Moves Remaining: %d", p.Moves),
		"Enemy: " + room.Enemy.Name,
		"Enemy Desc: " + room.Enemy.Description,
		fmt.Sprintf("Coins: %d", p.Coins),
		"Inventory: " + lootLine(p.Loot),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, 40, 200+i*25)
	}
	// Health bar colorized by the same thresholds as the console theme.
	barW := float32(p.Health) * 2
	fillRect(dst, rect{x: 150, y: 228, w: barW, h: 10}, healthColor(p.Health), false)

	mx, my := ebiten.CursorPosition()
	for i := range g.buttons {
		b := g.buttons[i]
		fillRect(dst, b, buttonColor(b.contains(mx, my)), true)
		label := actionLabels[i]
		ebitenutil.DebugPrintAt(dst, label, int(b.x)+int(b.w)/2-len(label)*3, int(b.y)+22)
	}

	if g.message != "" {
		ebitenutil.DebugPrintAt(dst, g.message, 20, 520)
	}
}

func (g *Game) drawGameOver(dst *ebiten.Image) {
	p := g.sess.Player

	ebitenutil.DebugPrintAt(dst, g.gameOverMsg, screenW/2-len(g.gameOverMsg)*3, 150)

	lines := []string{
		"Name: " + p.Name,
		fmt.Sprintf("Health: %d", p.Health),
		fmt.Sprintf("Moves Left: %d", p.Moves),
		fmt.Sprintf("Coins Collected: %d", p.Coins),
		fmt.Sprintf("Enemies Defeated: %d", p.EnemiesDefeated),
		"Inventory (Sorted): " + lootLine(p.Loot),
	}
	y := 220
	for _, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, screenW/2-150, y)
		y += 25
	}
	if g.recordErr != nil {
		ebitenutil.DebugPrintAt(dst, "Could not record the run: "+g.recordErr.Error(), screenW/2-150, y)
		y += 25
	}
	ebitenutil.DebugPrintAt(dst, "Click or press any key to exit.", screenW/2-93, y+50)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// trimLastRune deletes one typed character, not one byte; names can
// contain multi-byte runes.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func lootLine(loot []string) string {
	if len(loot) == 0 {
		return "Empty"
	}
	return strings.Join(loot, ", ")
}

func healthColor(health int) color.RGBA {
	switch {
	case health > 50:
		return colHealthGood
	case health > engine.CriticalHealth:
		return colHealthWarn
	default:
		return colHealthCrit
	}
}

func buttonColor(hover bool) color.RGBA {
	if hover {
		return colButtonHover
	}
	return colButton
}

func cursorIn(r rect) bool {
	x, y := ebiten.CursorPosition()
	return r.contains(x, y)
}

func fillRect(dst *ebiten.Image, r rect, fill color.RGBA, outline bool) {
	vector.DrawFilledRect(dst, r.x, r.y, r.w, r.h, fill, false)
	if outline {
		vector.StrokeRect(dst, r.x, r.y, r.w, r.h, 2, colOutline, false)
	}
}

// Run opens the window and plays one game. Closing the window or
// finishing the game-over screen both exit cleanly.
func Run(ctx context.Context, svc *engine.Service) error {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Dungeon Escape")
	return ebiten.RunGame(New(ctx, svc))
}
