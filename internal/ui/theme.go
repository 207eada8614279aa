package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dungeon Escape theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconDungeon = "🏰"
	IconSword   = "⚔️"
	IconShield  = "🛡️"
	IconDoor    = "🚪"
	IconHeart   = "❤️"
	IconCoin    = "💰"
	IconSkull   = "💀"
	IconTrophy  = "🏆"
	IconRun     = "🏃"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconLoot    = "🎒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// HealthText colorizes a health value: above 50 is fine, above 20 is a
// warning, 20 and below is critical.
func HealthText(health int) string {
	return healthStyle(health).Render(fmt.Sprintf("%d", health))
}

func healthStyle(health int) lipgloss.Style {
	switch {
	case health > 50:
		return Good
	case health > 20:
		return Warn
	default:
		return Bad
	}
}

func OutcomeText(outcome string) string {
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case "escaped":
		return Good.Render("escaped")
	case "defeated":
		return Bad.Render("defeated")
	case "exhausted":
		return Warn.Render("exhausted")
	case "quit":
		return Muted.Render("quit")
	default:
		return Muted.Render(outcome)
	}
}

func OutcomeIcon(outcome string) string {
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case "escaped":
		return IconTrophy
	case "defeated":
		return IconSkull
	case "exhausted":
		return IconRun
	default:
		return IconDoor
	}
}
