package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleGodmode = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleItems = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleEnemy = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleDeath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindRoomDesc lineKind = iota
	kindItems
	kindExits
	kindEnemy
	kindCombat
	kindSystem
	kindError
	kindTrace
	kindDeath
)

const itemsPrefix = "Visible items: "

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "You have died"):
		return kindDeath
	case strings.HasPrefix(line, itemsPrefix):
		return kindItems
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "Enemy:"):
		return kindEnemy
	case strings.HasPrefix(line, "No "),
		strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "Not a valid command"):
		return kindError
	case isCombatLine(line):
		return kindCombat
	default:
		return kindRoomDesc
	}
}

// isCombatLine reports whether a line narrates an attack or its outcome.
func isCombatLine(line string) bool {
	for _, marker := range []string{
		" hits you for ", " attacks you and misses", "You swing at ",
		" damage", "Godmode: you ignore",
	} {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// styledItems renders "Visible items: a, b" with the item list bold.
func styledItems(line string) string {
	if !strings.HasPrefix(line, itemsPrefix) {
		return styleRoomDesc.Render(line)
	}
	return styleRoomDesc.Render(itemsPrefix) + styleItems.Render(line[len(itemsPrefix):])
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
