package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/kerker/engine/world"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, exits, hit points, gold, godmode and turn count.
func (m Model) renderStatusBar() string {
	w := m.engine.World
	room := w.CurrentRoom()

	dirs := make([]string, 0, len(room.Exits))
	for _, ex := range room.Exits {
		dirs = append(dirs, world.DirectionName(ex.Direction)[:1])
	}
	exitStr := strings.Join(dirs, ",")
	if exitStr == "" {
		exitStr = "-"
	}

	left := fmt.Sprintf(" %s | Exits: %s", room.Name, exitStr)
	right := fmt.Sprintf("HP:%d Gold:%d | T:%d ", w.Player.HP, w.Player.Gold, m.engine.TurnCount)

	god := ""
	if w.Player.Godmode {
		god = " GOD "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(god) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := styleStatusBar.Render(left + strings.Repeat(" ", gap))
	if god != "" {
		bar += styleGodmode.Render(god)
	}
	return bar + styleStatusBar.Render(right)
}
