package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/kerker/engine"
	"github.com/nathoo/kerker/engine/parser"
	"github.com/nathoo/kerker/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the game TUI.
type Model struct {
	engine *engine.Engine
	game   types.GameDef

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)
	lastTurn []string  // output of the most recent turn

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string   // echoed player input (empty for intro)
	lines    []string // output lines
	isSystem bool     // true for meta-command output
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, game types.GameDef) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		game:    game,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program. When the game ends inside the TUI,
// the final turn is printed to out after the alternate screen closes.
func Run(eng *engine.Engine, game types.GameDef, out io.Writer) error {
	p := tea.NewProgram(New(eng, game), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && !m.engine.Running {
		for _, line := range m.lastTurn {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

// Init returns the initial command that produces intro text and first look.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		var lines []string

		if m.game.Title != "" {
			title := m.game.Title
			if m.game.Version != "" {
				title += " v" + m.game.Version
			}
			if m.game.Author != "" {
				title += " by " + m.game.Author
			}
			lines = append(lines, title, "")
		}

		if m.game.Intro != "" {
			lines = append(lines, m.game.Intro, "")
		}

		lines = append(lines, m.engine.Look()...)
		return gameOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(m.input.Value()); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line. Empty lines are ignored
// rather than sent to the engine.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)

	if strings.HasPrefix(input, "/") {
		m = m.appendOutput(gameOutputMsg{input: input, lines: m.handleMeta(input), isSystem: true})
		return m, nil
	}

	result := m.engine.Step(input)
	output := result.Output
	m.lastTurn = output
	if m.trace {
		output = append(output, m.formatTrace(result))
	}
	m = m.appendOutput(gameOutputMsg{input: input, lines: output})

	if !m.engine.Running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindItems:
		return styledItems(line)
	case kindExits:
		return styleExits.Render(line)
	case kindEnemy:
		return styleEnemy.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindDeath:
		return styleDeath.Render(line)
	default:
		return styleRoomDesc.Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		wLen := len(word)
		switch {
		case i == 0:
			lineLen = wLen
		case lineLen+1+wLen > width:
			result.WriteString("\n")
			lineLen = wLen
		default:
			result.WriteString(" ")
			lineLen += 1 + wLen
		}
		result.WriteString(word)
	}
	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. They never take a turn.
func (m *Model) handleMeta(input string) []string {
	switch strings.Fields(input)[0] {
	case "/help":
		return m.cmdHelp()

	case "/state":
		return m.cmdState()

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}
		}
		return []string{"Trace output disabled."}

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input)}
	}
}

func (m *Model) cmdHelp() []string {
	out := []string{
		"System:",
		"  /help   Show this help",
		"  /state  Debug: dump current state",
		"  /trace  Toggle debug trace output",
		"",
		"Game commands (type Help in game for the same list):",
	}
	for _, line := range engine.HelpLines {
		out = append(out, "  "+line)
	}
	return append(out, "", "Navigation: PgUp/PgDn to scroll, Up/Down for command history")
}

func (m *Model) cmdState() []string {
	w := m.engine.World
	alive := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			alive++
		}
	}
	out := []string{
		fmt.Sprintf("Turn: %d", m.engine.TurnCount),
		fmt.Sprintf("Location: %s (%d)", w.CurrentRoom().Name, w.Current),
		fmt.Sprintf("HP: %d  Gold: %d", w.Player.HP, w.Player.Gold),
		fmt.Sprintf("Enemies alive: %d/%d", alive, len(w.Enemies)),
	}
	if rng, ok := m.engine.Roller.(*engine.RNG); ok {
		out = append(out, fmt.Sprintf("Seed: %d  Rolls: %d", rng.Seed(), rng.Position()))
	}
	return out
}

func (m *Model) formatTrace(result types.Result) string {
	line := "[trace] " + parser.Keyword(result.Command.Kind)
	if result.Command.Target != "" {
		line += fmt.Sprintf(" target=%q", result.Command.Target)
	}
	if rng, ok := m.engine.Roller.(*engine.RNG); ok {
		line += fmt.Sprintf(" rng=%d", rng.Position())
	}
	return line
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
