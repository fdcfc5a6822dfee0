package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/kerker/engine"
	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"Visible items: Gold (3 gold), Sword (weapon 2-5)", kindItems},
		{"Exits: North, South", kindExits},
		{"Enemy: Rat (3 HP): Hungry.", kindEnemy},
		{"[Trace output enabled.]", kindSystem},
		{"[trace] Go rng=3", kindTrace},
		{"No item named 'Shield' in the room.", kindError},
		{"You can't go that way.", kindError},
		{"Not a valid command. Type Help for a list of commands.", kindError},
		{"Rat hits you for 2.", kindCombat},
		{"Rat attacks you and misses.", kindCombat},
		{"You swing at Rat and miss.", kindCombat},
		{"Rat took 4 damage and died.", kindCombat},
		{"You have died. Game over.", kindDeath},
		{"A grand hall with stone walls.", kindRoomDesc},
		{"", kindRoomDesc},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"The great hall stretches before you with its vaulted ceiling.", 30,
			"The great hall stretches\nbefore you with its vaulted\nceiling."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PrevStopsAtOldest(t *testing.T) {
	h := NewHistory(5)
	h.Push("Look")
	h.Push("Go North")
	h.Push("Take Key")

	for _, want := range []string{"Take Key", "Go North", "Look", "Look"} {
		got, ok := h.Prev("")
		if !ok || got != want {
			t.Errorf("Prev = %q (ok=%v), want %q", got, ok, want)
		}
	}
}

func TestHistory_NextRestoresDraft(t *testing.T) {
	h := NewHistory(5)
	h.Push("Look")
	h.Push("Go North")

	h.Prev("Hit R") // "Go North", draft saved
	h.Prev("")      // "Look"

	next, ok := h.Next()
	if !ok || next != "Go North" {
		t.Errorf("Next = %q (ok=%v), want %q", next, ok, "Go North")
	}
	next, ok = h.Next()
	if !ok || next != "Hit R" {
		t.Errorf("Next past newest = %q (ok=%v), want the draft", next, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false when not browsing")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(""); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_MaxSizeAndDuplicates(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("a")
	if h.Len() != 1 {
		t.Errorf("consecutive duplicate stored: len=%d", h.Len())
	}
	h.Push("b")
	h.Push("c") // "a" evicted

	if h.Len() != 2 {
		t.Errorf("len = %d, want 2", h.Len())
	}
	h.Prev("")
	if got, _ := h.Prev(""); got != "b" {
		t.Errorf("oldest = %q, want b", got)
	}
}

func TestHistory_PushEndsBrowsing(t *testing.T) {
	h := NewHistory(5)
	h.Push("Look")
	h.Push("Wait")
	h.Prev("")
	h.Prev("")
	h.Push("Search")

	if got, _ := h.Prev(""); got != "Search" {
		t.Errorf("Prev after Push = %q, want Search", got)
	}
}

// testModel returns a model over a two-room world with a rat in the hall.
func testModel(t *testing.T) Model {
	t.Helper()
	hall := world.NewRoom(types.RoomDef{ID: 1, Description: "A grand hall.", North: 2}, "Hall")
	garden := world.NewRoom(types.RoomDef{ID: 2, Description: "A peaceful garden.", South: 1}, "Garden")
	rat := &world.Enemy{Room: 1, Name: "Rat", HP: 3, MinDamage: 1, MaxDamage: 1}
	w, err := world.New([]*world.Room{hall, garden}, []*world.Enemy{rat}, world.NewPlayer("Tester", 10), 1)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return New(engine.New(w, engine.NewRNG(7)), types.GameDef{Title: "Test Game", Intro: "Welcome."})
}

func resize(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func submit(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(input)
	next, cmd := m.handleEnter()
	return next.(Model), cmd
}

func TestModel_InitialOutput(t *testing.T) {
	m := resize(t, testModel(t))
	msg := m.initialOutput()()
	out, ok := msg.(gameOutputMsg)
	if !ok {
		t.Fatalf("initial output is %T", msg)
	}
	joined := strings.Join(out.lines, "\n")
	for _, want := range []string{"Test Game", "Welcome.", "A grand hall.", "Enemy: Rat"} {
		if !strings.Contains(joined, want) {
			t.Errorf("initial output missing %q:\n%s", want, joined)
		}
	}
}

func TestModel_StepAndStatusBar(t *testing.T) {
	m := resize(t, testModel(t))
	m, cmd := submit(t, m, "Godmode")
	if cmd != nil {
		t.Error("a normal turn should not quit")
	}
	if m.engine.TurnCount != 1 {
		t.Errorf("turn count = %d", m.engine.TurnCount)
	}

	bar := m.renderStatusBar()
	for _, want := range []string{"Hall", "Exits: N", "HP:10", "Gold:0", "GOD", "T:1"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q: %q", want, bar)
		}
	}
	if !strings.Contains(m.View(), "> ") {
		t.Error("expected input prompt in view")
	}
}

func TestModel_EmptyInputIgnored(t *testing.T) {
	m := resize(t, testModel(t))
	m, _ = submit(t, m, "   ")
	if m.engine.TurnCount != 0 || m.history.Len() != 0 {
		t.Errorf("empty input took a turn or was recorded")
	}
}

func TestModel_QuitEndsProgram(t *testing.T) {
	m := resize(t, testModel(t))
	m, cmd := submit(t, m, "Quit")

	if !m.quitting || cmd == nil {
		t.Fatal("expected the program to quit")
	}
	if len(m.lastTurn) == 0 || m.lastTurn[0] != "End Game" {
		t.Errorf("last turn = %v", m.lastTurn)
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestHandleMeta(t *testing.T) {
	m := testModel(t)

	help := strings.Join(m.handleMeta("/help"), "\n")
	for _, want := range []string{"/state", "/trace", "Hit <Enemy>", "Godmode"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q", want)
		}
	}

	state := strings.Join(m.handleMeta("/state"), "\n")
	if !strings.Contains(state, "Location: Hall (1)") || !strings.Contains(state, "Enemies alive: 1/1") {
		t.Errorf("state output:\n%s", state)
	}

	if out := m.handleMeta("/trace"); !m.trace || !strings.Contains(out[0], "enabled") {
		t.Errorf("trace on: %v", out)
	}
	if out := m.handleMeta("/trace"); m.trace || !strings.Contains(out[0], "disabled") {
		t.Errorf("trace off: %v", out)
	}

	if out := m.handleMeta("/bogus"); !strings.Contains(out[0], "Unknown command") {
		t.Errorf("unknown: %v", out)
	}
}

func TestModel_TraceLine(t *testing.T) {
	m := resize(t, testModel(t))
	m.trace = true
	m, _ = submit(t, m, "See Rat")

	last := m.rawLines[len(m.rawLines)-2].text
	if !strings.HasPrefix(last, `[trace] See target="Rat" rng=`) {
		t.Errorf("trace line = %q", last)
	}
}
