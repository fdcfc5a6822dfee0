// Package cli provides the plain terminal front-end: line input, output
// printing and a few debugging meta-commands.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/kerker/engine"
	"github.com/nathoo/kerker/engine/parser"
	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/types"
)

// ErrInputClosed is returned by Run when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Prompt is printed before every command.
const Prompt = "\n> "

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Game      types.GameDef
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, game types.GameDef) *CLI {
	return &CLI{
		Engine: eng,
		Game:   game,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run shows the intro and the starting room, then loops: prompt, input,
// step, output, until the game ends.
func (c *CLI) Run() error {
	if c.Game.Title != "" {
		c.printLine(c.Game.Title)
	}
	if c.Game.Intro != "" {
		c.printLine(c.Game.Intro)
		c.printLine("")
	}
	c.printLines(c.Engine.Look())

	scanner := bufio.NewScanner(c.In)
	for c.Engine.Running {
		c.print(Prompt)
		if !scanner.Scan() {
			c.printLine("")
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return ErrInputClosed
		}
		input := strings.TrimSpace(scanner.Text())
		// Comment lines in script files.
		if c.EchoInput && strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			c.handleMeta(input)
			continue
		}

		result := c.Engine.Step(input)
		c.printLines(result.Output)

		if c.Trace {
			c.printTrace(result)
		}
	}
	return nil
}

// handleMeta dispatches debugging meta-commands. They never take a turn.
func (c *CLI) handleMeta(input string) {
	switch strings.Fields(input)[0] {
	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Meta-commands are /state and /trace.", input))
	}
}

func (c *CLI) cmdState() {
	w := c.Engine.World
	c.printSystem(fmt.Sprintf("Turn: %d", c.Engine.TurnCount))
	c.printSystem(fmt.Sprintf("Location: %s (%d)", w.CurrentRoom().Name, w.Current))
	c.printSystem(fmt.Sprintf("HP: %d  Gold: %d", w.Player.HP, w.Player.Gold))
	alive := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			alive++
		}
	}
	c.printSystem(fmt.Sprintf("Enemies alive: %d/%d", alive, len(w.Enemies)))
	if rng, ok := c.Engine.Roller.(*engine.RNG); ok {
		c.printSystem(fmt.Sprintf("Seed: %d  Rolls: %d", rng.Seed(), rng.Position()))
	}
}

func (c *CLI) printTrace(result types.Result) {
	cmd := result.Command
	line := fmt.Sprintf("[trace] %s", parser.Keyword(cmd.Kind))
	if cmd.Target != "" {
		line += fmt.Sprintf(" target=%q", cmd.Target)
	}
	if cmd.Kind == types.CmdGo {
		line += " dir=" + world.DirectionName(cmd.Direction)
	}
	if rng, ok := c.Engine.Roller.(*engine.RNG); ok {
		line += fmt.Sprintf(" rng=%d", rng.Position())
	}
	c.printLine(line)
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
