// Package engine provides the Step() orchestrator that wires together
// parsing, command dispatch and the end-of-turn checks into a single turn.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/nathoo/kerker/engine/parser"
	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/logging"
	"github.com/nathoo/kerker/types"
)

// Engine holds the world and drives it one command at a time. The engine
// has exclusive ownership of the world; it is not safe for concurrent use.
type Engine struct {
	World     *world.World
	Roller    world.Roller
	Running   bool
	TurnCount int
}

// New creates an engine over an already built world.
func New(w *world.World, r world.Roller) *Engine {
	return &Engine{World: w, Roller: r, Running: true}
}

// Step processes one line of player input and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// 0. Game over, nothing more to do.
	if !e.Running {
		result.Output = append(result.Output, "The game is over.")
		return result
	}

	// 1. Parse input.
	cmd := parser.Parse(input)
	result.Command = cmd
	logging.Log.WithFields(logrus.Fields{
		"command": parser.Keyword(cmd.Kind),
		"target":  cmd.Target,
		"turn":    e.TurnCount,
	}).Debug("dispatching command")

	// 2. Execute against the world.
	output, quit := Execute(cmd, e.World, e.Roller)
	result.Output = append(result.Output, output...)

	// 3. Terminal conditions.
	if quit {
		e.Running = false
	}
	if e.World.Player.HP <= 0 {
		e.Running = false
		result.Output = append(result.Output, "You have died. Game over.")
	}

	// 4. Increment turn count.
	e.TurnCount++

	return result
}

// Look describes the player's surroundings without taking a turn.
func (e *Engine) Look() []string {
	return e.World.Describe()
}
