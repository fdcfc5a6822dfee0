// Package parser converts command lines into Commands.
// Intentionally dumb: the first word is an exact, case-sensitive keyword.
package parser

import (
	"strings"

	"github.com/nathoo/kerker/types"
)

// MissingTarget is the target given to a target-bearing command typed
// without one. No item or enemy carries this name, so lookups fail.
const MissingTarget = "<nothing>"

var keywords = map[string]types.CommandKind{
	"Help":      types.CmdHelp,
	"Look":      types.CmdLook,
	"Search":    types.CmdSearch,
	"Go":        types.CmdGo,
	"Take":      types.CmdTake,
	"Put":       types.CmdPut,
	"See":       types.CmdSee,
	"SeePlayer": types.CmdSeePlayer,
	"Hit":       types.CmdHit,
	"Wear":      types.CmdWear,
	"Wait":      types.CmdWait,
	"Consume":   types.CmdConsume,
	"Godmode":   types.CmdGodmode,
	"Quit":      types.CmdQuit,
}

var directions = map[string]types.Direction{
	"North": types.North,
	"South": types.South,
	"East":  types.East,
	"West":  types.West,
}

// targeted lists the commands whose remaining words form a target name.
var targeted = map[types.CommandKind]bool{
	types.CmdTake:    true,
	types.CmdPut:     true,
	types.CmdSee:     true,
	types.CmdHit:     true,
	types.CmdWear:    true,
	types.CmdConsume: true,
}

// Parse converts a raw command line into a Command. Unrecognized or empty
// input yields CmdUnknown.
func Parse(input string) types.Command {
	words := strings.Fields(input)
	if len(words) == 0 {
		return types.Command{Kind: types.CmdUnknown}
	}

	kind, ok := keywords[words[0]]
	if !ok {
		return types.Command{Kind: types.CmdUnknown}
	}

	cmd := types.Command{Kind: kind}
	switch {
	case kind == types.CmdGo:
		if len(words) > 1 {
			cmd.Direction = ParseDirection(words[1])
		}
	case targeted[kind]:
		if len(words) < 2 {
			cmd.Target = MissingTarget
		} else {
			cmd.Target = strings.Join(words[1:], " ")
		}
	}
	return cmd
}

// ParseDirection maps a cardinal keyword to a Direction; anything else is
// DirNone.
func ParseDirection(word string) types.Direction {
	return directions[word]
}

// Keyword returns the input keyword for a command kind, or "Unknown".
func Keyword(kind types.CommandKind) string {
	for k, v := range keywords {
		if v == kind {
			return k
		}
	}
	return "Unknown"
}
