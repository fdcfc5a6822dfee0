package engine

import (
	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/types"
)

// HelpLines is the fixed list of supported commands printed by Help.
var HelpLines = []string{
	"Help",
	"Look",
	"Search",
	"Go <Direction>",
	"Take <Object>",
	"Put <Object>",
	"See <Enemy>",
	"SeePlayer",
	"Hit <Enemy>",
	"Wear <Object>",
	"Wait",
	"Consume <Object>",
	"Godmode",
	"Quit",
	"Unknown",
}

// Execute runs one command against the world and returns its output.
// quit reports whether the command ends the game loop.
func Execute(cmd types.Command, w *world.World, r world.Roller) (output []string, quit bool) {
	switch cmd.Kind {
	case types.CmdHelp:
		output = append(output, "Commands:")
		for _, line := range HelpLines {
			output = append(output, "  "+line)
		}

	case types.CmdLook:
		output = w.Describe()

	case types.CmdSearch:
		if n := w.CurrentRoom().Reveal(); n > 0 {
			output = append(output, "Your search reveals hidden items.")
		} else {
			output = append(output, "You search but find nothing new.")
		}
		output = append(output, w.EnemiesAttack(r)...)

	case types.CmdGo:
		_, out := w.Move(cmd.Direction)
		output = append(output, out...)
		// Time passes even when the move fails.
		output = append(output, w.EnemiesAttack(r)...)

	case types.CmdTake:
		it, err := w.CurrentRoom().TakeItem(cmd.Target)
		if err != nil {
			output = append(output, err.Error())
			break
		}
		output = append(output, w.Player.Pickup(it)...)

	case types.CmdPut:
		it, err := w.Player.Remove(cmd.Target)
		if err != nil {
			output = append(output, err.Error())
			break
		}
		w.CurrentRoom().PutItem(it)
		output = append(output, "You put down "+it.Name+".")

	case types.CmdSee:
		output = w.RevealEnemyLoot(cmd.Target)

	case types.CmdSeePlayer:
		output = w.Player.Status()

	case types.CmdHit:
		output = append(output, w.PlayerAttackEnemy(cmd.Target, r)...)
		output = append(output, w.EnemiesAttack(r)...)
		w.EnemiesMove(r)

	case types.CmdWear:
		output = w.Player.Equip(cmd.Target)

	case types.CmdWait:
		output = append(output, "You wait.")
		output = append(output, w.EnemiesAttack(r)...)
		w.EnemiesMove(r)

	case types.CmdConsume:
		output = w.Player.Consume(cmd.Target)

	case types.CmdGodmode:
		output = w.Player.ToggleGodmode()

	case types.CmdQuit:
		output = append(output, "End Game")
		quit = true

	case types.CmdUnknown:
		output = append(output, "Not a valid command. Type Help for a list of commands.")
	}
	return output, quit
}
