package world

import "github.com/nathoo/kerker/types"

// scripted is a Roller that replays fixed values. Values are clamped to
// [1, sides]; once exhausted it returns 1.
type scripted struct {
	rolls []int
	calls int
}

func script(rolls ...int) *scripted {
	return &scripted{rolls: rolls}
}

func (s *scripted) Roll(sides int) int {
	s.calls++
	if len(s.rolls) == 0 {
		return 1
	}
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	if v > sides {
		v = sides
	}
	if v < 1 {
		v = 1
	}
	return v
}

func weapon(name string, lo, hi int) types.Item {
	return types.Item{Name: name, Kind: types.Weapon, MinDamage: lo, MaxDamage: hi}
}

func armor(name string, def int) types.Item {
	return types.Item{Name: name, Kind: types.Armor, Defense: def}
}

func potion(name string, heal int) types.Item {
	return types.Item{Name: name, Kind: types.Consumable, Heal: heal}
}

func coin(name string, value int) types.Item {
	return types.Item{Name: name, Kind: types.Coin, Value: value}
}
