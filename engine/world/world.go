// Package world holds the mutable game world: the room graph, the enemy
// roster and the player, linked by room ID rather than by reference.
package world

import (
	"fmt"

	"github.com/nathoo/kerker/engine/resolve"
	"github.com/nathoo/kerker/types"
)

// World owns every room, enemy and the player. Current is the ID of the
// room the player stands in.
type World struct {
	Rooms   map[int]*Room
	Order   []int // room IDs in content order
	Enemies []*Enemy
	Player  *Player
	Current int
}

// New assembles a world. Rooms keep the order they are given in; the player
// starts in start, or in the first room when start is 0.
func New(rooms []*Room, enemies []*Enemy, player *Player, start int) (*World, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("world has no rooms")
	}
	w := &World{
		Rooms:   make(map[int]*Room, len(rooms)),
		Enemies: enemies,
		Player:  player,
	}
	for _, r := range rooms {
		if _, dup := w.Rooms[r.ID]; dup {
			return nil, fmt.Errorf("duplicate room id %d", r.ID)
		}
		w.Rooms[r.ID] = r
		w.Order = append(w.Order, r.ID)
	}
	if start == 0 {
		start = rooms[0].ID
	}
	if _, ok := w.Rooms[start]; !ok {
		return nil, fmt.Errorf("start room %d not found", start)
	}
	w.Current = start
	return w, nil
}

// CurrentRoom returns the room the player is in.
func (w *World) CurrentRoom() *Room {
	return w.Rooms[w.Current]
}

// EnemiesHere returns the enemies located in the player's room, dead or alive.
func (w *World) EnemiesHere() []*Enemy {
	var here []*Enemy
	for _, e := range w.Enemies {
		if e.Room == w.Current {
			here = append(here, e)
		}
	}
	return here
}

// Describe renders the current room and the enemies in it.
func (w *World) Describe() []string {
	out := w.CurrentRoom().Show()
	for _, e := range w.EnemiesHere() {
		out = append(out, "Enemy: "+e.Show())
	}
	return out
}

// Move sends the player through the exit in dir. It reports whether the
// player moved.
func (w *World) Move(dir types.Direction) (bool, []string) {
	to, ok := w.CurrentRoom().ExitTo(dir)
	if !ok {
		return false, []string{"You can't go that way."}
	}
	if _, exists := w.Rooms[to]; !exists {
		return false, []string{"You can't go that way."}
	}
	w.Current = to
	return true, []string{fmt.Sprintf("Going %s to %s.", DirectionName(dir), w.Rooms[to].Name)}
}

// EnemiesAttack runs a retaliation pass: every enemy in the player's room
// attacks once.
func (w *World) EnemiesAttack(r Roller) []string {
	var out []string
	for _, e := range w.Enemies {
		if e.Room != w.Current || !e.Alive() {
			continue
		}
		dmg, hit := e.Attack(r)
		if !hit {
			out = append(out, fmt.Sprintf("%s attacks you and misses.", e.Name))
			continue
		}
		out = append(out, fmt.Sprintf("%s hits you for %d.", e.Name, dmg))
		out = append(out, w.Player.TakeDamage(dmg)...)
	}
	return out
}

// EnemiesMove runs a movement pass: every living enemy moves through an exit
// of its room chosen uniformly at random. Rooms without exits hold the enemy.
func (w *World) EnemiesMove(r Roller) {
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		room, ok := w.Rooms[e.Room]
		if !ok || len(room.Exits) == 0 {
			continue
		}
		e.Room = room.Exits[pick(r, len(room.Exits))].To
	}
}

// findEnemy returns the first enemy in the player's room named name that
// satisfies keep.
func (w *World) findEnemy(name string, keep func(*Enemy) bool) (*Enemy, error) {
	for _, e := range w.Enemies {
		if e.Room == w.Current && e.Name == name && keep(e) {
			return e, nil
		}
	}
	return nil, &resolve.NotFoundError{What: "enemy", Where: "this room", Name: name}
}

// PlayerAttackEnemy resolves the player's attack on a live enemy named name
// in the current room.
func (w *World) PlayerAttackEnemy(name string, r Roller) []string {
	target, err := w.findEnemy(name, (*Enemy).Alive)
	if err != nil {
		return []string{err.Error()}
	}
	dmg, hit := PlayerAttack(w.Player, r)
	if !hit {
		return []string{fmt.Sprintf("You swing at %s and miss.", target.Name)}
	}
	return target.TakeDamage(dmg)
}

// RevealEnemyLoot moves an enemy's hidden items into the current room,
// whether the enemy is alive or dead.
func (w *World) RevealEnemyLoot(name string) []string {
	target, err := w.findEnemy(name, func(*Enemy) bool { return true })
	if err != nil {
		return []string{err.Error()}
	}
	loot := target.DropLoot()
	if len(loot) == 0 {
		return []string{fmt.Sprintf("%s carries nothing.", target.Name)}
	}
	w.CurrentRoom().PutItem(loot...)
	return []string{fmt.Sprintf("%s drops: %s.", target.Name, describeAll(loot))}
}
