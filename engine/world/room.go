package world

import (
	"fmt"
	"strings"

	"github.com/nathoo/kerker/engine/resolve"
	"github.com/nathoo/kerker/types"
)

// Exit is a directed edge to another room, identified by ID.
type Exit struct {
	Direction types.Direction
	To        int
}

// Room is a node of the world graph.
type Room struct {
	ID          int
	Name        string
	Description string
	Exits       []Exit
	Visible     []types.Item
	Hidden      []types.Item
}

// NewRoom builds a room from its definition. Zero exit targets are dropped.
func NewRoom(def types.RoomDef, name string) *Room {
	r := &Room{ID: def.ID, Name: name, Description: def.Description}
	for _, e := range []Exit{
		{types.North, def.North},
		{types.East, def.East},
		{types.South, def.South},
		{types.West, def.West},
	} {
		if e.To != 0 {
			r.Exits = append(r.Exits, e)
		}
	}
	return r
}

// ExitTo returns the destination for dir. DirNone never resolves.
func (r *Room) ExitTo(dir types.Direction) (int, bool) {
	if dir == types.DirNone {
		return 0, false
	}
	for _, e := range r.Exits {
		if e.Direction == dir {
			return e.To, true
		}
	}
	return 0, false
}

// Reveal moves all hidden items into the visible collection and returns
// how many were revealed.
func (r *Room) Reveal() int {
	n := len(r.Hidden)
	r.Visible = append(r.Visible, r.Hidden...)
	r.Hidden = nil
	return n
}

// TakeItem removes the first visible item named name.
func (r *Room) TakeItem(name string) (types.Item, error) {
	it, rest, err := resolve.Take(r.Visible, name, "the room")
	if err != nil {
		return types.Item{}, err
	}
	r.Visible = rest
	return it, nil
}

// PutItem adds an item to the visible collection.
func (r *Room) PutItem(items ...types.Item) {
	r.Visible = append(r.Visible, items...)
}

// Show renders the room header, description, visible items and exits.
func (r *Room) Show() []string {
	exits := make([]string, 0, len(r.Exits))
	for _, e := range r.Exits {
		exits = append(exits, DirectionName(e.Direction))
	}
	exitStr := "none"
	if len(exits) > 0 {
		exitStr = strings.Join(exits, ", ")
	}
	return []string{
		r.Name,
		r.Description,
		"Visible items: " + describeAll(r.Visible),
		fmt.Sprintf("Exits: %s", exitStr),
	}
}

// DirectionName returns the command keyword for a direction.
func DirectionName(d types.Direction) string {
	switch d {
	case types.North:
		return "North"
	case types.South:
		return "South"
	case types.East:
		return "East"
	case types.West:
		return "West"
	}
	return "None"
}
