package world

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/kerker/logging"
	"github.com/nathoo/kerker/types"
)

// Defs holds the immutable content definitions the world is built from.
type Defs struct {
	Game    types.GameDef
	Rooms   []types.RoomDef
	Items   map[string]types.ItemTemplate
	Enemies map[string]types.EnemyTemplate
}

// PlayerOptions override the player settings from the content source.
type PlayerOptions struct {
	Name string
	HP   int
}

// Build constructs the world from content definitions. References to
// missing catalog entries are logged and skipped; the world is built with
// whatever remains.
func Build(defs *Defs, opts PlayerOptions, r Roller) (*World, error) {
	b := &builder{defs: defs, names: NewNameGenerator(), r: r, log: logging.Log}

	rooms := make([]*Room, 0, len(defs.Rooms))
	var enemies []*Enemy
	for _, rd := range defs.Rooms {
		room := NewRoom(rd, b.names.Generate(rd.Name))
		room.Visible = b.items(rd.Visible, rd.ID)
		room.Hidden = b.items(rd.Hidden, rd.ID)
		rooms = append(rooms, room)
		for _, key := range rd.Enemies {
			if e := b.enemy(key, rd.ID); e != nil {
				enemies = append(enemies, e)
			}
		}
	}

	hp := opts.HP
	if hp == 0 {
		hp = defs.Game.PlayerHP
	}
	player := NewPlayer(opts.Name, hp)
	if defs.Game.StartWeapon != "" {
		if it, ok := b.item(defs.Game.StartWeapon, 0); ok {
			if it.Kind == types.Weapon {
				player.Weapon = &it
			} else {
				player.Backpack = append(player.Backpack, it)
			}
		}
	}

	w, err := New(rooms, enemies, player, defs.Game.Start)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	return w, nil
}

type builder struct {
	defs  *Defs
	names *NameGenerator
	r     Roller
	log   *logrus.Logger
}

func (b *builder) items(keys []string, room int) []types.Item {
	var out []types.Item
	for _, key := range keys {
		if it, ok := b.item(key, room); ok {
			out = append(out, it)
		}
	}
	return out
}

func (b *builder) item(key string, room int) (types.Item, bool) {
	tpl, ok := b.defs.Items[key]
	if !ok {
		b.log.WithFields(logrus.Fields{"item": key, "room": room}).Warn("item not found in catalog")
		return types.Item{}, false
	}
	it, err := NewItem(tpl, b.names.Generate(tpl.Name), b.r)
	if err != nil {
		b.log.WithField("room", room).WithError(err).Warn("skipping item")
		return types.Item{}, false
	}
	return it, true
}

func (b *builder) enemy(key string, room int) *Enemy {
	tpl, ok := b.defs.Enemies[key]
	if !ok {
		b.log.WithFields(logrus.Fields{"enemy": key, "room": room}).Warn("enemy not found in catalog")
		return nil
	}
	e := &Enemy{
		Room:        room,
		Name:        b.names.Generate(tpl.Name),
		Description: tpl.Description,
		HP:          tpl.HP,
		MinDamage:   tpl.MinDamage,
		MaxDamage:   tpl.MaxDamage,
	}
	keys := b.catalogKeys()
	if len(keys) > 0 {
		for n := between(b.r, tpl.MinItems, tpl.MaxItems); n > 0; n-- {
			if it, ok := b.item(keys[pick(b.r, len(keys))], room); ok {
				e.Hidden = append(e.Hidden, it)
			}
		}
	}
	return e
}

// catalogKeys returns the item catalog keys in a stable order so that a
// seeded roller always builds the same world.
func (b *builder) catalogKeys() []string {
	keys := make([]string, 0, len(b.defs.Items))
	for k := range b.defs.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
