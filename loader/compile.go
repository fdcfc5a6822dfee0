// Package loader loads game content into Go structs at startup: Lua
// definitions, an optional XML room layout and an optional SQLite catalog.
// The Lua VM is discarded after loading.
package loader

import (
	"fmt"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/types"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    int
	table *lua.LTable
}

// rawTemplate holds a named item or enemy table before compilation.
type rawTemplate struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getList returns a list field given either as a Lua array of strings or
// as a single semicolon-separated string.
func getList(tbl *lua.LTable, key string) []string {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LString:
		return SplitList(string(v))
	case *lua.LTable:
		var out []string
		for i := 1; i <= v.MaxN(); i++ {
			if s, ok := v.RawGetInt(i).(lua.LString); ok {
				if name := strings.TrimSpace(string(s)); name != "" {
					out = append(out, name)
				}
			}
		}
		return out
	}
	return nil
}

// SplitList splits a semicolon-separated name list, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// compile converts collected Lua tables into content definitions.
func compile(coll *collector) (*world.Defs, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game definition found")
	}

	defs := &world.Defs{
		Game:    compileGame(coll.game),
		Items:   make(map[string]types.ItemTemplate, len(coll.items)),
		Enemies: make(map[string]types.EnemyTemplate, len(coll.enemies)),
	}

	for _, raw := range coll.rooms {
		defs.Rooms = append(defs.Rooms, compileRoom(raw))
	}
	for _, raw := range coll.items {
		if _, dup := defs.Items[raw.name]; dup {
			return nil, fmt.Errorf("duplicate item %q", raw.name)
		}
		defs.Items[raw.name] = compileItem(raw)
	}
	for _, raw := range coll.enemies {
		if _, dup := defs.Enemies[raw.name]; dup {
			return nil, fmt.Errorf("duplicate enemy %q", raw.name)
		}
		defs.Enemies[raw.name] = compileEnemy(raw)
	}
	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:       getString(tbl, "title"),
		Author:      getString(tbl, "author"),
		Version:     getString(tbl, "version"),
		Intro:       getString(tbl, "intro"),
		Start:       getInt(tbl, "start"),
		StartWeapon: getString(tbl, "start_weapon"),
		PlayerHP:    getInt(tbl, "player_hp"),
	}
}

func compileRoom(raw rawRoom) types.RoomDef {
	return types.RoomDef{
		ID:          raw.id,
		Name:        getString(raw.table, "name"),
		Description: getString(raw.table, "description"),
		North:       getInt(raw.table, "north"),
		East:        getInt(raw.table, "east"),
		South:       getInt(raw.table, "south"),
		West:        getInt(raw.table, "west"),
		Enemies:     getList(raw.table, "enemies"),
		Hidden:      getList(raw.table, "hidden"),
		Visible:     getList(raw.table, "visible"),
	}
}

func compileItem(raw rawTemplate) types.ItemTemplate {
	return types.ItemTemplate{
		Name:        raw.name,
		Description: getString(raw.table, "description"),
		Kind:        strings.ToLower(getString(raw.table, "kind")),
		Min:         getInt(raw.table, "min"),
		Max:         getInt(raw.table, "max"),
		Protection:  getInt(raw.table, "protection"),
	}
}

func compileEnemy(raw rawTemplate) types.EnemyTemplate {
	return types.EnemyTemplate{
		Name:         raw.name,
		Description:  getString(raw.table, "description"),
		HP:           getInt(raw.table, "hp"),
		AttackChance: getInt(raw.table, "attack_chance"),
		MinDamage:    getInt(raw.table, "min_damage"),
		MaxDamage:    getInt(raw.table, "max_damage"),
		MinItems:     getInt(raw.table, "min_items"),
		MaxItems:     getInt(raw.table, "max_items"),
	}
}

// sortedLuaFiles returns .lua files with game.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
