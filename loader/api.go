package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the content constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = 1, ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room(1) { ... } is curried: Room(id) returns a function that takes a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Item "name" { ... }
	L.SetGlobal("Item", templateConstructor(L, &coll.items))

	// Enemy "name" { ... }
	L.SetGlobal("Enemy", templateConstructor(L, &coll.enemies))
}

// templateConstructor returns a curried constructor that appends named
// tables to dst.
func templateConstructor(L *lua.LState, dst *[]rawTemplate) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			*dst = append(*dst, rawTemplate{name: name, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	})
}
