package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/logging"
)

// ErrNoContent is returned when a content directory holds no .lua files.
var ErrNoContent = errors.New("no .lua content files")

// collector accumulates Lua definitions during file execution.
type collector struct {
	game    *lua.LTable
	rooms   []rawRoom
	items   []rawTemplate
	enemies []rawTemplate
}

// Options select the optional content sources layered over the Lua
// directory.
type Options struct {
	Layout  string // XML layout file; replaces the Lua rooms
	Catalog string // SQLite catalog; overrides Lua templates by name
}

// Load reads all .lua files from dir, compiles them into content
// definitions and validates them. The Lua VM is discarded after loading.
func Load(dir string) (*world.Defs, error) {
	return LoadWith(context.Background(), dir, Options{})
}

// LoadWith loads dir like Load, then applies the layout and catalog named
// in opts before validating the merged result.
func LoadWith(ctx context.Context, dir string, opts Options) (*world.Defs, error) {
	defs, err := loadLua(dir)
	if err != nil {
		return nil, err
	}

	if opts.Layout != "" {
		rooms, err := LoadLayout(opts.Layout)
		if err != nil {
			return nil, err
		}
		defs.Rooms = rooms
	}

	if opts.Catalog != "" {
		cat, err := OpenCatalog(ctx, opts.Catalog)
		if err != nil {
			logging.Log.WithError(err).WithField("catalog", opts.Catalog).
				Error("catalog unavailable, continuing with the Lua catalog")
		} else {
			cat.MergeInto(defs)
		}
	}

	if err := validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func loadLua(dir string) (*world.Defs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoContent)
	}

	// game.lua first, rest alphabetical.
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}
	return defs, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the content files.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// The game owns the random source.
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
		tbl.RawSetString("random", lua.LNil)
	}
}
