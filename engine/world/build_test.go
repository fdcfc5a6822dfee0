package world

import (
	"testing"

	"github.com/nathoo/kerker/types"
)

func buildDefs() *Defs {
	return &Defs{
		Game: types.GameDef{StartWeapon: "Dagger", PlayerHP: 12},
		Rooms: []types.RoomDef{
			{ID: 1, Name: "Cell", Description: "Cold.", North: 2, Visible: []string{"Gold", "Dagger"}, Hidden: []string{"Potion", "Missing"}},
			{ID: 2, Name: "Cell", Description: "Colder.", South: 1, Enemies: []string{"Goblin", "Goblin", "Dragon"}},
		},
		Items: map[string]types.ItemTemplate{
			"Gold":   {Name: "Gold", Kind: "coin", Min: 3, Max: 3},
			"Dagger": {Name: "Dagger", Kind: "weapon", Min: 1, Max: 4},
			"Potion": {Name: "Potion", Kind: "consumable", Min: 5, Max: 5},
			"Stone":  {Name: "Stone", Kind: "pebble"},
		},
		Enemies: map[string]types.EnemyTemplate{
			"Goblin": {Name: "Goblin", HP: 6, MinDamage: 1, MaxDamage: 3, MinItems: 1, MaxItems: 1},
		},
	}
}

func TestBuild(t *testing.T) {
	w, err := Build(buildDefs(), PlayerOptions{Name: "Ada"}, script())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if w.Current != 1 {
		t.Errorf("start = %d, want 1", w.Current)
	}
	if w.Rooms[1].Name != "Cell" || w.Rooms[2].Name != "Cell2" {
		t.Errorf("room names = %q, %q", w.Rooms[1].Name, w.Rooms[2].Name)
	}

	// "Missing" is not in the catalog and is skipped.
	if len(w.Rooms[1].Visible) != 2 || len(w.Rooms[1].Hidden) != 1 {
		t.Errorf("visible=%d hidden=%d", len(w.Rooms[1].Visible), len(w.Rooms[1].Hidden))
	}

	// "Dragon" is not in the catalog; two goblins get distinct names.
	if len(w.Enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(w.Enemies))
	}
	if w.Enemies[0].Name != "Goblin" || w.Enemies[1].Name != "Goblin2" {
		t.Errorf("enemy names = %q, %q", w.Enemies[0].Name, w.Enemies[1].Name)
	}
	for _, e := range w.Enemies {
		if e.Room != 2 || e.HP != 6 {
			t.Errorf("enemy %s: room=%d hp=%d", e.Name, e.Room, e.HP)
		}
		// The scripted roller picks the first catalog key ("Dagger") and
		// the pebble template never appears because it sorts last.
		if len(e.Hidden) != 1 {
			t.Errorf("enemy %s carries %d items, want 1", e.Name, len(e.Hidden))
		}
	}

	p := w.Player
	if p.Name != "Ada" || p.HP != 12 {
		t.Errorf("player = %+v", p)
	}
	if p.Weapon == nil || p.Weapon.Kind != types.Weapon {
		t.Fatalf("start weapon = %+v", p.Weapon)
	}
}

func TestBuild_PlayerHPOverride(t *testing.T) {
	w, err := Build(buildDefs(), PlayerOptions{Name: "Ada", HP: 30}, script())
	if err != nil {
		t.Fatal(err)
	}
	if w.Player.HP != 30 {
		t.Errorf("hp = %d, want 30", w.Player.HP)
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	defs := buildDefs()
	defs.Items = nil
	defs.Enemies = nil
	w, err := Build(defs, PlayerOptions{Name: "Ada"}, script())
	if err != nil {
		t.Fatalf("Build with empty catalog: %v", err)
	}
	if len(w.Enemies) != 0 || len(w.Rooms[1].Visible) != 0 || w.Player.Weapon != nil {
		t.Errorf("expected a bare world, got enemies=%d visible=%d", len(w.Enemies), len(w.Rooms[1].Visible))
	}
}

func TestBuild_NoRooms(t *testing.T) {
	if _, err := Build(&Defs{}, PlayerOptions{}, script()); err == nil {
		t.Error("expected error for content without rooms")
	}
}
