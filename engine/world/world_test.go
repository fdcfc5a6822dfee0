package world

import (
	"strings"
	"testing"

	"github.com/nathoo/kerker/types"
)

// testWorld builds three rooms in a row: 1 <-> 2 <-> 3, with room 3 a dead
// end pointing back west. The player starts in room 1.
func testWorld(t *testing.T, enemies ...*Enemy) *World {
	t.Helper()
	rooms := []*Room{
		NewRoom(types.RoomDef{ID: 1, Description: "Gate.", North: 2}, "Gate"),
		NewRoom(types.RoomDef{ID: 2, Description: "Hall.", South: 1, East: 3}, "Hall"),
		NewRoom(types.RoomDef{ID: 3, Description: "Vault.", West: 2}, "Vault"),
	}
	w, err := New(rooms, enemies, NewPlayer("P", 10), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(nil, nil, NewPlayer("P", 1), 0); err == nil {
		t.Error("expected error for empty world")
	}
	dup := []*Room{{ID: 1}, {ID: 1}}
	if _, err := New(dup, nil, NewPlayer("P", 1), 0); err == nil {
		t.Error("expected error for duplicate room id")
	}
	if _, err := New([]*Room{{ID: 1}}, nil, NewPlayer("P", 1), 9); err == nil {
		t.Error("expected error for missing start room")
	}
}

func TestWorld_Move(t *testing.T) {
	w := testWorld(t)

	moved, _ := w.Move(types.North)
	if !moved || w.Current != 2 {
		t.Fatalf("moved=%v current=%d", moved, w.Current)
	}
	moved, out := w.Move(types.DirNone)
	if moved || w.Current != 2 {
		t.Errorf("invalid direction moved the player to %d", w.Current)
	}
	if !strings.Contains(out[0], "can't go") {
		t.Errorf("message = %q", out[0])
	}
}

func TestWorld_EnemiesAttack_AllCoLocated(t *testing.T) {
	a := &Enemy{Room: 1, Name: "Rat", HP: 2, MinDamage: 1, MaxDamage: 1}
	b := &Enemy{Room: 1, Name: "Bat", HP: 2, MinDamage: 2, MaxDamage: 2}
	far := &Enemy{Room: 3, Name: "Wolf", HP: 2, MinDamage: 5, MaxDamage: 5}
	w := testWorld(t, a, b, far)

	// Each co-located enemy rolls 1 on its hit check and hits.
	out := w.EnemiesAttack(script(1, 1, 1))
	if w.Player.HP != 7 {
		t.Errorf("hp = %d, want 7 (1 + 2 damage)", w.Player.HP)
	}
	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, "Rat") || !strings.Contains(joined, "Bat") || strings.Contains(joined, "Wolf") {
		t.Errorf("unexpected attackers:\n%s", joined)
	}
}

func TestWorld_EnemiesAttack_Godmode(t *testing.T) {
	e := &Enemy{Room: 1, Name: "Troll", HP: 20, MinDamage: 9, MaxDamage: 9}
	w := testWorld(t, e)
	w.Player.Godmode = true
	for i := 0; i < 5; i++ {
		w.EnemiesAttack(script(1))
	}
	if w.Player.HP != 10 {
		t.Errorf("godmode hp = %d, want 10", w.Player.HP)
	}
}

func TestWorld_EnemiesMove(t *testing.T) {
	alive := &Enemy{Room: 2, Name: "Rat", HP: 2}
	dead := &Enemy{Room: 2, Name: "Bat", HP: 0}
	w := testWorld(t, alive, dead)

	// Room 2 exits in order: East(3), South(1). Roll 1 picks the first.
	w.EnemiesMove(script(1))
	if alive.Room != 3 {
		t.Errorf("live enemy in %d, want 3", alive.Room)
	}
	if dead.Room != 2 {
		t.Errorf("dead enemy moved to %d", dead.Room)
	}

	// Room 3 has a single exit back west.
	w.EnemiesMove(script())
	if alive.Room != 2 {
		t.Errorf("live enemy in %d, want 2", alive.Room)
	}
}

func TestWorld_EnemiesMove_Uniform(t *testing.T) {
	e := &Enemy{Room: 2, Name: "Rat", HP: 2}
	w := testWorld(t, e)
	counts := map[int]int{}
	rng := &cycle{}
	for i := 0; i < 100; i++ {
		e.Room = 2
		w.EnemiesMove(rng)
		counts[e.Room]++
	}
	if counts[1] != 50 || counts[3] != 50 {
		t.Errorf("distribution = %v, want 50/50", counts)
	}
}

// cycle rolls 1, 2, ..., sides, 1, 2, ...
type cycle struct{ n int }

func (c *cycle) Roll(sides int) int {
	c.n++
	return (c.n-1)%sides + 1
}

func TestWorld_PlayerAttackEnemy_Godmode(t *testing.T) {
	e := &Enemy{Room: 1, Name: "Goblin", HP: 15}
	w := testWorld(t, e)
	sword := weapon("Sword", 10, 10)
	w.Player.Weapon = &sword
	w.Player.Godmode = true

	out := w.PlayerAttackEnemy("Goblin", script())
	if e.HP != 5 || !strings.Contains(out[0], "took 10 damage, 5 HP remaining") {
		t.Fatalf("hp=%d out=%q", e.HP, out)
	}
	out = w.PlayerAttackEnemy("Goblin", script())
	if e.HP != 0 || !strings.Contains(out[0], "died") {
		t.Fatalf("hp=%d out=%q", e.HP, out)
	}

	// A dead enemy is no longer a target.
	out = w.PlayerAttackEnemy("Goblin", script())
	if !strings.Contains(out[0], "No enemy named 'Goblin'") {
		t.Errorf("out = %q", out)
	}
}

func TestWorld_PlayerAttackEnemy_OtherRoom(t *testing.T) {
	e := &Enemy{Room: 2, Name: "Goblin", HP: 15}
	w := testWorld(t, e)
	r := script()
	out := w.PlayerAttackEnemy("Goblin", r)
	if e.HP != 15 {
		t.Errorf("enemy in another room was hit")
	}
	if r.calls != 0 {
		t.Errorf("failed lookup consumed %d rolls", r.calls)
	}
	if !strings.Contains(out[0], "Goblin") {
		t.Errorf("out = %q", out)
	}
}

func TestWorld_RevealEnemyLoot(t *testing.T) {
	e := &Enemy{Room: 1, Name: "Orc", HP: 0, Hidden: []types.Item{coin("Gold", 5), potion("Potion", 2)}}
	w := testWorld(t, e)

	w.RevealEnemyLoot("Orc")
	if len(w.CurrentRoom().Visible) != 2 || len(e.Hidden) != 0 {
		t.Errorf("visible=%d hidden=%d", len(w.CurrentRoom().Visible), len(e.Hidden))
	}
	out := w.RevealEnemyLoot("Orc")
	if !strings.Contains(out[0], "nothing") {
		t.Errorf("second reveal = %q", out)
	}
}

func TestWorld_Describe_ListsEnemies(t *testing.T) {
	e := &Enemy{Room: 1, Name: "Rat", HP: 2, Description: "Small."}
	w := testWorld(t, e)
	out := strings.Join(w.Describe(), "\n")
	if !strings.Contains(out, "Gate.") || !strings.Contains(out, "Enemy: Rat (2 HP): Small.") {
		t.Errorf("describe =\n%s", out)
	}
}
