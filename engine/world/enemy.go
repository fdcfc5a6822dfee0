package world

import (
	"fmt"

	"github.com/nathoo/kerker/types"
)

// EnemyHitChance is the fixed percentage with which a live enemy hits.
const EnemyHitChance = 50

// Enemy is a hostile creature located in a room by ID.
type Enemy struct {
	Room        int
	Name        string
	Description string
	HP          int
	MinDamage   int
	MaxDamage   int
	Hidden      []types.Item
}

// Alive reports whether the enemy still has hit points.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// Attack rolls an attack. A dead enemy never rolls and deals nothing.
func (e *Enemy) Attack(r Roller) (damage int, hit bool) {
	if !e.Alive() {
		return 0, false
	}
	if !chance(r, EnemyHitChance) {
		return 0, false
	}
	return between(r, e.MinDamage, e.MaxDamage), true
}

// TakeDamage applies a blow. Blows on a dead enemy are ignored.
func (e *Enemy) TakeDamage(n int) []string {
	if !e.Alive() {
		return []string{fmt.Sprintf("%s is already dead.", e.Name)}
	}
	if n < 0 {
		n = 0
	}
	e.HP -= n
	if e.HP <= 0 {
		e.HP = 0
		return []string{fmt.Sprintf("%s took %d damage and died.", e.Name, n)}
	}
	return []string{fmt.Sprintf("%s took %d damage, %d HP remaining.", e.Name, n, e.HP)}
}

// DropLoot empties the enemy's hidden items and returns them.
func (e *Enemy) DropLoot() []types.Item {
	loot := e.Hidden
	e.Hidden = nil
	return loot
}

// Show renders the enemy for a room description.
func (e *Enemy) Show() string {
	if !e.Alive() {
		return fmt.Sprintf("%s (dead): %s", e.Name, e.Description)
	}
	return fmt.Sprintf("%s (%d HP): %s", e.Name, e.HP, e.Description)
}
