package world

import (
	"fmt"

	"github.com/nathoo/kerker/engine/resolve"
	"github.com/nathoo/kerker/types"
)

const (
	// DefaultPlayerHP is the starting hit points when content sets none.
	DefaultPlayerHP = 10
	// PlayerAttackChance is the base percentage for a player hit.
	PlayerAttackChance = 40
)

// Player holds the adventurer's stats, equipment and backpack.
// Coins never reach the backpack; they are converted to Gold on pickup.
type Player struct {
	Name         string
	HP           int
	Gold         int
	AttackChance int
	Weapon       *types.Item
	Armor        *types.Item
	Backpack     []types.Item
	Godmode      bool
}

// NewPlayer creates a player with the given name and hit points.
func NewPlayer(name string, hp int) *Player {
	if hp <= 0 {
		hp = DefaultPlayerHP
	}
	return &Player{Name: name, HP: hp, AttackChance: PlayerAttackChance}
}

// Pickup adds an item to the player. Coins become gold.
func (p *Player) Pickup(it types.Item) []string {
	if it.Kind == types.Coin {
		p.Gold += it.Value
		return []string{fmt.Sprintf("You pocket %d gold. Gold: %d.", it.Value, p.Gold)}
	}
	p.Backpack = append(p.Backpack, it)
	return []string{fmt.Sprintf("Item '%s' has been moved to your backpack.", it.Name)}
}

// Equip wears or wields a backpack item. The previous occupant of the slot
// goes back into the backpack.
func (p *Player) Equip(name string) []string {
	i, err := resolve.Item(p.Backpack, name, "your backpack")
	if err != nil {
		return []string{err.Error()}
	}
	it := p.Backpack[i]

	var slot **types.Item
	switch it.Kind {
	case types.Weapon:
		slot = &p.Weapon
	case types.Armor:
		slot = &p.Armor
	default:
		return []string{fmt.Sprintf("You can't wear %s.", it.Name)}
	}

	p.Backpack = append(p.Backpack[:i:i], p.Backpack[i+1:]...)
	out := []string{}
	if old := *slot; old != nil {
		p.Backpack = append(p.Backpack, *old)
		out = append(out, fmt.Sprintf("You put %s back in your backpack.", old.Name))
	}
	*slot = &it
	if it.Kind == types.Weapon {
		out = append(out, fmt.Sprintf("You wield %s.", Describe(it)))
	} else {
		out = append(out, fmt.Sprintf("You wear %s.", Describe(it)))
	}
	return out
}

// Consume uses a consumable from the backpack. Healing has no upper cap.
func (p *Player) Consume(name string) []string {
	i, err := resolve.Item(p.Backpack, name, "your backpack")
	if err != nil {
		return []string{err.Error()}
	}
	it := p.Backpack[i]
	if it.Kind != types.Consumable {
		return []string{fmt.Sprintf("You can't consume %s.", it.Name)}
	}
	p.Backpack = append(p.Backpack[:i:i], p.Backpack[i+1:]...)
	p.HP += it.Heal
	return []string{fmt.Sprintf("You consume %s and heal %d HP. HP: %d.", it.Name, it.Heal, p.HP)}
}

// Remove takes an item off the player, checking the weapon slot, then the
// armor slot, then the backpack.
func (p *Player) Remove(name string) (types.Item, error) {
	if p.Weapon != nil && p.Weapon.Name == name {
		it := *p.Weapon
		p.Weapon = nil
		return it, nil
	}
	if p.Armor != nil && p.Armor.Name == name {
		it := *p.Armor
		p.Armor = nil
		return it, nil
	}
	it, rest, err := resolve.Take(p.Backpack, name, "your equipment or backpack")
	if err != nil {
		return types.Item{}, err
	}
	p.Backpack = rest
	return it, nil
}

// TakeDamage applies incoming damage after armor. Godmode discards it.
func (p *Player) TakeDamage(incoming int) []string {
	if p.Godmode {
		return []string{fmt.Sprintf("Godmode: you ignore %d damage.", incoming)}
	}
	defense := 0
	if p.Armor != nil {
		defense = p.Armor.Defense
	}
	effective := Mitigate(incoming, defense)
	p.HP -= effective
	if p.HP < 0 {
		p.HP = 0
	}
	if effective < incoming {
		return []string{fmt.Sprintf("Your armor absorbs %d. You take %d damage, %d HP remaining.",
			incoming-effective, effective, p.HP)}
	}
	return []string{fmt.Sprintf("You take %d damage, %d HP remaining.", effective, p.HP)}
}

// ToggleGodmode flips the godmode flag.
func (p *Player) ToggleGodmode() []string {
	p.Godmode = !p.Godmode
	if p.Godmode {
		return []string{"Godmode enabled."}
	}
	return []string{"Godmode disabled."}
}

// ItemCount is the number of items held across both slots and the backpack.
func (p *Player) ItemCount() int {
	n := len(p.Backpack)
	if p.Weapon != nil {
		n++
	}
	if p.Armor != nil {
		n++
	}
	return n
}

// Status renders the player's full status block.
func (p *Player) Status() []string {
	weapon, armor := "none", "none"
	if p.Weapon != nil {
		weapon = Describe(*p.Weapon)
	}
	if p.Armor != nil {
		armor = Describe(*p.Armor)
	}
	god := "off"
	if p.Godmode {
		god = "on"
	}
	return []string{
		"Name: " + p.Name,
		fmt.Sprintf("HP: %d", p.HP),
		fmt.Sprintf("Gold: %d", p.Gold),
		fmt.Sprintf("Attack chance: %d%%", p.AttackChance),
		"Weapon: " + weapon,
		"Armor: " + armor,
		"Backpack: " + describeAll(p.Backpack),
		"Godmode: " + god,
	}
}
