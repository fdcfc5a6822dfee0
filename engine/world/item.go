package world

import (
	"fmt"
	"strings"

	"github.com/nathoo/kerker/types"
)

// Kind keywords accepted in the item catalog.
const (
	KindCoin       = "coin"
	KindWeapon     = "weapon"
	KindArmor      = "armor"
	KindConsumable = "consumable"
)

// UnknownKindError is returned when a catalog template uses a kind keyword
// outside the fixed vocabulary.
type UnknownKindError struct {
	Item string
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("item %q has unknown kind %q", e.Item, e.Kind)
}

// NewItem turns a catalog template into an item instance named name.
// Coin values and consumable heal amounts are rolled once, here; weapon
// damage stays a live range.
func NewItem(tpl types.ItemTemplate, name string, r Roller) (types.Item, error) {
	item := types.Item{Name: name, Description: tpl.Description}
	switch strings.ToLower(strings.TrimSpace(tpl.Kind)) {
	case KindCoin:
		item.Kind = types.Coin
		item.Value = between(r, tpl.Min, tpl.Max)
	case KindWeapon:
		item.Kind = types.Weapon
		item.MinDamage = tpl.Min
		item.MaxDamage = tpl.Max
	case KindArmor:
		item.Kind = types.Armor
		item.Defense = tpl.Protection
	case KindConsumable:
		item.Kind = types.Consumable
		item.Heal = between(r, tpl.Min, tpl.Max)
	default:
		return types.Item{}, &UnknownKindError{Item: tpl.Name, Kind: tpl.Kind}
	}
	return item, nil
}

// KindName returns the lowercase keyword for an item kind.
func KindName(k types.ItemKind) string {
	switch k {
	case types.Coin:
		return KindCoin
	case types.Weapon:
		return KindWeapon
	case types.Armor:
		return KindArmor
	case types.Consumable:
		return KindConsumable
	}
	return "unknown"
}

// ActionValue is the number an item contributes when used: coin value,
// weapon maximum damage, armor defense or heal amount.
func ActionValue(it types.Item) int {
	switch it.Kind {
	case types.Coin:
		return it.Value
	case types.Weapon:
		return it.MaxDamage
	case types.Armor:
		return it.Defense
	case types.Consumable:
		return it.Heal
	}
	return 0
}

// Describe renders an item with its kind payload, e.g. "Sword (weapon 3-6)".
func Describe(it types.Item) string {
	switch it.Kind {
	case types.Coin:
		return fmt.Sprintf("%s (%d gold)", it.Name, it.Value)
	case types.Weapon:
		return fmt.Sprintf("%s (weapon %d-%d)", it.Name, it.MinDamage, it.MaxDamage)
	case types.Armor:
		return fmt.Sprintf("%s (armor %d)", it.Name, it.Defense)
	case types.Consumable:
		return fmt.Sprintf("%s (heals %d)", it.Name, it.Heal)
	}
	return it.Name
}

// describeAll joins item descriptions, or returns "none".
func describeAll(items []types.Item) string {
	if len(items) == 0 {
		return "none"
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = Describe(it)
	}
	return strings.Join(parts, ", ")
}
