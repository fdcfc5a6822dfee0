// Package types defines the shared data structures for the kerker game.
// This package contains only type definitions; it has no logic and no methods.
package types

// Direction is a cardinal exit direction. DirNone never matches an exit.
type Direction int

const (
	DirNone Direction = iota
	North
	South
	East
	West
)

// ItemKind tags the payload carried by an Item.
type ItemKind int

const (
	Coin ItemKind = iota
	Weapon
	Armor
	Consumable
)

// Item is a value-like game object. Only the payload fields belonging to
// Kind are meaningful:
//
//	Coin       Value
//	Weapon     MinDamage, MaxDamage
//	Armor      Defense
//	Consumable Heal
type Item struct {
	Name        string
	Description string
	Kind        ItemKind
	Value       int
	MinDamage   int
	MaxDamage   int
	Defense     int
	Heal        int
}

// CommandKind is one of the fixed set of player commands.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdHelp
	CmdLook
	CmdSearch
	CmdGo
	CmdTake
	CmdPut
	CmdSee
	CmdSeePlayer
	CmdHit
	CmdWear
	CmdWait
	CmdConsume
	CmdGodmode
	CmdQuit
)

// Command is the parsed representation of one line of player input.
type Command struct {
	Kind      CommandKind
	Target    string    // item or enemy name, for target-bearing commands
	Direction Direction // for CmdGo
}

// Result is the output of a single game step.
type Result struct {
	Command Command
	Output  []string
}

// GameDef holds game metadata from the content source.
type GameDef struct {
	Title       string
	Author      string
	Version     string
	Intro       string
	Start       int    // starting room ID; 0 = first room
	StartWeapon string // catalog item name; optional
	PlayerHP    int    // 0 = engine default
}

// RoomDef is a room as described by the content source.
// Exit fields hold the destination room ID; 0 means no exit.
type RoomDef struct {
	ID          int `validate:"gt=0"`
	Name        string
	Description string
	North       int `validate:"gte=0"`
	East        int `validate:"gte=0"`
	South       int `validate:"gte=0"`
	West        int `validate:"gte=0"`
	Enemies     []string // enemy template keys to spawn here
	Hidden      []string // item template keys
	Visible     []string // item template keys
}

// ItemTemplate is a catalog entry for an item. Min/Max is the coin amount,
// weapon damage or consumable heal range; Protection is the armor defense.
type ItemTemplate struct {
	Name        string `validate:"required"`
	Description string
	Kind        string `validate:"required"`
	Min         int    `validate:"gte=0"`
	Max         int    `validate:"gtefield=Min"`
	Protection  int    `validate:"gte=0"`
}

// EnemyTemplate is a catalog entry for an enemy. AttackChance is carried
// by the catalog but combat uses a fixed enemy hit chance.
type EnemyTemplate struct {
	Name         string `validate:"required"`
	Description  string
	HP           int `validate:"gt=0"`
	AttackChance int `validate:"gte=0,lte=100"`
	MinDamage    int `validate:"gte=0"`
	MaxDamage    int `validate:"gtefield=MinDamage"`
	MinItems     int `validate:"gte=0"`
	MaxItems     int `validate:"gtefield=MinItems"`
}
