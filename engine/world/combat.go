package world

// Mitigate computes damage after armor: max(0, incoming - defense).
func Mitigate(incoming, defense int) int {
	d := incoming - defense
	if d < 0 {
		return 0
	}
	return d
}

// PlayerAttack rolls the player's attack. Godmode skips the hit-chance roll
// so the weapon damage roll always happens. Unarmed hits deal 0.
func PlayerAttack(p *Player, r Roller) (damage int, hit bool) {
	if !p.Godmode && !chance(r, p.AttackChance) {
		return 0, false
	}
	if p.Weapon == nil {
		return 0, true
	}
	return between(r, p.Weapon.MinDamage, p.Weapon.MaxDamage), true
}
