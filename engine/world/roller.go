package world

// Roller is the source of randomness for combat, movement and item creation.
// Roll returns an integer in [1, sides].
type Roller interface {
	Roll(sides int) int
}

// chance reports whether a percent-based check succeeds.
func chance(r Roller, percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.Roll(100) <= percent
}

// between returns a value uniformly drawn from [lo, hi]. A degenerate range
// returns lo without rolling.
func between(r Roller, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Roll(hi-lo+1) - 1
}

// pick returns an index uniformly drawn from [0, n).
func pick(r Roller, n int) int {
	if n <= 1 {
		return 0
	}
	return r.Roll(n) - 1
}
