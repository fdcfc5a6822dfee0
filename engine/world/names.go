package world

import "strconv"

// NameGenerator hands out collision-free display names. The first request
// for a base name returns it unchanged; later requests get a numeric suffix
// starting at 2.
type NameGenerator struct {
	seen map[string]int
}

// NewNameGenerator creates an empty generator.
func NewNameGenerator() *NameGenerator {
	return &NameGenerator{seen: map[string]int{}}
}

// Generate returns the next unique name for base.
func (g *NameGenerator) Generate(base string) string {
	g.seen[base]++
	n := g.seen[base]
	if n == 1 {
		return base
	}
	return base + strconv.Itoa(n)
}
