package services

import "github.com/samber/lo"

// IDGenerator hands out catalog identifiers from a cached high-water mark.
// IDs freed by deletion are never reused while the catalog holds any record.
type IDGenerator struct {
	ids     func() []int
	highest int
}

// NewIDGenerator creates a generator over the ids currently in a catalog.
// The high-water mark starts at the catalog's largest id, or stale (0) when it is empty.
func NewIDGenerator(ids func() []int) *IDGenerator {
	return &IDGenerator{ids: ids, highest: lo.Max(ids())}
}

// Next returns the identifier for the next ADD
func (g *IDGenerator) Next() int {
	g.highest = g.peek()
	return g.highest
}

// Peek returns the identifier Next would assign without consuming it
func (g *IDGenerator) Peek() int {
	return g.peek()
}

func (g *IDGenerator) peek() int {
	current := g.ids()
	if len(current) == 0 {
		return 1
	}
	// records added without the generator can sit above the cached mark
	return max(g.highest, lo.Max(current)) + 1
}
