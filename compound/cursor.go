package compound

import (
	"fmt"

	"github.com/katalvlaran/scanpath/core"
)

// Cursor walks the surviving points of a prepared Generator in scan order.
// A Cursor is single-use and single-consumer; create a new one to restart.
type Cursor struct {
	g    *Generator
	next int // rank of the next point in g.kept
}

// Iterator returns a Cursor positioned before the first point.
// Returns ErrNotPrepared before Prepare.
func (g *Generator) Iterator() (*Cursor, error) {
	if !g.ready {
		return nil, fmt.Errorf("compound.Iterator: %w", ErrNotPrepared)
	}
	return &Cursor{g: g}, nil
}

// HasNext reports whether Next will return a point.
func (c *Cursor) HasNext() bool { return c.next < len(c.g.kept) }

// Next returns the next surviving point, mutated.
// Returns ErrExhausted once every point has been returned.
func (c *Cursor) Next() (core.Point, error) {
	if !c.HasNext() {
		return core.Point{}, ErrExhausted
	}
	p := c.g.pointAt(c.g.kept[c.next])
	c.next++
	return p, nil
}

// Index returns the flattened index of the point last returned by Next,
// or -1 before the first call.
func (c *Cursor) Index() int {
	if c.next == 0 {
		return -1
	}
	return c.g.kept[c.next-1]
}

// Remaining returns how many points Next has yet to return.
func (c *Cursor) Remaining() int { return len(c.g.kept) - c.next }
