package chain

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/domino/tile"
)

// Chain is an ordered sequence of placements.
// The zero value is an empty chain ready to use.
type Chain struct {
	items []Placement
}

// New returns an empty chain with room for capacity placements.
func New(capacity int) *Chain {
	if capacity < 0 {
		capacity = 0
	}

	return &Chain{items: make([]Placement, 0, capacity)}
}

// Push appends p to the end of the chain.
func (c *Chain) Push(p Placement) {
	c.items = append(c.items, p)
}

// Pop removes and returns the last placement.
// The boolean is false when the chain is empty.
func (c *Chain) Pop() (Placement, bool) {
	n := len(c.items)
	if n == 0 {
		return Placement{}, false
	}
	p := c.items[n-1]
	c.items = c.items[:n-1]

	return p, true
}

// Last returns the final placement without removing it.
func (c *Chain) Last() (Placement, bool) {
	if len(c.items) == 0 {
		return Placement{}, false
	}

	return c.items[len(c.items)-1], true
}

// Len returns the number of placements.
func (c *Chain) Len() int {
	return len(c.items)
}

// Placements returns a copy of the placements in order.
func (c *Chain) Placements() []Placement {
	return append([]Placement(nil), c.items...)
}

// Tiles returns the oriented tiles in order.
func (c *Chain) Tiles() []tile.Tile {
	out := make([]tile.Tile, len(c.items))
	for i, p := range c.items {
		out[i] = p.Tile
	}

	return out
}

// Strings renders each oriented tile as two digits.
func (c *Chain) Strings() []string {
	return tile.Strings(c.Tiles())
}

// String joins the rendered tiles with ", ".
func (c *Chain) String() string {
	return strings.Join(c.Strings(), ", ")
}

// Clone returns an independent copy of c.
func (c *Chain) Clone() *Chain {
	return &Chain{items: c.Placements()}
}

// Verify checks c against the source tiles it was built from:
//  1. every index is in range and used at most once;
//  2. every placement carries its source tile in the recorded orientation;
//  3. every adjacent pair touches with equal pips.
//
// A partial chain may pass; use VerifyComplete to also require that
// every source tile is used.
func (c *Chain) Verify(src []tile.Tile) error {
	used := make([]bool, len(src))
	for i, p := range c.items {
		// 1) index bounds and uniqueness
		if p.Index < 0 || p.Index >= len(src) {
			return fmt.Errorf("%w: position %d index %d", ErrIndexRange, i, p.Index)
		}
		if used[p.Index] {
			return fmt.Errorf("%w: index %d", ErrDuplicateIndex, p.Index)
		}
		used[p.Index] = true

		// 2) orientation
		if Place(p.Index, src[p.Index], p.Flipped).Tile != p.Tile {
			return fmt.Errorf("%w: position %d has %s, source %s", ErrTileMismatch, i, p.Tile, src[p.Index])
		}

		// 3) link to the previous placement
		if i > 0 && c.items[i-1].Tile.Right != p.Tile.Left {
			return fmt.Errorf("%w: %s then %s", ErrBrokenLink, c.items[i-1].Tile, p.Tile)
		}
	}

	return nil
}

// VerifyComplete runs Verify and additionally requires len(src) placements.
func (c *Chain) VerifyComplete(src []tile.Tile) error {
	if err := c.Verify(src); err != nil {
		return err
	}
	if len(c.items) != len(src) {
		return fmt.Errorf("%w: %d of %d", ErrIncomplete, len(c.items), len(src))
	}

	return nil
}
