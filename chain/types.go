package chain

import (
	"errors"

	"github.com/katalvlaran/domino/tile"
)

var (
	// ErrBrokenLink indicates two adjacent placements whose touching
	// pips differ.
	ErrBrokenLink = errors.New("chain: adjacent tiles do not match")

	// ErrIndexRange indicates a placement index outside the source tiles.
	ErrIndexRange = errors.New("chain: tile index out of range")

	// ErrDuplicateIndex indicates a source tile placed more than once.
	ErrDuplicateIndex = errors.New("chain: tile used more than once")

	// ErrTileMismatch indicates a placement whose pips are not those of
	// its source tile in the recorded orientation.
	ErrTileMismatch = errors.New("chain: placement does not match source tile")

	// ErrIncomplete indicates a chain that does not use every source tile.
	ErrIncomplete = errors.New("chain: not every tile is used")
)

// Placement is one tile committed to a chain.
type Placement struct {
	// Index is the position of the tile in the input list.
	Index int `json:"index"`

	// Tile is the tile in the orientation it was placed.
	Tile tile.Tile `json:"tile"`

	// Flipped reports whether Tile is the input tile with halves swapped.
	Flipped bool `json:"flipped"`
}

// Place builds the placement of src at index, flipped if requested.
func Place(index int, src tile.Tile, flipped bool) Placement {
	if flipped {
		src = src.Flip()
	}

	return Placement{Index: index, Tile: src, Flipped: flipped}
}
