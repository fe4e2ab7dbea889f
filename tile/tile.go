package tile

import "fmt"

// New returns the tile (left, right) or ErrInvalidInput if either pip
// exceeds MaxPip.
func New(left, right uint8) (Tile, error) {
	if left > MaxPip || right > MaxPip {
		return Tile{}, fmt.Errorf("%w: pips %d,%d out of range", ErrInvalidInput, left, right)
	}

	return Tile{Left: left, Right: right}, nil
}

// Parse converts a single token into a Tile.
func Parse(token string) (Tile, error) {
	if !Valid(token) {
		return Tile{}, fmt.Errorf("%w: %q", ErrInvalidInput, token)
	}

	return Tile{Left: token[0] - '0', Right: token[1] - '0'}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(token string) Tile {
	t, err := Parse(token)
	if err != nil {
		panic(err)
	}

	return t
}

// String renders the tile as its two digits in the current orientation.
func (t Tile) String() string {
	return string([]byte{'0' + t.Left, '0' + t.Right})
}

// Flip returns the tile with its halves swapped.
func (t Tile) Flip() Tile {
	return Tile{Left: t.Right, Right: t.Left}
}

// IsDouble reports whether both halves carry the same pip.
func (t Tile) IsDouble() bool {
	return t.Left == t.Right
}

// SameStone reports whether t and u are the same physical tile,
// ignoring orientation.
func (t Tile) SameStone(u Tile) bool {
	return t == u || t == u.Flip()
}

// Strings renders every tile in ts.
func Strings(ts []Tile) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}

	return out
}
