package tile

import (
	"errors"
	"fmt"
)

// MaxPip is the highest pip value a tile half may carry.
const MaxPip = 6

var (
	// ErrInvalidInput is the single rejection signal for malformed input.
	ErrInvalidInput = errors.New("tile: invalid input")

	// ErrEmptyInput is returned by Validate for an empty token list.
	// It wraps ErrInvalidInput so callers may check either.
	ErrEmptyInput = fmt.Errorf("%w: no tiles", ErrInvalidInput)
)

// Tile is a domino piece as an ordered pair of pips.
// The zero value is the double-blank "00".
type Tile struct {
	Left  uint8 `json:"left"`
	Right uint8 `json:"right"`
}
