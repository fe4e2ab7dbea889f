// Package tile defines the domino tile value type and the validator that
// turns raw text tokens into tiles.
//
// A tile is an ordered pair of pips (Left, Right), each in [0,6]. The
// textual form "ab" and its flip "ba" denote the same physical stone in
// two orientations; which one appears in a chain is decided by the
// solver, not by the input.
//
// Validation rules:
//
//   - a token is a tile iff it has exactly two characters and both are
//     ASCII digits in the inclusive range '0'..'6';
//   - a token list is valid iff it is non-empty and every token is a tile.
//
// Errors:
//
//   - ErrInvalidInput  for any rejected list or token.
//   - ErrEmptyInput    for an empty list (also matches ErrInvalidInput).
//
// Validate never reports which rule failed through a distinct sentinel;
// the wrapped message names the offending token for diagnostics only.
package tile
