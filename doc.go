// Package domino answers one question about a handful of domino tiles:
// can all of them be laid out in a single line, touching halves equal,
// flipping any tile as needed? If so it returns one such line.
//
// The work is split into small packages:
//
//	tile/      the Tile value type and the token validator
//	chain/     the growable line of placements with push/pop
//	solver/    exhaustive backtracking search with orientation
//	eulerian/  degree/connectivity view of the tiles (Euler trail)
//
// Evaluate ties them together for callers that hold raw text tokens and
// want one of three outcomes:
//
//	invalid input          a token is not a tile, or there are none
//	cannot be arranged     the tiles are fine but no line exists
//	can be arranged: ...   the line found, in placement order
//
// Quick example:
//
//	02, 04, 42   →   can be arranged: 02, 24, 40
//
// The cmd/domino binary wraps Evaluate in a CLI, an interactive session
// and a small HTTP API.
package domino
