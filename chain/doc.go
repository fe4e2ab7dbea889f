// Package chain holds the in-progress and final arrangement of tiles.
//
// A Chain is a contiguous growable sequence of placements. Only the end
// of the sequence is ever touched: Push appends a placement and Pop
// removes the last one, which is exactly what a depth-first search needs
// for its path stack.
//
// Invariant: for every adjacent pair (A, B), A.Tile.Right == B.Tile.Left.
// Push does not enforce it; Verify checks it together with index
// uniqueness and orientation against the source tiles.
//
// Complexity:
//
//   - Push, Pop, Last: O(1) amortised.
//   - Verify:          O(N).
package chain
