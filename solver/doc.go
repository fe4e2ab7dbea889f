// Package solver finds an arrangement of domino tiles into a single line
// where touching halves match, every tile is used exactly once and any
// tile may be flipped.
//
// Solve runs an exhaustive depth-first search with backtracking:
//
//  1. Every input index is tried as the first tile, in input order, first
//     as given and then flipped. Each attempt starts from fresh state.
//  2. From a partial chain ending in pip r, unused tiles are scanned in
//     input order. A tile whose left half is r is placed as given;
//     otherwise a tile whose right half is r is placed flipped. After a
//     failed subtree the placement is popped and its tile released.
//  3. The first chain that uses every tile is returned.
//
// A tile matches both ways only when it is a double of r, and then both
// orientations are the same tile, so trying the as-given placement alone
// loses no arrangements.
//
// "No arrangement" is a normal result (Result.Found == false), not an
// error. Errors are reserved for an empty tile list, context
// cancellation and errors returned by the OnPlace hook.
//
// Complexity:
//
//   - Time:   O(N! · 2^N) in the worst case. The matching rule prunes
//     hard, yet infeasible sets still blow up: the 15 tiles over pips 1..6
//     without doubles take about 3.6 million placements, and the double-six
//     set without 01 and 23 (26 tiles, four odd pips) does not finish in
//     practice. There is no artificial bound; use WithContext to cap the
//     time and WithEulerPrecheck to answer such inputs instantly.
//   - Memory: O(N) for the usage markers, the chain and the recursion.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked before every extension.
//   - WithOnPlace(fn)        hook called after each placement.
//   - WithEulerPrecheck()    skip the search when the tiles' multigraph
//     has no Euler trail; the answer is unchanged.
package solver
