// Package eulerian treats a tile list as an undirected multigraph over the
// seven pip values and answers the arrangement question structurally.
//
// Every tile (a, b) is an edge between vertices a and b; a double is a
// loop. A chain that uses every tile exactly once is precisely an Euler
// trail of that multigraph, so a chain exists iff
//
//   - all vertices with non-zero degree lie in one connected component, and
//   - the number of odd-degree vertices is 0 or 2.
//
// Analyze computes that verdict in O(N); Trail builds one arrangement with
// Hierholzer's algorithm in O(N). The solver package uses Analyze as an
// optional pre-check, and the tests use both as an independent oracle for
// the backtracking search.
package eulerian
