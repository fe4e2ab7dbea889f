package solver_test

import (
	"testing"

	"github.com/katalvlaran/domino/solver"
	"github.com/katalvlaran/domino/tile"
)

// fullSet returns all 28 tiles of a double-six set in canonical order.
func fullSet() []tile.Tile {
	out := make([]tile.Tile, 0, 28)
	for a := uint8(0); a <= tile.MaxPip; a++ {
		for b := a; b <= tile.MaxPip; b++ {
			out = append(out, tile.Tile{Left: a, Right: b})
		}
	}

	return out
}

// BenchmarkSolve_FullSet arranges the complete double-six set.
// Every pip has even degree, so a closed line exists.
func BenchmarkSolve_FullSet(b *testing.B) {
	in := fullSet()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Solve(in)
	}
}

// BenchmarkSolve_Infeasible measures the search on a small impossible
// input without the pre-check.
func BenchmarkSolve_Infeasible(b *testing.B) {
	in := tiles("01", "02", "03", "12", "13", "23", "45")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Solve(in)
	}
}

// BenchmarkSolve_InfeasiblePrecheck is the same input with the pre-check.
func BenchmarkSolve_InfeasiblePrecheck(b *testing.B) {
	in := tiles("01", "02", "03", "12", "13", "23", "45")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Solve(in, solver.WithEulerPrecheck())
	}
}
