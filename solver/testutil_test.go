package solver_test

import (
	"math/rand"

	"github.com/katalvlaran/domino/tile"
)

func tiles(tokens ...string) []tile.Tile {
	out := make([]tile.Tile, len(tokens))
	for i, s := range tokens {
		out[i] = tile.MustParse(s)
	}

	return out
}

func randomTiles(rng *rand.Rand, n int) []tile.Tile {
	out := make([]tile.Tile, n)
	for i := range out {
		out[i] = tile.Tile{Left: uint8(rng.Intn(tile.MaxPip + 1)), Right: uint8(rng.Intn(tile.MaxPip + 1))}
	}

	return out
}

// bruteForce reports whether any permutation of ts, with any choice of
// orientation per tile, forms a chain. It enumerates all N!·2^N lines.
func bruteForce(ts []tile.Tile) bool {
	n := len(ts)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var permute func(k int) bool
	permute = func(k int) bool {
		if k == n {
			return anyOrientation(ts, perm)
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			if permute(k + 1) {
				return true
			}
			perm[k], perm[i] = perm[i], perm[k]
		}

		return false
	}

	return permute(0)
}

func anyOrientation(ts []tile.Tile, perm []int) bool {
	n := len(perm)
	for mask := 0; mask < 1<<n; mask++ {
		ok := true
		var prev tile.Tile
		for pos, idx := range perm {
			cur := ts[idx]
			if mask&(1<<pos) != 0 {
				cur = cur.Flip()
			}
			if pos > 0 && prev.Right != cur.Left {
				ok = false
				break
			}
			prev = cur
		}
		if ok {
			return true
		}
	}

	return false
}
