package eulerian

import (
	"github.com/katalvlaran/domino/chain"
	"github.com/katalvlaran/domino/tile"
)

// Analyze builds the degree and connectivity report for tiles.
func Analyze(tiles []tile.Tile) Report {
	rep := Report{Start: -1}

	// 1) degrees and a union-find over pip values
	parent := [Vertices]int{}
	for v := range parent {
		parent[v] = v
	}
	for _, t := range tiles {
		rep.Degree[t.Left]++
		rep.Degree[t.Right]++
		union(&parent, int(t.Left), int(t.Right))
	}

	// 2) odd vertices and components among used vertices
	roots := make(map[int]struct{}, Vertices)
	for v := 0; v < Vertices; v++ {
		if rep.Degree[v] == 0 {
			continue
		}
		if rep.Start < 0 {
			rep.Start = v
		}
		if rep.Degree[v]%2 == 1 {
			rep.Odd = append(rep.Odd, v)
		}
		roots[find(&parent, v)] = struct{}{}
	}
	rep.Components = len(roots)
	rep.Connected = rep.Components == 1

	// 3) verdict
	rep.HasTrail = rep.Connected && (len(rep.Odd) == 0 || len(rep.Odd) == 2)
	if len(rep.Odd) == 2 {
		rep.Start = rep.Odd[0]
	}

	return rep
}

func find(parent *[Vertices]int, v int) int {
	for parent[v] != v {
		parent[v] = parent[parent[v]]
		v = parent[v]
	}

	return v
}

func union(parent *[Vertices]int, a, b int) {
	ra, rb := find(parent, a), find(parent, b)
	if ra != rb {
		parent[rb] = ra
	}
}

// frame is one step of the Hierholzer walk: the vertex reached and the
// tile used to reach it (-1 for the start).
type frame struct {
	vertex int
	edge   int
}

// Trail returns one arrangement of all tiles, or false when none exists.
// It runs Hierholzer's algorithm with an explicit stack; tiles are taken
// lowest index first at every vertex so the result is deterministic.
func Trail(tiles []tile.Tile) (*chain.Chain, bool) {
	rep := Analyze(tiles)
	if !rep.HasTrail {
		return nil, false
	}

	// 1) incidence lists; pushed in reverse so the lowest index is popped first
	adj := make([][]int, Vertices)
	for i := len(tiles) - 1; i >= 0; i-- {
		t := tiles[i]
		adj[t.Left] = append(adj[t.Left], i)
		if !t.IsDouble() {
			adj[t.Right] = append(adj[t.Right], i)
		}
	}
	used := make([]bool, len(tiles))

	// 2) walk until stuck, then unwind into the circuit
	var circuit []frame
	stack := []frame{{vertex: rep.Start, edge: -1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		u := top.vertex

		// drop tiles already consumed from the other end
		for len(adj[u]) > 0 && used[adj[u][len(adj[u])-1]] {
			adj[u] = adj[u][:len(adj[u])-1]
		}

		if len(adj[u]) == 0 {
			circuit = append(circuit, top)
			stack = stack[:len(stack)-1]
			continue
		}

		e := adj[u][len(adj[u])-1]
		adj[u] = adj[u][:len(adj[u])-1]
		used[e] = true
		v := int(tiles[e].Right)
		if v == u {
			v = int(tiles[e].Left)
		}
		stack = append(stack, frame{vertex: v, edge: e})
	}

	// 3) circuit is in reverse; orient each tile from its predecessor
	out := chain.New(len(tiles))
	for i := len(circuit) - 2; i >= 0; i-- {
		prev, cur := circuit[i+1].vertex, circuit[i]
		src := tiles[cur.edge]
		flipped := !(int(src.Left) == prev && int(src.Right) == cur.vertex)
		out.Push(chain.Place(cur.edge, src, flipped))
	}

	return out, true
}
