package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/domino/chain"
	"github.com/katalvlaran/domino/eulerian"
	"github.com/katalvlaran/domino/tile"
)

// searcher owns the state of one start attempt.
type searcher struct {
	tiles []tile.Tile  // input multiset, read-only
	used  []bool       // usage marker per input index
	path  *chain.Chain // current partial chain
	opts  Options
	nodes int
}

func newSearcher(tiles []tile.Tile, opts Options) *searcher {
	return &searcher{
		tiles: tiles,
		used:  make([]bool, len(tiles)),
		path:  chain.New(len(tiles)),
		opts:  opts,
	}
}

// Solve searches for an arrangement of every tile. See the package
// documentation for the exploration order.
func Solve(tiles []tile.Tile, opts ...Option) (*Result, error) {
	// 1. Validate input
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start := time.Now()
	res := &Result{}

	// 3. Optional structural shortcut
	if o.EulerPrecheck && !eulerian.Analyze(tiles).HasTrail {
		res.Pruned = true
		res.Stats.Duration = time.Since(start)

		return res, nil
	}

	// 4. Every start index, as given then flipped, each from fresh state
	for i := range tiles {
		for _, flipped := range [2]bool{false, true} {
			s := newSearcher(tiles, o)
			res.Stats.Starts++
			ok, err := s.place(i, flipped, 0)
			res.Stats.Nodes += s.nodes
			if err != nil {
				res.Stats.Duration = time.Since(start)

				return res, fmt.Errorf("solver: start %d: %w", i, err)
			}
			if ok {
				res.Found = true
				res.Chain = s.path
				res.Stats.Duration = time.Since(start)

				return res, nil
			}
		}
	}

	// 5. Exhausted
	res.Stats.Duration = time.Since(start)

	return res, nil
}

// place commits tile i in the given orientation and searches onward.
// On failure it undoes exactly its own push and marker.
func (s *searcher) place(i int, flipped bool, depth int) (bool, error) {
	p := chain.Place(i, s.tiles[i], flipped)
	s.used[i] = true
	s.path.Push(p)
	s.nodes++

	if s.opts.OnPlace != nil {
		if err := s.opts.OnPlace(depth, p); err != nil {
			return false, fmt.Errorf("OnPlace at depth %d: %w", depth, err)
		}
	}

	ok, err := s.extend(depth + 1)
	if err != nil || ok {
		return ok, err
	}

	s.path.Pop()
	s.used[i] = false

	return false, nil
}

// extend tries every unused tile after the current last placement.
func (s *searcher) extend(depth int) (bool, error) {
	// 1. Cancellation check
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	// 2. Base case: every tile placed
	if s.path.Len() == len(s.tiles) {
		return true, nil
	}

	last, _ := s.path.Last()
	want := last.Tile.Right

	// 3. Candidates in input order; as given before flipped
	for i, t := range s.tiles {
		if s.used[i] {
			continue
		}

		var ok bool
		var err error
		switch {
		case t.Left == want:
			ok, err = s.place(i, false, depth)
		case t.Right == want:
			ok, err = s.place(i, true, depth)
		default:
			continue
		}
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}
