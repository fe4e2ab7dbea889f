package solver

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/domino/chain"
)

// ErrNoTiles is returned when Solve is called with an empty tile list.
var ErrNoTiles = errors.New("solver: no tiles")

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnPlace, if non-nil, is invoked after each placement with the depth
	// of the placement (0 for the first tile). Returning an error aborts
	// the search with that error.
	OnPlace func(depth int, p chain.Placement) error

	// EulerPrecheck, if true, answers "no arrangement" without searching
	// when the degree/connectivity test already rules it out.
	EulerPrecheck bool
}

// DefaultOptions returns Options with a background context, no hook and
// no pre-check.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnPlace:       nil,
		EulerPrecheck: false,
	}
}

// WithContext sets the context checked during the search.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPlace installs fn as the placement hook.
func WithOnPlace(fn func(depth int, p chain.Placement) error) Option {
	return func(o *Options) {
		o.OnPlace = fn
	}
}

// WithEulerPrecheck enables the Euler-trail pre-check.
func WithEulerPrecheck() Option {
	return func(o *Options) {
		o.EulerPrecheck = true
	}
}

// Stats captures how much work a search did.
type Stats struct {
	// Nodes counts placements, the first tile of each attempt included.
	Nodes int `json:"nodes"`

	// Starts counts (start index, orientation) attempts.
	Starts int `json:"starts"`

	// Duration is the wall-clock time of Solve.
	Duration time.Duration `json:"duration"`
}

// Result is the outcome of Solve.
type Result struct {
	// Found reports whether an arrangement of all tiles exists.
	Found bool

	// Chain is the arrangement when Found, nil otherwise.
	Chain *chain.Chain

	// Pruned is true when the pre-check decided the answer.
	Pruned bool

	// Stats describes the work done.
	Stats Stats
}

// Strings renders the arrangement, or nil when none was found.
func (r *Result) Strings() []string {
	if r == nil || !r.Found {
		return nil
	}

	return r.Chain.Strings()
}
