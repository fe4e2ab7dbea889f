package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domino/chain"
	"github.com/katalvlaran/domino/tile"
)

func tiles(tokens ...string) []tile.Tile {
	out := make([]tile.Tile, len(tokens))
	for i, s := range tokens {
		out[i] = tile.MustParse(s)
	}

	return out
}

// TestChain_PushPop checks that Pop undoes exactly one Push.
func TestChain_PushPop(t *testing.T) {
	src := tiles("02", "04", "42")
	c := chain.New(len(src))

	_, ok := c.Last()
	assert.False(t, ok)
	_, ok = c.Pop()
	assert.False(t, ok)

	c.Push(chain.Place(1, src[1], false)) // 04
	c.Push(chain.Place(2, src[2], false)) // 42
	c.Push(chain.Place(0, src[0], true))  // 20
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"04", "42", "20"}, c.Strings())
	assert.Equal(t, "04, 42, 20", c.String())

	p, ok := c.Pop()
	require.True(t, ok)
	assert.Equal(t, 0, p.Index)
	assert.True(t, p.Flipped)
	assert.Equal(t, "20", p.Tile.String())

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, "42", last.Tile.String())
	assert.Equal(t, 2, c.Len())
}

// TestChain_CloneIsIndependent ensures later pushes do not leak.
func TestChain_CloneIsIndependent(t *testing.T) {
	src := tiles("12", "23")
	c := chain.New(2)
	c.Push(chain.Place(0, src[0], false))
	snap := c.Clone()
	c.Push(chain.Place(1, src[1], false))

	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, 2, c.Len())
}

func TestChain_Verify(t *testing.T) {
	src := tiles("02", "04", "42")

	good := chain.New(3)
	good.Push(chain.Place(1, src[1], false))
	good.Push(chain.Place(2, src[2], false))
	good.Push(chain.Place(0, src[0], true))
	require.NoError(t, good.VerifyComplete(src))

	partial := chain.New(3)
	partial.Push(chain.Place(1, src[1], false))
	assert.NoError(t, partial.Verify(src))
	assert.ErrorIs(t, partial.VerifyComplete(src), chain.ErrIncomplete)

	broken := chain.New(3)
	broken.Push(chain.Place(0, src[0], false)) // 02
	broken.Push(chain.Place(1, src[1], false)) // 04
	assert.ErrorIs(t, broken.Verify(src), chain.ErrBrokenLink)

	dup := chain.New(3)
	dup.Push(chain.Place(2, src[2], false))
	dup.Push(chain.Place(2, src[2], true))
	assert.ErrorIs(t, dup.Verify(src), chain.ErrDuplicateIndex)

	rng := chain.New(1)
	rng.Push(chain.Placement{Index: 5})
	assert.ErrorIs(t, rng.Verify(src), chain.ErrIndexRange)

	lie := chain.New(1)
	lie.Push(chain.Placement{Index: 0, Tile: tile.MustParse("03")})
	assert.ErrorIs(t, lie.Verify(src), chain.ErrTileMismatch)
}

func TestChain_ZeroValue(t *testing.T) {
	var c chain.Chain
	c.Push(chain.Place(0, tile.MustParse("33"), false))
	assert.Equal(t, "33", c.String())
	assert.Empty(t, chain.New(-1).Placements())
}
