package gem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/gem"
)

func TestSetAddSub(t *testing.T) {
	a := gem.Set{}.With(gem.White, 2).With(gem.Blue, 1)
	b := gem.Set{}.With(gem.White, 1)

	sum := gem.Add(a, b)
	require.Equal(t, 3, sum.Get(gem.White))
	require.Equal(t, 1, sum.Get(gem.Blue))

	diff := gem.Sub(sum, b)
	require.Equal(t, a, diff)
}

func TestSetSubUnderflowPanics(t *testing.T) {
	a := gem.Set{}
	b := gem.Set{}.With(gem.Red, 1)
	require.Panics(t, func() { gem.Sub(a, b) })
}

func TestSetLessEq(t *testing.T) {
	a := gem.Set{}.With(gem.Green, 2)
	b := gem.Set{}.With(gem.Green, 3)
	require.True(t, a.LessEq(b))
	require.False(t, b.LessEq(a))
}

func TestApplyDiscount(t *testing.T) {
	cost := gem.Set{}.With(gem.Black, 5)
	discount := gem.Set{}.With(gem.Black, 2)
	residual := gem.ApplyDiscount(cost, discount)
	require.Equal(t, 3, residual.Get(gem.Black))

	overDiscounted := gem.ApplyDiscount(cost, gem.Set{}.With(gem.Black, 9))
	require.Equal(t, 0, overDiscounted.Get(gem.Black))
}

func TestGoldDemand(t *testing.T) {
	cost := gem.Set{}.With(gem.White, 4)
	discount := gem.Set{}.With(gem.White, 1)
	held := gem.Set{}.With(gem.White, 1)

	// residual after discount is 3, held covers 1, so 2 gold needed.
	require.Equal(t, 2, gem.GoldDemand(discount, held, cost))

	// held alone fully covering a color requires no gold.
	require.Equal(t, 0, gem.GoldDemand(gem.Set{}, cost, cost))
}

func TestSetIsComparable(t *testing.T) {
	a := gem.Set{}.With(gem.White, 1)
	b := gem.Set{}.With(gem.White, 1)
	require.True(t, a == b)
}
