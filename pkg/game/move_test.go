package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/game"
	"github.com/psettle-go/splendor/pkg/gem"
)

func TestMoveIsComparable(t *testing.T) {
	a := game.MakePurchaseMove(cards.DevelopmentCard(3))
	b := game.MakePurchaseMove(cards.DevelopmentCard(3))
	c := game.MakePurchaseMove(cards.DevelopmentCard(4))
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	set := map[game.Move]bool{a: true}
	require.True(t, set[b])
	require.False(t, set[c])
}

func TestMoveStringPerKind(t *testing.T) {
	cases := []game.Move{
		game.MakeCollectMove(gem.Set{}.With(gem.White, 1)),
		game.MakeReturnMove(gem.Set{}.With(gem.Blue, 1)),
		game.MakePurchaseMove(cards.DevelopmentCard(0)),
		game.MakeReserveFaceUpMove(cards.DevelopmentCard(0)),
		game.MakeReserveFaceDownMove(cards.Tier1),
		game.MakeNobleMove(cards.NobleCard(0)),
	}
	for _, m := range cases {
		require.NotEmpty(t, m.String())
		require.NotContains(t, m.String(), "invalid")
	}
}
