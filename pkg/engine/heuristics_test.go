package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/engine"
	"github.com/psettle-go/splendor/pkg/game"
)

func TestQuickEvaluateMoveAttachesNonEmptyReasoning(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(10)))
	w := engine.DefaultWeights()
	for _, m := range gs.GetMoves() {
		mq := engine.QuickEvaluateMove(gs, m, w)
		require.Equal(t, m, mq.Move)
		require.NotEmpty(t, mq.Reasoning)
	}
}

func TestRankMovesForDisplayIsSortedHighestFirst(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(11)))
	w := engine.DefaultWeights()
	moves := gs.GetMoves()

	ranked := engine.RankMovesForDisplay(gs, moves, w)
	require.Len(t, ranked, len(moves))
	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankMovesForDisplayIsPurelyDisplay(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(12)))
	w := engine.DefaultWeights()
	moves := gs.GetMoves()

	before := gs.GetMoves()
	engine.RankMovesForDisplay(gs, moves, w)
	after := gs.GetMoves()
	require.Equal(t, before, after)
}
