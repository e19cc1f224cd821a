package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/engine"
	"github.com/psettle-go/splendor/pkg/game"
	"github.com/psettle-go/splendor/pkg/gem"
)

func TestUniformAgentAlwaysReturnsALegalMove(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(1)))
	agent := engine.NewUniformAgent(rand.New(rand.NewSource(2)))
	moves := gs.GetMoves()
	move := agent.OnTurn(gs, moves)
	require.Contains(t, moves, move)
}

func TestPrunedUniformAgentPrefersPurchaseOverCollect(t *testing.T) {
	moves := []game.Move{
		game.MakeCollectMove(gem.Set{}.With(gem.White, 1)),
		game.MakePurchaseMove(cards.DevelopmentCard(0)),
	}
	agent := engine.NewPrunedUniformAgent(rand.New(rand.NewSource(3)))
	for i := 0; i < 20; i++ {
		move := agent.OnTurn(nil, moves)
		require.Equal(t, game.MovePurchase, move.Kind)
	}
}

func TestPrunedUniformAgentFallsBackWhenPruningEmptiesTheList(t *testing.T) {
	moves := []game.Move{game.MakeCollectMove(gem.Set{}.With(gem.White, 1))}
	agent := engine.NewPrunedUniformAgent(rand.New(rand.NewSource(4)))
	move := agent.OnTurn(nil, moves)
	require.Equal(t, game.MoveCollect, move.Kind)
}

func TestSmartAgentReturnsALegalMove(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(5)))
	agent := engine.NewSmartAgent(rand.New(rand.NewSource(6)), engine.DefaultWeights())
	moves := gs.GetMoves()
	move := agent.OnTurn(gs, moves)
	require.Contains(t, moves, move)
}

func TestSmartAgentPrefersCollectThreeUnderGemCap(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(5)))
	agent := engine.NewSmartAgent(rand.New(rand.NewSource(6)), engine.DefaultWeights())
	moves := gs.GetMoves()

	move := agent.OnTurn(gs, moves)
	require.Equal(t, game.MoveCollect, move.Kind)
	require.EqualValues(t, 3, move.Take.Count())
}

func TestWeighMoveRewardsHigherPointPurchases(t *testing.T) {
	w := engine.DefaultWeights()
	// global index 0 is a tier-0 card (0-1 points), 70 is a tier-2 card
	// (3-5 points) - see pkg/cards' catalog shape table.
	low := game.MakePurchaseMove(cards.DevelopmentCard(0))
	high := game.MakePurchaseMove(cards.DevelopmentCard(70))

	lowScore := engine.WeighMove(low, gem.Set{}, gem.Set{}, w)
	highScore := engine.WeighMove(high, gem.Set{}, gem.Set{}, w)
	require.Greater(t, highScore, lowScore)
}

func TestWeighMoveAddsCardCostPressureForPurchaseColor(t *testing.T) {
	w := engine.DefaultWeights()
	card := cards.DevelopmentCard(0)
	move := game.MakePurchaseMove(card)

	noPressure := engine.WeighMove(move, gem.Set{}, gem.Set{}, w)
	pressure := gem.Set{}.With(card.Color(), 3)
	withPressure := engine.WeighMove(move, pressure, gem.Set{}, w)
	require.Greater(t, withPressure, noPressure)
}

func TestWeighMoveHandlesEveryLegalMove(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(7)))
	moves := gs.GetMoves()
	mover := gs.GetPlayers()[gs.GetNextPlayer()]
	cardCost := engine.NearTermCardCost(gs, mover, engine.DefaultWeights())
	nobleCost := engine.NearTermNobleCost(gs, mover, engine.DefaultWeights())
	require.NotPanics(t, func() {
		for _, m := range moves {
			engine.WeighMove(m, cardCost, nobleCost, engine.DefaultWeights())
		}
	})
}
