package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/engine"
	"github.com/psettle-go/splendor/pkg/game"
)

func tinyOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.TimeoutSeconds = 0
	opts.SimsPerRollout = 1
	return opts
}

func TestBestMoveReturnsALegalMove(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	gs := game.NewGame(rng)
	mover := gs.GetNextPlayer()
	infoSet := gs.Mask(mover)

	search := engine.NewSearch(tinyOptions(), engine.NewUniformAgent(rng), nil, rng)
	result := search.BestMove(&infoSet)

	require.Contains(t, gs.GetMoves(), result.Best)
	require.NotEmpty(t, result.Details)
}

func TestBestMoveWithMultipleWorkersStaysLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	gs := game.NewGame(rng)
	mover := gs.GetNextPlayer()
	infoSet := gs.Mask(mover)

	opts := tinyOptions()
	opts.NumWorkers = 4
	search := engine.NewSearch(opts, engine.NewUniformAgent(rng), nil, rng)
	result := search.BestMove(&infoSet)

	require.Contains(t, gs.GetMoves(), result.Best)
}

func TestAdvanceResetsRootWhenMoveWasNeverSampled(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	gs := game.NewGame(rng)
	mover := gs.GetNextPlayer()
	infoSet := gs.Mask(mover)

	search := engine.NewSearch(tinyOptions(), engine.NewUniformAgent(rng), nil, rng)
	search.BestMove(&infoSet)

	unplayed := game.MakeReserveFaceDownMove(cards.Tier(99))
	require.NotPanics(t, func() { search.Advance(unplayed) })

	// a fresh root means the next search starts cold rather than panicking.
	require.NotPanics(t, func() { search.BestMove(&infoSet) })
}

func TestAdvanceReentersTreeAtPlayedMove(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	gs := game.NewGame(rng)
	mover := gs.GetNextPlayer()
	infoSet := gs.Mask(mover)

	opts := tinyOptions()
	opts.TraceHistory = true
	search := engine.NewSearch(opts, engine.NewUniformAgent(rng), nil, rng)
	result := search.BestMove(&infoSet)

	require.NotPanics(t, func() { search.Advance(result.Best) })
}

func TestSearchWithKnowledgeTrackerProducesLegalMove(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	gs := game.NewGame(rng)
	mover := gs.GetNextPlayer()
	infoSet := gs.Mask(mover)
	kt := game.NewKnowledgeTracker(mover)

	search := engine.NewSearch(tinyOptions(), engine.NewUniformAgent(rng), kt, rng)
	result := search.BestMove(&infoSet)

	require.Contains(t, gs.GetMoves(), result.Best)
}
