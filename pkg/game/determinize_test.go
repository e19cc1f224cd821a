package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/game"
)

func hasFaceDownReservation(gs *game.GameState, seat int) bool {
	for _, slot := range gs.GetPlayers()[seat].Reserved {
		if slot.Card.Valid() && !slot.Revealed {
			return true
		}
	}
	return false
}

func TestMaskHidesOnlyOpponentFaceDownReservations(t *testing.T) {
	gs := newTestGame(20)
	rng := rand.New(rand.NewSource(21))

	// Drive the game, always preferring a face-down reserve, until
	// seat 0 holds one - regardless of whose turn lands it, since
	// every move is legal for whoever is to move.
	for !hasFaceDownReservation(gs, 0) {
		require.False(t, gs.IsTerminal(), "game ended before seat 0 reserved face-down")
		moves := gs.GetMoves()
		pick := moves[0]
		for _, m := range moves {
			if m.Kind == game.MoveReserveFaceDown {
				pick = m
				break
			}
		}
		gs.DoMove(pick, rng)
	}

	masked := gs.Mask(1) // seat 1's view: seat 0's face-down card is hidden
	players := masked.GetPlayers()
	hasHidden := false
	for _, slot := range players[0].Reserved {
		if slot.Card.IsHidden() {
			hasHidden = true
		}
	}
	require.True(t, hasHidden)
	require.False(t, masked.Determinized)

	// the observer's own side is never masked.
	ownMasked := gs.Mask(0)
	ownPlayers := ownMasked.GetPlayers()
	for _, slot := range ownPlayers[0].Reserved {
		require.False(t, slot.Card.IsHidden())
	}
}

func TestDeterminizeFillsHiddenTokensWithValidTierCards(t *testing.T) {
	gs := newTestGame(22)
	reserver := gs.GetNextPlayer()
	gs.DoMove(game.MakeReserveFaceDownMove(cards.Tier0), rand.New(rand.NewSource(22)))
	masked := gs.Mask(1 - reserver)
	det := masked.Determinize(rand.New(rand.NewSource(23)))
	require.True(t, det.Determinized)
	for _, p := range det.GetPlayers() {
		for _, slot := range p.Reserved {
			require.False(t, slot.Card.IsHidden())
		}
	}
	reserved := det.GetPlayers()[reserver].ReservedCards()
	require.Len(t, reserved, 1)
	require.Equal(t, cards.Tier0, reserved[0].Tier())
}

func TestDeterminizeIsNoOpOnAlreadyDeterminizedState(t *testing.T) {
	gs := newTestGame(24)
	det := gs.Determinize(rand.New(rand.NewSource(25)))
	require.Equal(t, *gs, det)
}
