package view_test

import (
	"bytes"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/game"
	"github.com/psettle-go/splendor/pkg/view"
)

func TestShowStateMentionsBothPlayersAndToMove(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(50)))
	var buf bytes.Buffer
	r := view.NewRenderer(&buf)

	r.ShowState(gs)
	out := buf.String()
	require.Contains(t, out, "P0")
	require.Contains(t, out, "P1")
	require.Contains(t, out, "to move")
}

func TestShowMoveOptionsNumbersEveryMove(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(51)))
	var buf bytes.Buffer
	r := view.NewRenderer(&buf)

	moves := gs.GetMoves()
	r.ShowMoveOptions(moves)
	out := buf.String()
	for i := range moves {
		require.Contains(t, out, strconv.Itoa(i+1)+".")
	}
}

func TestShowResultAnnouncesWinnerOrDraw(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(52)))
	var buf bytes.Buffer
	r := view.NewRenderer(&buf)

	r.ShowResult(gs)
	require.NotEmpty(t, buf.String())
}

func TestFormatMoveNeverReturnsInvalidForRealMoveKinds(t *testing.T) {
	gs := game.NewGame(rand.New(rand.NewSource(53)))
	for _, m := range gs.GetMoves() {
		require.NotEqual(t, "invalid move", view.FormatMove(m))
	}
}
