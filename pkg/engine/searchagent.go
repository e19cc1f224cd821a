package engine

import "github.com/psettle-go/splendor/pkg/game"

// SearchAgent adapts a Search into the Agent interface so the tree
// search itself can be handed to a Runner as either player: play mode
// against a human, or bench mode pitting two searches (possibly with
// different Options) against each other.
type SearchAgent struct {
	Search *Search
}

func NewSearchAgent(s *Search) *SearchAgent { return &SearchAgent{Search: s} }

func (a *SearchAgent) OnSetup(gs *game.GameState, seatID int) {}

// OnTurn searches infoSet and advances the tree past the chosen move so
// the next call picks up where this one left off, per TraceHistory.
func (a *SearchAgent) OnTurn(infoSet *game.GameState, moves []game.Move) game.Move {
	result := a.Search.BestMove(infoSet)
	a.Search.Advance(result.Best)
	return result.Best
}
