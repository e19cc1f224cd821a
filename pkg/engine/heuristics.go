package engine

import (
	"fmt"

	"github.com/psettle-go/splendor/pkg/game"
)

// MoveQuality is one move's heuristic ranking, shown only in Debug mode
// alongside the tree's real search statistics. It never influences
// selection or backup - it exists purely so a human reviewing a game can
// see why the Smart policy would have favored or disfavored a move.
type MoveQuality struct {
	Move      game.Move
	Score     float64
	Reasoning string
}

// QuickEvaluateMove scores move the same way the Smart rollout policy
// would, then attaches a short human-readable reason.
func QuickEvaluateMove(gs *game.GameState, move game.Move, w Weights) MoveQuality {
	mover := gs.GetPlayers()[gs.GetNextPlayer()]
	cardCost := NearTermCardCost(gs, mover, w)
	nobleCost := NearTermNobleCost(gs, mover, w)
	score := WeighMove(move, cardCost, nobleCost, w)

	mq := MoveQuality{Move: move, Score: score}
	switch move.Kind {
	case game.MovePurchase:
		mq.Reasoning = fmt.Sprintf("buys %d points, %s discount", move.Card.Points(), move.Card.Color())
	case game.MoveReserveFaceUp:
		mq.Reasoning = fmt.Sprintf("reserves %s for later", move.Card.Color())
	case game.MoveReserveFaceDown:
		mq.Reasoning = fmt.Sprintf("blind-reserves from %s", move.Tier)
	case game.MoveCollect:
		mq.Reasoning = fmt.Sprintf("collects toward near-term demand %v", move.Take)
	case game.MoveNoble:
		mq.Reasoning = "claims an affordable noble"
	case game.MoveReturn:
		mq.Reasoning = "returns gems over the hand cap"
	}
	return mq
}

// RankMovesForDisplay scores every move and sorts highest-first, for the
// debug view. The ordering is display-only: it has no bearing on which
// move the search tree actually picks.
func RankMovesForDisplay(gs *game.GameState, moves []game.Move, w Weights) []MoveQuality {
	ranked := make([]MoveQuality, len(moves))
	for i, m := range moves {
		ranked[i] = QuickEvaluateMove(gs, m, w)
	}
	for i := 0; i < len(ranked); i++ {
		for j := i + 1; j < len(ranked); j++ {
			if ranked[j].Score > ranked[i].Score {
				ranked[i], ranked[j] = ranked[j], ranked[i]
			}
		}
	}
	return ranked
}
