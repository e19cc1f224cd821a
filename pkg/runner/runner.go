// Package runner drives a complete two-player game to completion,
// alternating OnTurn calls between each seat's Agent and reporting
// progress through a View.
package runner

import (
	"math/rand"

	"github.com/psettle-go/splendor/pkg/engine"
	"github.com/psettle-go/splendor/pkg/game"
)

// View reports game progress to a human or a log, independent of which
// Agent is actually choosing moves.
type View interface {
	ShowState(gs *game.GameState)
	ShowTurn(gs *game.GameState, seatID int)
	ShowResult(gs *game.GameState)
}

// Runner owns the two seats' agents and plays out full games between
// them, masking the non-mover's hidden information before every OnTurn
// call so neither agent ever sees more than its own information set.
type Runner struct {
	Agents [2]engine.Agent
	View   View

	// MaxTurnsPerPlayer safety-caps a stuck game: RunGame stops once the
	// player to move has already played more than this many turns. 0
	// means use game.MaxTurnCount.
	MaxTurnsPerPlayer uint8
}

func NewRunner(agents [2]engine.Agent, view View) *Runner {
	return &Runner{Agents: agents, View: view}
}

// RunGame plays one complete game starting from gs (already dealt, e.g.
// via game.NewGame), mutating gs in place, and returns the winning seat.
// ok is false on a draw.
func (r *Runner) RunGame(gs *game.GameState, rng *rand.Rand) (winner int, ok bool) {
	for seat, agent := range r.Agents {
		agent.OnSetup(gs, seat)
	}

	limit := r.MaxTurnsPerPlayer
	if limit == 0 {
		limit = game.MaxTurnCount
	}
	for !gs.IsTerminal() {
		mover := gs.GetNextPlayer()
		if gs.GetPlayers()[mover].TurnCount > limit {
			break
		}
		if r.View != nil {
			r.View.ShowTurn(gs, mover)
		}

		// OnTurn must see the mover's own information set, not a
		// fabricated concrete state, or a Search agent's per-visit
		// re-determinization of the opponent's hidden reservation never
		// fires. The mover's own legal moves never depend on the
		// opponent's hidden reservation identity, so a separate
		// determinized copy is enough to enumerate them.
		maskedView := gs.Mask(mover)
		determinized := maskedView.Determinize(rng)
		moves := determinized.GetMoves()

		move := r.Agents[mover].OnTurn(&maskedView, moves)
		gs.DoMove(move, rng)

		if r.View != nil {
			r.View.ShowState(gs)
		}
	}

	if r.View != nil {
		r.View.ShowResult(gs)
	}
	return gs.GetWinner()
}
