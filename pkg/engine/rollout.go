package engine

import (
	"math/rand"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/game"
	"github.com/psettle-go/splendor/pkg/gem"
)

// Agent is anything that can play a turn: the search tree's rollout
// policies, a human-input shim, or the search itself acting as an
// opponent model. OnSetup fires once per game so a stateful agent (a
// KnowledgeTracker, say) can initialize against its own seat.
type Agent interface {
	OnSetup(gs *game.GameState, seatID int)
	OnTurn(gs *game.GameState, moves []game.Move) game.Move
}

// UniformAgent picks uniformly among the legal moves. The cheapest
// rollout policy and the baseline every other policy is judged against.
type UniformAgent struct {
	Rng *rand.Rand
}

func NewUniformAgent(rng *rand.Rand) *UniformAgent { return &UniformAgent{Rng: rng} }

func (a *UniformAgent) OnSetup(gs *game.GameState, seatID int) {}

func (a *UniformAgent) OnTurn(gs *game.GameState, moves []game.Move) game.Move {
	return moves[a.Rng.Intn(len(moves))]
}

// PrunedUniformAgent plays uniformly at random over the first nonempty
// category of moves, in order: every Purchase; else every Collect taking
// three or more gems; else the full list.
type PrunedUniformAgent struct {
	Rng *rand.Rand
}

func NewPrunedUniformAgent(rng *rand.Rand) *PrunedUniformAgent { return &PrunedUniformAgent{Rng: rng} }

func (a *PrunedUniformAgent) OnSetup(gs *game.GameState, seatID int) {}

func (a *PrunedUniformAgent) OnTurn(gs *game.GameState, moves []game.Move) game.Move {
	hasPurchase := false
	for _, m := range moves {
		if m.Kind == game.MovePurchase {
			hasPurchase = true
			break
		}
	}

	pruned := moves
	if hasPurchase {
		pruned = moves[:0:0]
		for _, m := range moves {
			if m.Kind != game.MovePurchase {
				continue
			}
			pruned = append(pruned, m)
		}
	} else {
		pruned = moves[:0:0]
		for _, m := range moves {
			if m.Kind == game.MoveCollect && m.Take.Count() >= 3 {
				pruned = append(pruned, m)
			}
		}
	}
	if len(pruned) == 0 {
		pruned = moves
	}
	return pruned[a.Rng.Intn(len(pruned))]
}

// SmartAgent biases rollouts toward plausible play using the tunable
// Weights: it estimates, per color, how much near-term pressure the
// board's affordable cards and nobles place on that color, then scores
// every legal move by how much it relieves that pressure (plus a flat
// bonus for victory points on a Purchase). Rather than weighing every
// legal move against every other, it picks a category first - a
// Collect-3 while the mover still has room under the gem cap beats a
// Purchase, which beats any other Collect, which beats falling back to
// uniform - and only then draws among that category with probability
// proportional to score, so the weights shape relative preference
// within a category instead of trading categories off against each
// other.
type SmartAgent struct {
	Rng     *rand.Rand
	Weights Weights
}

func NewSmartAgent(rng *rand.Rand, w Weights) *SmartAgent { return &SmartAgent{Rng: rng, Weights: w} }

func (a *SmartAgent) OnSetup(gs *game.GameState, seatID int) {}

func (a *SmartAgent) OnTurn(gs *game.GameState, moves []game.Move) game.Move {
	mover := gs.GetPlayers()[gs.GetNextPlayer()]
	cardCost := NearTermCardCost(gs, mover, a.Weights)
	nobleCost := NearTermNobleCost(gs, mover, a.Weights)

	var collectThree, purchases, collects []game.Move
	for _, m := range moves {
		switch {
		case m.Kind == game.MoveCollect && m.Take.Count() == 3:
			collectThree = append(collectThree, m)
			collects = append(collects, m)
		case m.Kind == game.MovePurchase:
			purchases = append(purchases, m)
		case m.Kind == game.MoveCollect:
			collects = append(collects, m)
		}
	}

	pool := moves
	switch {
	case len(collectThree) > 0 && mover.GemCount() <= 7:
		pool = collectThree
	case len(purchases) > 0:
		pool = purchases
	case len(collects) > 0:
		pool = collects
	default:
		return moves[a.Rng.Intn(len(moves))]
	}

	weights := make([]float64, len(pool))
	for i, m := range pool {
		weights[i] = WeighMove(m, cardCost, nobleCost, a.Weights)
	}
	return weightedChoice(a.Rng, pool, weights)
}

// NearTermCardCost sums, per color, the residual (post-discount) cost of
// every board or reserved card cheap enough to matter - total residual
// at or under w.NearTermCostThreshold gems. Shared by the Smart rollout
// policy and the debug move-ranking display.
func NearTermCardCost(gs *game.GameState, mover game.Player, w Weights) gem.Set {
	var out gem.Set
	consider := func(c cards.DevelopmentCard) {
		if !c.Valid() {
			return
		}
		residual := gem.ApplyDiscount(c.Cost(), mover.Discount)
		if float64(residual.Count()) > w.NearTermCostThreshold {
			return
		}
		out = gem.Add(out, residual)
	}
	for tier := range gs.GetRevealedDevelopmentCards() {
		for _, c := range gs.GetRevealedDevelopmentCards()[tier] {
			consider(c)
		}
	}
	for _, c := range mover.ReservedCards() {
		consider(c)
	}
	return out
}

// NearTermNobleCost is NearTermCardCost's analogue for nobles: nobles
// only ever cost discount, never gems or gold, so the residual is purely
// how many more development cards of each color the mover still needs.
// Every noble still on the board contributes; no threshold applies.
func NearTermNobleCost(gs *game.GameState, mover game.Player, w Weights) gem.Set {
	var out gem.Set
	for _, n := range gs.GetNobles() {
		if !n.Valid() {
			continue
		}
		residual := gem.ApplyDiscount(n.Cost(), mover.Discount)
		out = gem.Add(out, residual)
	}
	return out
}

// WeighMove scores one move given the near-term pressure tables computed
// by NearTermCardCost/NearTermNobleCost. Exported so both the Smart
// rollout policy and the debug move-ranking display score moves
// identically.
func WeighMove(m game.Move, cardCost, nobleCost gem.Set, w Weights) float64 {
	const floor = 0.01
	switch m.Kind {
	case game.MovePurchase:
		color := m.Card.Color()
		v := w.PurchaseForPointsWeight*float64(m.Card.Points()) +
			w.PurchaseForDevelopmentCardWeight*float64(cardCost.Get(color)) +
			w.PurchaseForNobleCardWeight*float64(nobleCost.Get(color))
		return 1 + v
	case game.MoveReserveFaceUp:
		color := m.Card.Color()
		v := 0.5 * (w.PurchaseForDevelopmentCardWeight*float64(cardCost.Get(color)) +
			w.PurchaseForNobleCardWeight*float64(nobleCost.Get(color)))
		return v + floor
	case game.MoveReserveFaceDown:
		return floor
	case game.MoveCollect:
		v := 0.0
		for _, c := range gem.Colors {
			v += float64(m.Take.Get(c)) * float64(cardCost.Get(c))
		}
		return 1 + v
	default:
		return floor
	}
}

// weightedChoice draws index i from items with probability proportional
// to weights[i]. Panics if the slices' lengths disagree or every weight
// is zero - a rollout policy with nothing to choose between is a bug,
// not a recoverable condition.
func weightedChoice(rng *rand.Rand, items []game.Move, weights []float64) game.Move {
	if len(items) != len(weights) {
		panic("engine: weightedChoice length mismatch")
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("engine: weightedChoice with no positive weight")
	}
	target := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return items[i]
		}
	}
	return items[len(items)-1]
}
