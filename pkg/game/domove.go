package game

import (
	"fmt"
	"math/rand"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/gem"
)

// DoMove applies move for the current mover, then drives the phase
// machine (Action -> maybe Return -> maybe Noble -> end of turn).
// Requires Determinized == true; any invariant violation panics.
func (gs *GameState) DoMove(move Move, rng *rand.Rand) {
	if !gs.Determinized {
		panic("game: DoMove on a non-determinized state")
	}
	mover := gs.NextPlayer

	switch move.Kind {
	case MoveCollect:
		gs.doCollect(mover, move.Take)
	case MovePurchase:
		gs.doPurchase(mover, move.Card, rng)
	case MoveReserveFaceUp:
		gs.doReserveFaceUp(mover, move.Card, rng)
	case MoveReserveFaceDown:
		gs.doReserveFaceDown(mover, move.Tier, rng)
	case MoveNoble:
		gs.doNoble(mover, move.Noble)
	case MoveReturn:
		gs.doReturn(mover, move.Give)
	default:
		panic(fmt.Sprintf("game: DoMove unknown move kind %v", move.Kind))
	}

	gs.advancePhase(mover)
}

// advancePhase runs the post-move phase transition described in the
// component design: Action -> Return if over the cap, else -> Noble if
// affordable, else end-of-turn; Return -> Noble if affordable else
// end-of-turn; Noble always ends the turn.
func (gs *GameState) advancePhase(mover int) {
	p := &gs.Players[mover]
	switch p.Phase {
	case PhaseAction:
		if p.GemCount() > MaxHeldGems {
			p.Phase = PhaseReturn
			return
		}
		if gs.HasAffordableNoble() {
			p.Phase = PhaseNoble
			return
		}
		gs.endTurn(mover)
	case PhaseReturn:
		if gs.HasAffordableNoble() {
			p.Phase = PhaseNoble
			return
		}
		gs.endTurn(mover)
	case PhaseNoble:
		gs.endTurn(mover)
	}
}

func (gs *GameState) endTurn(mover int) {
	p := &gs.Players[mover]
	p.Phase = PhaseAction
	p.AddTurn()
	gs.NextPlayer = 1 - mover
}

func (gs *GameState) doCollect(mover int, take gem.Set) {
	total := take.Count()
	if total > MaxCollectCount {
		panic("game: Collect move takes more than the allowed total")
	}
	for _, c := range gem.Colors {
		n := take.Get(c)
		if n > 2 {
			panic("game: Collect move takes more than 2 of one color")
		}
		if n == 2 && gs.Available.Get(c) != TableGemStock {
			panic("game: Collect double-take requires a full table stock")
		}
	}
	if !take.LessEq(gs.Available) {
		panic("game: Collect move exceeds table stock")
	}
	gs.Available = gem.Sub(gs.Available, take)
	gs.Players[mover].AddGems(take)
}

// doPurchase locates card on the board or in the mover's hand, replaces
// it (board cards redraw from their tier; hand cards vacate their slot),
// pays discount+held+gold, and returns spent gems/gold to the table.
func (gs *GameState) doPurchase(mover int, card cards.DevelopmentCard, rng *rand.Rand) {
	p := &gs.Players[mover]
	cost := card.Cost()
	discount := p.Discount
	held := p.Held
	goldDemand := gem.GoldDemand(discount, held, cost)
	if goldDemand > p.Gold {
		panic("game: Purchase move exceeds available gold")
	}

	gs.takeCardForPurchaseOrReserve(mover, card, rng)

	var spend gem.Set
	for _, c := range gem.Colors {
		residual := cost.Get(c) - discount.Get(c)
		if residual <= 0 {
			continue
		}
		s := residual
		if held.Get(c) < s {
			s = held.Get(c)
		}
		spend[c] = s
	}
	p.RemoveGems(spend)
	p.RemoveGold(goldDemand)
	gs.Available = gem.Add(gs.Available, spend)
	gs.GoldStock += goldDemand
	if gs.GoldStock > TableGoldStock {
		panic("game: gold stock exceeds starting supply")
	}
	p.AddDiscount(card.Color())
	p.AddPoints(card.Points())
}

// takeCardForPurchaseOrReserve removes card from wherever it currently
// sits (the revealed grid, replacing it via ReplaceCard, or the mover's
// reserved hand, leaving that slot empty) ahead of a Purchase or a
// face-up Reserve.
func (gs *GameState) takeCardForPurchaseOrReserve(mover int, card cards.DevelopmentCard, rng *rand.Rand) {
	for tier := range gs.Revealed {
		for slot := range gs.Revealed[tier] {
			if gs.Revealed[tier][slot] == card {
				gs.replaceGridCard(cards.Tier(tier), slot, rng)
				return
			}
		}
	}
	p := &gs.Players[mover]
	for _, slot := range p.Reserved {
		if slot.Card == card {
			p.RemoveReservedCard(card)
			return
		}
	}
	panic("game: purchase/reserve target card not found on board or in hand")
}

// replaceGridCard removes the grid card at (tier,slot) and redraws from
// that tier's deck into the same slot, leaving it empty if the deck is
// exhausted.
func (gs *GameState) replaceGridCard(tier cards.Tier, slot int, rng *rand.Rand) {
	if gs.Decks.HasLevel(tier) {
		gs.Revealed[tier][slot] = gs.Decks.Draw(tier, rng)
	} else {
		gs.Revealed[tier][slot] = cards.NoCard
	}
}

func (gs *GameState) doReserveFaceUp(mover int, card cards.DevelopmentCard, rng *rand.Rand) {
	p := &gs.Players[mover]
	if !p.HasFreeReservedSlot() {
		panic("game: ReserveFaceUp move with a full reserved hand")
	}
	gs.takeCardForPurchaseOrReserve(mover, card, rng)
	p.AddReservedCard(card, true)
	gs.transferReserveGold(p)
}

func (gs *GameState) doReserveFaceDown(mover int, tier cards.Tier, rng *rand.Rand) {
	p := &gs.Players[mover]
	if !p.HasFreeReservedSlot() {
		panic("game: ReserveFaceDown move with a full reserved hand")
	}
	card := gs.Decks.Draw(tier, rng)
	p.AddReservedCard(card, false)
	gs.transferReserveGold(p)
}

func (gs *GameState) transferReserveGold(p *Player) {
	if gs.GoldStock > 0 {
		gs.GoldStock--
		p.AddGold(1)
	}
}

func (gs *GameState) doNoble(mover int, noble cards.NobleCard) {
	p := &gs.Players[mover]
	if gem.GoldDemand(p.Discount, gem.Set{}, noble.Cost()) != 0 {
		panic("game: Noble move claims an unaffordable noble")
	}
	for i, n := range gs.Nobles {
		if n == noble {
			gs.Nobles[i] = cards.NoNoble
			p.AddPoints(noble.Points())
			return
		}
	}
	panic("game: Noble move names a noble not on the board")
}

func (gs *GameState) doReturn(mover int, give gem.Set) {
	p := &gs.Players[mover]
	if !give.LessEq(p.Held) {
		panic("game: Return move gives more than held")
	}
	p.RemoveGems(give)
	gs.Available = gem.Add(gs.Available, give)
}
