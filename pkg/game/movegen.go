package game

import (
	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/gem"
)

// GetMoves enumerates every legal move for the player to move. Requires
// Determinized == true. Never returns an empty slice for a non-terminal
// state - an empty result is a broken invariant.
func (gs *GameState) GetMoves() []Move {
	if !gs.Determinized {
		panic("game: GetMoves on a non-determinized state")
	}
	if gs.IsTerminal() {
		return nil
	}

	mover := gs.Players[gs.NextPlayer]
	var moves []Move
	switch mover.Phase {
	case PhaseReturn:
		moves = gs.genReturnMoves()
	case PhaseNoble:
		moves = gs.genNobleMoves()
	default:
		moves = append(moves, gs.genCollectMoves()...)
		moves = append(moves, gs.genPurchaseMoves()...)
		moves = append(moves, gs.genReserveMoves()...)
	}

	if len(moves) == 0 {
		panic("game: GetMoves produced no moves for a non-terminal state")
	}
	return moves
}

// genCollectMoves emits both Collect families: up-to-one-of-each across
// a capped number of nonempty colors, and a double-take for any color at
// or above the reload threshold.
func (gs *GameState) genCollectMoves() []Move {
	var moves []Move

	nonempty := make([]gem.Color, 0, gem.NumColors)
	for _, c := range gem.Colors {
		if gs.Available.Get(c) > 0 {
			nonempty = append(nonempty, c)
		}
	}
	maxTake := MaxCollectCount
	if len(nonempty) < maxTake {
		maxTake = len(nonempty)
	}
	for _, subset := range colorSubsets(nonempty, maxTake) {
		var take gem.Set
		for _, c := range subset {
			take[c] = 1
		}
		moves = append(moves, MakeCollectMove(take))
	}

	for _, c := range gem.Colors {
		if gs.Available.Get(c) >= 4 {
			var take gem.Set
			take[c] = 2
			moves = append(moves, MakeCollectMove(take))
		}
	}

	return moves
}

// colorSubsets returns every k-element subset of colors. For k == 0 that
// is the single empty subset, so a table with no colored gems still
// yields one (empty) Collect move.
func colorSubsets(colors []gem.Color, k int) [][]gem.Color {
	if k < 0 {
		return nil
	}
	var result [][]gem.Color
	var helper func(start int, curr []gem.Color)
	helper = func(start int, curr []gem.Color) {
		if len(curr) == k {
			c := make([]gem.Color, k)
			copy(c, curr)
			result = append(result, c)
			return
		}
		remaining := k - len(curr)
		for i := start; i <= len(colors)-remaining; i++ {
			helper(i+1, append(curr, colors[i]))
		}
	}
	helper(0, nil)
	return result
}

// genPurchaseMoves emits one Purchase move per affordable board or
// reserved-hand card.
func (gs *GameState) genPurchaseMoves() []Move {
	var moves []Move
	mover := gs.Players[gs.NextPlayer]

	tryAdd := func(card cards.DevelopmentCard) {
		if !card.Valid() {
			return
		}
		demand := gem.GoldDemand(mover.Discount, mover.Held, card.Cost())
		if demand <= mover.Gold {
			moves = append(moves, MakePurchaseMove(card))
		}
	}

	for tier := range gs.Revealed {
		for _, card := range gs.Revealed[tier] {
			tryAdd(card)
		}
	}
	for _, card := range mover.ReservedCards() {
		tryAdd(card)
	}
	return moves
}

// genReserveMoves emits one face-up Reserve move per revealed card and
// one face-down Reserve move per nonempty tier, provided the hand has a
// free slot.
func (gs *GameState) genReserveMoves() []Move {
	mover := gs.Players[gs.NextPlayer]
	if !mover.HasFreeReservedSlot() {
		return nil
	}

	var moves []Move
	for tier := range gs.Revealed {
		for _, card := range gs.Revealed[tier] {
			if card.Valid() {
				moves = append(moves, MakeReserveFaceUpMove(card))
			}
		}
	}
	for tier := cards.Tier0; tier <= cards.Tier2; tier++ {
		if gs.Decks.HasLevel(tier) {
			moves = append(moves, MakeReserveFaceDownMove(tier))
		}
	}
	return moves
}

// genReturnMoves emits every GemSet the mover could return to drop back
// to the gem cap, via a recursive per-color enumeration.
func (gs *GameState) genReturnMoves() []Move {
	mover := gs.Players[gs.NextPlayer]
	toReturn := mover.GemCount() - MaxHeldGems
	if toReturn <= 0 {
		panic("game: genReturnMoves called while not over the gem cap")
	}

	var moves []Move
	var current gem.Set
	var recurse func(colorIndex, placed int)
	recurse = func(colorIndex, placed int) {
		if placed == toReturn {
			moves = append(moves, MakeReturnMove(current))
			return
		}
		if colorIndex >= gem.NumColors {
			return
		}
		maxHere := toReturn - placed
		if held := mover.Held.Get(gem.Colors[colorIndex]); held < maxHere {
			maxHere = held
		}
		for i := 0; i <= maxHere; i++ {
			current[gem.Colors[colorIndex]] = i
			recurse(colorIndex+1, placed+i)
		}
		current[gem.Colors[colorIndex]] = 0
	}
	recurse(0, 0)
	return moves
}

// genNobleMoves emits one Noble move per still-available noble whose
// cost the mover's discount already covers.
func (gs *GameState) genNobleMoves() []Move {
	var moves []Move
	mover := gs.Players[gs.NextPlayer]
	for _, noble := range gs.Nobles {
		if !noble.Valid() {
			continue
		}
		if gem.GoldDemand(mover.Discount, gem.Set{}, noble.Cost()) == 0 {
			moves = append(moves, MakeNobleMove(noble))
		}
	}
	return moves
}

// HasAffordableNoble reports whether any revealed noble's cost is
// covered by the mover's discount alone.
func (gs *GameState) HasAffordableNoble() bool {
	return len(gs.genNobleMoves()) > 0
}
