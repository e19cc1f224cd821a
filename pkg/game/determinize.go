package game

import (
	"math/rand"

	"github.com/psettle-go/splendor/pkg/cards"
)

// Mask returns a copy of gs observing only what player knows: each
// opposing reserved slot flagged Revealed=false becomes a hidden token
// tagged with its tier, and the concrete card is returned to that
// tier's deck so it can be redrawn by anyone's Determinize. The
// observing player's own reservations are always concrete, regardless of their Revealed
// flag, since a player always knows what they themselves reserved.
func (gs *GameState) Mask(player int) GameState {
	masked := gs.Clone()
	opponent := 1 - player
	p := &masked.Players[opponent]
	for i := range p.Reserved {
		slot := p.Reserved[i]
		if slot.Card.Valid() && !slot.Revealed {
			tier := slot.Card.Tier()
			masked.Decks.At(tier).Reinsert(slot.Card)
			p.Reserved[i].Card = cards.HiddenToken(tier)
		}
	}
	masked.Determinized = false
	return masked
}

// Determinize returns a copy of gs with every hidden token replaced by a
// fresh random draw from its tier's deck, yielding a concrete legal
// state consistent with the observer's information.
func (gs *GameState) Determinize(rng *rand.Rand) GameState {
	if gs.Determinized {
		return gs.Clone()
	}
	out := gs.Clone()
	for seat := range out.Players {
		p := &out.Players[seat]
		for i := range p.Reserved {
			if p.Reserved[i].Card.IsHidden() {
				tier := p.Reserved[i].Card.HiddenTier()
				p.Reserved[i].Card = out.Decks.Draw(tier, rng)
			}
		}
	}
	out.Determinized = true
	return out
}
