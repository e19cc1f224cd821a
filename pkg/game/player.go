package game

import (
	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/gem"
)

// TurnPhase tracks where within a single turn a player currently is.
type TurnPhase int

const (
	PhaseAction TurnPhase = iota
	PhaseReturn
	PhaseNoble
)

// MaxReservedCards is the reserved-hand capacity.
const MaxReservedCards = 3

// MaxHeldGems is the gem count beyond which the Return phase triggers.
const MaxHeldGems = 10

// ReservedCard is one slot of a player's reserved hand: an optional card
// plus whether the opponent has seen its face (true for a face-up
// reservation, false for a face-down one the opponent cannot identify).
type ReservedCard struct {
	Card     cards.DevelopmentCard
	Revealed bool
}

// Player is one seat's complete state.
type Player struct {
	Held      gem.Set
	Gold      int
	Discount  gem.Set
	Reserved  [MaxReservedCards]ReservedCard
	Points    int
	TurnCount uint8
	Phase     TurnPhase
}

// NewPlayer returns a fresh seat with an empty reserved hand.
func NewPlayer() Player {
	p := Player{}
	for i := range p.Reserved {
		p.Reserved[i].Card = cards.NoCard
	}
	return p
}

// GemCount is held gems plus gold.
func (p Player) GemCount() int { return p.Held.Count() + p.Gold }

// DevelopmentCardCount is the number of purchased cards, i.e. discount.Count().
func (p Player) DevelopmentCardCount() int { return p.Discount.Count() }

// AddGems adds take to held.
func (p *Player) AddGems(take gem.Set) { p.Held = gem.Add(p.Held, take) }

// RemoveGems subtracts remove from held. Panics on insufficient held gems.
func (p *Player) RemoveGems(remove gem.Set) { p.Held = gem.Sub(p.Held, remove) }

// AddGold adds n to the gold count.
func (p *Player) AddGold(n int) { p.Gold += n }

// RemoveGold subtracts n from the gold count. Panics if n > p.Gold.
func (p *Player) RemoveGold(n int) {
	if n > p.Gold {
		panic("game: RemoveGold exceeds held gold")
	}
	p.Gold -= n
}

// AddDiscount records one more purchased card of color c.
func (p *Player) AddDiscount(c gem.Color) { p.Discount[c]++ }

// AddPoints adds n victory points.
func (p *Player) AddPoints(n int) { p.Points += n }

// AddTurn increments the turn counter.
func (p *Player) AddTurn() { p.TurnCount++ }

// AddReservedCard places card in the first empty reserved slot, tagged
// with whether it was revealed when reserved. Panics if the hand is full
// - callers must check for a free slot before generating a Reserve move.
func (p *Player) AddReservedCard(card cards.DevelopmentCard, revealed bool) {
	for i := range p.Reserved {
		if !p.Reserved[i].Card.Valid() {
			p.Reserved[i] = ReservedCard{Card: card, Revealed: revealed}
			return
		}
	}
	panic("game: AddReservedCard on a full reserved hand")
}

// RemoveReservedCard empties the slot holding card and returns it along
// with whether it was revealed. Panics if card is not reserved.
func (p *Player) RemoveReservedCard(card cards.DevelopmentCard) ReservedCard {
	for i := range p.Reserved {
		if p.Reserved[i].Card == card {
			slot := p.Reserved[i]
			p.Reserved[i] = ReservedCard{Card: cards.NoCard}
			return slot
		}
	}
	panic("game: RemoveReservedCard - card not reserved")
}

// HasFreeReservedSlot reports whether the hand has room for another card.
func (p Player) HasFreeReservedSlot() bool {
	for _, slot := range p.Reserved {
		if !slot.Card.Valid() {
			return true
		}
	}
	return false
}

// ReservedCards returns the valid reserved cards, skipping empty slots.
func (p Player) ReservedCards() []cards.DevelopmentCard {
	out := make([]cards.DevelopmentCard, 0, MaxReservedCards)
	for _, slot := range p.Reserved {
		if slot.Card.Valid() {
			out = append(out, slot.Card)
		}
	}
	return out
}
