// Package cards holds the static development-card and noble-card
// catalogs plus the draw piles (Decks) that deal from them.
package cards

import (
	"fmt"
	"math/rand"

	"github.com/psettle-go/splendor/pkg/gem"
)

// Tier is a development-card deck level.
type Tier int

const (
	Tier0 Tier = iota
	Tier1
	Tier2
)

func (t Tier) String() string { return fmt.Sprintf("Tier%d", int(t)) }

// TierCounts gives the catalog size of each tier, largest first.
var TierCounts = [3]int{40, 30, 20}

// tierStart is the global catalog index at which each tier begins.
var tierStart = [3]int{0, 40, 70}

// DevelopmentCard is an opaque identity into the 90-card catalog.
// NoCard is the sentinel for "no card in this slot" - every slot that
// can be empty must be explicitly initialized to NoCard, since the Go
// zero value DevelopmentCard(0) is a real card.
//
// hiddenTier0/1/2 are reserved-hand tokens standing in for "some card
// from tier T whose identity is unknown to the observer" - produced by
// Mask and consumed by Determinize. They carry no catalog identity, only
// the tier.
type DevelopmentCard int16

const (
	NoCard DevelopmentCard = -1

	hiddenTier0 DevelopmentCard = -2
	hiddenTier1 DevelopmentCard = -3
	hiddenTier2 DevelopmentCard = -4
)

// HiddenToken returns the hidden-card token for tier.
func HiddenToken(tier Tier) DevelopmentCard {
	switch tier {
	case Tier0:
		return hiddenTier0
	case Tier1:
		return hiddenTier1
	default:
		return hiddenTier2
	}
}

// Valid reports whether c identifies a concrete catalog card (neither
// empty nor a hidden token).
func (c DevelopmentCard) Valid() bool { return c >= 0 }

// IsHidden reports whether c is a hidden-tier token.
func (c DevelopmentCard) IsHidden() bool { return c <= hiddenTier0 && c >= hiddenTier2 }

// HiddenTier returns the tier a hidden token stands in for. Panics if c
// is not a hidden token.
func (c DevelopmentCard) HiddenTier() Tier {
	switch c {
	case hiddenTier0:
		return Tier0
	case hiddenTier1:
		return Tier1
	case hiddenTier2:
		return Tier2
	default:
		panic("cards: HiddenTier on a non-hidden card")
	}
}

func (c DevelopmentCard) Tier() Tier {
	idx := int(c)
	switch {
	case idx < tierStart[1]:
		return Tier0
	case idx < tierStart[2]:
		return Tier1
	default:
		return Tier2
	}
}

func (c DevelopmentCard) Cost() gem.Set {
	return developmentCatalog[c].cost
}

func (c DevelopmentCard) Color() gem.Color {
	return developmentCatalog[c].color
}

func (c DevelopmentCard) Points() int {
	return developmentCatalog[c].points
}

type developmentCardData struct {
	cost   gem.Set
	color  gem.Color
	points int
}

// developmentCatalog is built once at package init from a deterministic
// generator that keeps each tier's cost and point ranges consistent
// with Splendor's standard progression (cheap/low-point tier 0 rising
// to expensive/high-point tier 2), cycling evenly through all five
// colors within each tier.
var developmentCatalog = buildDevelopmentCatalog()

func buildDevelopmentCatalog() []developmentCardData {
	catalog := make([]developmentCardData, 90)
	shapes := [3]struct {
		minPts, maxPts   int
		minCost, maxCost int
		spread           int
	}{
		{0, 1, 1, 4, 2},
		{1, 3, 5, 8, 3},
		{3, 5, 9, 14, 4},
	}

	idx := 0
	for tier := 0; tier < 3; tier++ {
		shape := shapes[tier]
		for i := 0; i < TierCounts[tier]; i++ {
			color := gem.Colors[i%gem.NumColors]
			pts := shape.minPts + i%(shape.maxPts-shape.minPts+1)
			totalCost := shape.minCost + i%(shape.maxCost-shape.minCost+1)
			cost := spreadCost(totalCost, shape.spread, color, i)
			catalog[idx] = developmentCardData{cost: cost, color: color, points: pts}
			idx++
		}
	}
	return catalog
}

// spreadCost distributes totalCost across `spread` colors other than the
// card's own discount color (a card never costs its own color), walking
// colors in a deterministic rotation seeded by i.
func spreadCost(totalCost, spread int, skip gem.Color, i int) gem.Set {
	var cost gem.Set
	remaining := totalCost
	placed := 0
	for off := 0; off < gem.NumColors && placed < spread && remaining > 0; off++ {
		c := gem.Colors[(int(skip)+1+off+i)%gem.NumColors]
		if c == skip {
			continue
		}
		share := remaining / (spread - placed)
		if share < 1 {
			share = 1
		}
		if share > remaining {
			share = remaining
		}
		cost[c] += share
		remaining -= share
		placed++
	}
	if remaining > 0 {
		cost[gem.Colors[(int(skip)+1)%gem.NumColors]] += remaining
	}
	return cost
}

// NobleCard is an opaque identity into the 10-card noble catalog.
type NobleCard int8

const NoNoble NobleCard = -1

func (n NobleCard) Valid() bool { return n >= 0 }

// NoblePoints is the fixed point value of every noble.
const NoblePoints = 3

func (n NobleCard) Points() int { return NoblePoints }

func (n NobleCard) Cost() gem.Set { return nobleCatalog[n] }

// nobleCatalog mirrors the standard Splendor noble set: each noble costs
// either 3 of four colors or 4 of three colors.
var nobleCatalog = buildNobleCatalog()

func buildNobleCatalog() []gem.Set {
	catalog := make([]gem.Set, 10)
	for i := 0; i < 10; i++ {
		var cost gem.Set
		if i%2 == 0 {
			for k := 0; k < 4; k++ {
				cost[gem.Colors[(i+k)%gem.NumColors]] = 3
			}
		} else {
			for k := 0; k < 3; k++ {
				cost[gem.Colors[(i+k)%gem.NumColors]] = 4
			}
		}
		catalog[i] = cost
	}
	return catalog
}

// ShuffleNobles returns the revealed-at-setup 3-noble slate.
func ShuffleNobles(rng *rand.Rand) [3]NobleCard {
	order := rng.Perm(len(nobleCatalog))
	var out [3]NobleCard
	for i := range out {
		out[i] = NobleCard(order[i])
	}
	return out
}

// Deck is a shuffled draw pile for one tier, represented as a bitmap
// over catalog indices local to that tier (bit i set means catalog card
// tierStart[tier]+i is still in the pile). 40 bits is the largest tier,
// comfortably inside a uint64.
type Deck struct {
	Tier Tier
	bits uint64
}

// NewDeck returns a full deck for tier with every card present.
func NewDeck(tier Tier) Deck {
	n := TierCounts[tier]
	var bits uint64
	if n == 64 {
		bits = ^uint64(0)
	} else {
		bits = (uint64(1) << n) - 1
	}
	return Deck{Tier: tier, bits: bits}
}

// HasCard reports whether any card remains in the deck.
func (d Deck) HasCard() bool { return d.bits != 0 }

// Count returns the number of cards remaining.
func (d Deck) Count() int {
	count := 0
	for b := d.bits; b != 0; b &= b - 1 {
		count++
	}
	return count
}

// Has reports whether card is still present in the deck.
func (d Deck) Has(card DevelopmentCard) bool {
	local := int(card) - tierStart[d.Tier]
	if local < 0 || local >= TierCounts[d.Tier] {
		return false
	}
	return d.bits&(uint64(1)<<local) != 0
}

// Cards returns every card still remaining, in ascending catalog order.
func (d Deck) Cards() []DevelopmentCard {
	out := make([]DevelopmentCard, 0, d.Count())
	for b := d.bits; b != 0; b &= b - 1 {
		bit := b & (b - 1) ^ b
		out = append(out, DevelopmentCard(tierStart[d.Tier]+bitIndex(bit)))
	}
	return out
}

// Remove takes a specific card out of the deck. Panics if absent.
func (d *Deck) Remove(card DevelopmentCard) {
	if !d.Has(card) {
		panic("cards: Remove - card not present in deck")
	}
	local := int(card) - tierStart[d.Tier]
	d.bits &^= uint64(1) << local
}

// Draw removes and returns a uniformly random remaining card. Panics if
// the deck is empty - callers must check HasCard first.
func (d *Deck) Draw(rng *rand.Rand) DevelopmentCard {
	n := d.Count()
	if n == 0 {
		panic("cards: Draw on empty deck")
	}
	target := rng.Intn(n)
	for b := d.bits; b != 0; b &= b - 1 {
		bit := b & (b - 1) ^ b // lowest set bit
		if target == 0 {
			local := bitIndex(bit)
			d.bits &^= bit
			return DevelopmentCard(tierStart[d.Tier] + local)
		}
		target--
	}
	panic("cards: unreachable")
}

// Reinsert puts a previously drawn card back into its tier's deck. Used
// when masking hides an opponent's face-down reservation.
func (d *Deck) Reinsert(c DevelopmentCard) {
	local := int(c) - tierStart[d.Tier]
	if local < 0 || local >= TierCounts[d.Tier] {
		panic(fmt.Sprintf("cards: Reinsert card %d does not belong to %s", c, d.Tier))
	}
	bit := uint64(1) << local
	if d.bits&bit != 0 {
		panic(fmt.Sprintf("cards: Reinsert card %d already present in %s", c, d.Tier))
	}
	d.bits |= bit
}

func bitIndex(bit uint64) int {
	i := 0
	for bit > 1 {
		bit >>= 1
		i++
	}
	return i
}

// Decks wraps the three tier draw piles.
type Decks struct {
	Tier0, Tier1, Tier2 Deck
}

// NewDecks returns three full decks, one per tier.
func NewDecks() Decks {
	return Decks{
		Tier0: NewDeck(Tier0),
		Tier1: NewDeck(Tier1),
		Tier2: NewDeck(Tier2),
	}
}

// At returns a pointer to the deck for the given tier.
func (d *Decks) At(tier Tier) *Deck {
	switch tier {
	case Tier0:
		return &d.Tier0
	case Tier1:
		return &d.Tier1
	default:
		return &d.Tier2
	}
}

// HasLevel reports whether the given tier's deck still has a card.
func (d *Decks) HasLevel(tier Tier) bool { return d.At(tier).HasCard() }

// Draw removes and returns a random card from the given tier.
func (d *Decks) Draw(tier Tier, rng *rand.Rand) DevelopmentCard { return d.At(tier).Draw(rng) }
