package game

import (
	"math/rand"

	"github.com/psettle-go/splendor/pkg/cards"
)

// KnowledgeTracker narrows the determinization sample space for one
// player's hidden information: a manually-annotated suspicion/exclusion
// overlay over the opponent's face-down reservation. Splendor's only
// hidden signal is "which tier," so the tracker operates per-card
// within a tier rather than per-rank as a trick-taking game would.
//
// Suspicions and exclusions are set-valued (not single-card) since a
// player may narrow a hidden card down to a short list without pinning
// it exactly. AddSuspicion and AddExclusion populate them; the CLI has no
// command that calls either.
type KnowledgeTracker struct {
	MyPlayerID int
	Suspicions map[cards.DevelopmentCard]bool
	Exclusions map[cards.DevelopmentCard]bool
}

// NewKnowledgeTracker returns an empty tracker for myPlayerID.
func NewKnowledgeTracker(myPlayerID int) *KnowledgeTracker {
	return &KnowledgeTracker{
		MyPlayerID: myPlayerID,
		Suspicions: make(map[cards.DevelopmentCard]bool),
		Exclusions: make(map[cards.DevelopmentCard]bool),
	}
}

// AddSuspicion records that card might be the opponent's hidden
// reservation.
func (k *KnowledgeTracker) AddSuspicion(c cards.DevelopmentCard) { k.Suspicions[c] = true }

// ClearSuspicions drops every recorded suspicion.
func (k *KnowledgeTracker) ClearSuspicions() { k.Suspicions = make(map[cards.DevelopmentCard]bool) }

// AddExclusion records that card cannot be the opponent's hidden
// reservation.
func (k *KnowledgeTracker) AddExclusion(c cards.DevelopmentCard) { k.Exclusions[c] = true }

// ClearExclusions drops every recorded exclusion.
func (k *KnowledgeTracker) ClearExclusions() { k.Exclusions = make(map[cards.DevelopmentCard]bool) }

// DrawBiased draws a replacement for a hidden token from deck, tiering
// the sample space: suspected cards still present in the deck are drawn
// from first; failing that, any non-excluded card; failing that (every
// remaining card has been excluded, which only happens when the
// exclusion list is stale or over-eager), a uniform draw over whatever
// remains so a decision is never blocked.
func (k *KnowledgeTracker) DrawBiased(deck *cards.Deck, rng *rand.Rand) cards.DevelopmentCard {
	remaining := deck.Cards()
	if len(remaining) == 0 {
		panic("game: DrawBiased on an empty deck")
	}

	var suspected []cards.DevelopmentCard
	for _, c := range remaining {
		if k.Suspicions[c] {
			suspected = append(suspected, c)
		}
	}
	if len(suspected) > 0 {
		pick := suspected[rng.Intn(len(suspected))]
		deck.Remove(pick)
		return pick
	}

	var plausible []cards.DevelopmentCard
	for _, c := range remaining {
		if !k.Exclusions[c] {
			plausible = append(plausible, c)
		}
	}
	pool := plausible
	if len(pool) == 0 {
		pool = remaining
	}
	pick := pool[rng.Intn(len(pool))]
	deck.Remove(pick)
	return pick
}
