package cards_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/cards"
)

func TestCatalogSizesAndTiers(t *testing.T) {
	for tier := cards.Tier0; tier <= cards.Tier2; tier++ {
		deck := cards.NewDeck(tier)
		require.Equal(t, cards.TierCounts[tier], deck.Count())
	}
}

func TestDevelopmentCardTierMatchesDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for tier := cards.Tier0; tier <= cards.Tier2; tier++ {
		deck := cards.NewDeck(tier)
		for deck.HasCard() {
			c := deck.Draw(rng)
			require.Equal(t, tier, c.Tier())
			require.True(t, c.Valid())
		}
	}
}

func TestHiddenTokenRoundTrip(t *testing.T) {
	for tier := cards.Tier0; tier <= cards.Tier2; tier++ {
		token := cards.HiddenToken(tier)
		require.True(t, token.IsHidden())
		require.False(t, token.Valid())
		require.Equal(t, tier, token.HiddenTier())
	}
}

func TestNoCardIsInvalidAndNotHidden(t *testing.T) {
	require.False(t, cards.NoCard.Valid())
	require.False(t, cards.NoCard.IsHidden())
}

func TestDeckDrawRemoveAndReinsert(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	deck := cards.NewDeck(cards.Tier0)
	before := deck.Count()

	drawn := deck.Draw(rng)
	require.Equal(t, before-1, deck.Count())
	require.False(t, deck.Has(drawn))

	deck.Reinsert(drawn)
	require.Equal(t, before, deck.Count())
	require.True(t, deck.Has(drawn))
}

func TestReinsertPanicsOnDuplicate(t *testing.T) {
	deck := cards.NewDeck(cards.Tier0)
	firstStillPresent := cards.DevelopmentCard(0)
	require.Panics(t, func() { deck.Reinsert(firstStillPresent) })
}

func TestShuffleNoblesReturnsThreeDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	nobles := cards.ShuffleNobles(rng)
	seen := map[cards.NobleCard]bool{}
	for _, n := range nobles {
		require.True(t, n.Valid())
		require.False(t, seen[n])
		seen[n] = true
	}
}

func TestNobleCostIsThreeOrFourColors(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, n := range cards.ShuffleNobles(rng) {
		nonZero := 0
		for _, v := range n.Cost() {
			if v > 0 {
				nonZero++
			}
		}
		require.Contains(t, []int{3, 4}, nonZero)
	}
}
