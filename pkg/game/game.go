// Package game implements the Splendor position: its move set, its
// deterministic and stochastic transitions, and the hidden-information
// masking/determinization operators the search tree relies on.
package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/gem"
)

const (
	// RevealedCardsPerTier is the width of the revealed grid.
	RevealedCardsPerTier = 4
	// NumTiers is the number of development-card tiers.
	NumTiers = 3
	// WinningPoints is the victory-point threshold checked at turn end.
	WinningPoints = 15
	// MaxTurnCount is the safety cap preventing runaway games.
	MaxTurnCount = 254
	// TableGemStock is the starting per-color table stock.
	TableGemStock = 4
	// TableGoldStock is the starting gold stock.
	TableGoldStock = 5
	// MaxCollectCount is the maximum total gems a Collect move may take.
	MaxCollectCount = 3
)

// GameState is the complete two-player Splendor position.
type GameState struct {
	Decks        cards.Decks
	Revealed     [NumTiers][RevealedCardsPerTier]cards.DevelopmentCard
	Nobles       [3]cards.NobleCard
	Available    gem.Set
	GoldStock    int
	Players      [2]Player
	NextPlayer   int
	Determinized bool
}

// NewGame deals a fresh initial position: 4 revealed cards per tier, 3
// shuffled nobles, full table stocks, and a uniformly random first
// player.
func NewGame(rng *rand.Rand) *GameState {
	gs := &GameState{
		Decks:        cards.NewDecks(),
		Determinized: true,
	}
	for c := range gs.Available {
		gs.Available[c] = TableGemStock
	}
	gs.GoldStock = TableGoldStock
	gs.Players[0] = NewPlayer()
	gs.Players[1] = NewPlayer()

	for tier := cards.Tier0; tier <= cards.Tier2; tier++ {
		for slot := 0; slot < RevealedCardsPerTier; slot++ {
			if gs.Decks.HasLevel(tier) {
				gs.Revealed[tier][slot] = gs.Decks.Draw(tier, rng)
			} else {
				gs.Revealed[tier][slot] = cards.NoCard
			}
		}
	}
	gs.Nobles = cards.ShuffleNobles(rng)
	gs.NextPlayer = rng.Intn(2)
	return gs
}

// Clone returns a value copy. GameState contains no pointers or slices,
// so a plain struct copy is a deep copy.
func (gs *GameState) Clone() GameState { return *gs }

// GetNextPlayer returns the index of the player to move.
func (gs *GameState) GetNextPlayer() int { return gs.NextPlayer }

// GetPlayers returns both seats.
func (gs *GameState) GetPlayers() [2]Player { return gs.Players }

// GetNobles returns the three (possibly empty) noble slots.
func (gs *GameState) GetNobles() [3]cards.NobleCard { return gs.Nobles }

// GetRevealedDevelopmentCards returns the 3x4 revealed grid.
func (gs *GameState) GetRevealedDevelopmentCards() [NumTiers][RevealedCardsPerTier]cards.DevelopmentCard {
	return gs.Revealed
}

// GetAvailable returns the table's per-color gem stock.
func (gs *GameState) GetAvailable() gem.Set { return gs.Available }

// GetAvailableGold returns the table's gold stock.
func (gs *GameState) GetAvailableGold() int { return gs.GoldStock }

// GetWinner returns the winning seat once the game is terminal, or a
// false ok on a draw (both players terminal with equal points and equal
// development-card counts).
func (gs *GameState) GetWinner() (int, bool) {
	p0, p1 := gs.Players[0], gs.Players[1]
	if p0.Points == p1.Points {
		if p0.DevelopmentCardCount() == p1.DevelopmentCardCount() {
			return 0, false
		}
		if p0.DevelopmentCardCount() > p1.DevelopmentCardCount() {
			return 0, true
		}
		return 1, true
	}
	if p0.Points > p1.Points {
		return 0, true
	}
	return 1, true
}

// IsTerminal reports whether the game has ended: both turn counters
// equal, and either a player has reached the winning points or the turn
// count has passed the MaxTurnCount safety cap.
func (gs *GameState) IsTerminal() bool {
	p0, p1 := gs.Players[0], gs.Players[1]
	if p0.TurnCount != p1.TurnCount {
		return false
	}
	if p0.TurnCount > MaxTurnCount {
		return true
	}
	return p0.Points >= WinningPoints || p1.Points >= WinningPoints
}

// StatusString renders a human-readable summary, used by the text view
// and by debug logging.
func (gs *GameState) StatusString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Splendor - to move: P%d ===\n", gs.NextPlayer)
	fmt.Fprintf(&sb, "Available: %v  Gold: %d\n", gs.Available, gs.GoldStock)
	for tier := cards.Tier0; tier <= cards.Tier2; tier++ {
		fmt.Fprintf(&sb, "Tier%d (%d left): ", tier, gs.Decks.At(tier).Count())
		for _, c := range gs.Revealed[tier] {
			if c.Valid() {
				fmt.Fprintf(&sb, "[c%d pts=%d %v] ", c, c.Points(), c.Color())
			} else {
				sb.WriteString("[empty] ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Nobles: ")
	for _, n := range gs.Nobles {
		if n.Valid() {
			fmt.Fprintf(&sb, "[n%d] ", n)
		}
	}
	sb.WriteString("\n")
	for i, p := range gs.Players {
		marker := "  "
		if i == gs.NextPlayer {
			marker = "> "
		}
		fmt.Fprintf(&sb, "%sP%d points=%d gold=%d held=%v discount=%v phase=%v\n",
			marker, i, p.Points, p.Gold, p.Held, p.Discount, p.Phase)
	}
	return sb.String()
}
