package game

import (
	"fmt"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/gem"
)

// MoveKind discriminates the six move variants.
type MoveKind int

const (
	MoveCollect MoveKind = iota
	MovePurchase
	MoveReserveFaceUp
	MoveReserveFaceDown
	MoveNoble
	MoveReturn
)

func (k MoveKind) String() string {
	switch k {
	case MoveCollect:
		return "Collect"
	case MovePurchase:
		return "Purchase"
	case MoveReserveFaceUp:
		return "ReserveFaceUp"
	case MoveReserveFaceDown:
		return "ReserveFaceDown"
	case MoveNoble:
		return "Noble"
	case MoveReturn:
		return "Return"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Move is a tagged union over the six legal move kinds. Only the field(s)
// relevant to Kind are meaningful; the rest are zero. Move is comparable,
// so the search tree's per-node children map can key on plain equality.
type Move struct {
	Kind MoveKind

	// Collect
	Take gem.Set

	// Return
	Give gem.Set

	// Purchase (board or reserved-hand card identity) and ReserveFaceUp
	// (board card identity).
	Card cards.DevelopmentCard

	// ReserveFaceDown
	Tier cards.Tier

	// Noble
	Noble cards.NobleCard
}

// MakeCollectMove returns a Collect move taking the given gems.
func MakeCollectMove(take gem.Set) Move { return Move{Kind: MoveCollect, Take: take} }

// MakeReturnMove returns a Return move giving back the given gems.
func MakeReturnMove(give gem.Set) Move { return Move{Kind: MoveReturn, Give: give} }

// MakePurchaseMove returns a Purchase move for the named card.
func MakePurchaseMove(card cards.DevelopmentCard) Move {
	return Move{Kind: MovePurchase, Card: card}
}

// MakeReserveFaceUpMove returns a face-up Reserve move for a board card.
func MakeReserveFaceUpMove(card cards.DevelopmentCard) Move {
	return Move{Kind: MoveReserveFaceUp, Card: card}
}

// MakeReserveFaceDownMove returns a face-down Reserve move drawing blind
// from the given tier.
func MakeReserveFaceDownMove(tier cards.Tier) Move {
	return Move{Kind: MoveReserveFaceDown, Tier: tier}
}

// MakeNobleMove returns a Noble move claiming the named noble.
func MakeNobleMove(noble cards.NobleCard) Move { return Move{Kind: MoveNoble, Noble: noble} }

func (m Move) String() string {
	switch m.Kind {
	case MoveCollect:
		return fmt.Sprintf("Collect%v", m.Take)
	case MoveReturn:
		return fmt.Sprintf("Return%v", m.Give)
	case MovePurchase:
		return fmt.Sprintf("Purchase(card=%d)", m.Card)
	case MoveReserveFaceUp:
		return fmt.Sprintf("ReserveFaceUp(card=%d)", m.Card)
	case MoveReserveFaceDown:
		return fmt.Sprintf("ReserveFaceDown(%s)", m.Tier)
	case MoveNoble:
		return fmt.Sprintf("Noble(%d)", m.Noble)
	default:
		return "Move(invalid)"
	}
}
