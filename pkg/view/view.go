// Package view renders Splendor positions to a terminal and reads moves
// back from a human player, the two halves of the CLI's play mode.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/psettle-go/splendor/pkg/cards"
	"github.com/psettle-go/splendor/pkg/game"
)

// Renderer writes a GameState and its legal moves to an io.Writer using
// tabwriter-aligned columns, the way a terminal board display wants.
type Renderer struct {
	Out io.Writer
}

func NewRenderer(out io.Writer) *Renderer { return &Renderer{Out: out} }

// ShowState prints the table (gem stock, revealed grid, nobles) and both
// players' holdings.
func (r *Renderer) ShowState(gs *game.GameState) {
	fmt.Fprintf(r.Out, "\n=== Splendor: to move P%d ===\n", gs.GetNextPlayer())

	tw := tabwriter.NewWriter(r.Out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "Gems\t%v\tGold\t%d\n", gs.GetAvailable(), gs.GetAvailableGold())
	tw.Flush()

	revealed := gs.GetRevealedDevelopmentCards()
	for tier := cards.Tier0; tier <= cards.Tier2; tier++ {
		fmt.Fprintf(r.Out, "Tier%d: ", tier)
		var cols []string
		for _, c := range revealed[tier] {
			if c.Valid() {
				cols = append(cols, fmt.Sprintf("[#%d pts=%d %v cost=%v]", c, c.Points(), c.Color(), c.Cost()))
			} else {
				cols = append(cols, "[empty]")
			}
		}
		fmt.Fprintln(r.Out, strings.Join(cols, " "))
	}

	fmt.Fprint(r.Out, "Nobles: ")
	var nobles []string
	for _, n := range gs.GetNobles() {
		if n.Valid() {
			nobles = append(nobles, fmt.Sprintf("[#%d cost=%v]", n, n.Cost()))
		}
	}
	fmt.Fprintln(r.Out, strings.Join(nobles, " "))

	tw = tabwriter.NewWriter(r.Out, 0, 2, 2, ' ', 0)
	for i, p := range gs.GetPlayers() {
		marker := " "
		if i == gs.GetNextPlayer() {
			marker = ">"
		}
		fmt.Fprintf(tw, "%s P%d\tpoints=%d\tgold=%d\theld=%v\tdiscount=%v\tphase=%v\treserved=%v\n",
			marker, i, p.Points, p.Gold, p.Held, p.Discount, p.Phase, reservedSummary(p))
	}
	tw.Flush()
}

func reservedSummary(p game.Player) string {
	var parts []string
	for _, slot := range p.Reserved {
		switch {
		case slot.Card.IsHidden():
			parts = append(parts, fmt.Sprintf("hidden tier %d", int(slot.Card.HiddenTier())))
		case !slot.Card.Valid():
			continue
		case slot.Revealed:
			parts = append(parts, fmt.Sprintf("#%d", slot.Card))
		default:
			parts = append(parts, "?")
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ShowTurn announces which seat is about to act, matching the Runner's
// View contract.
func (r *Renderer) ShowTurn(gs *game.GameState, seatID int) {
	fmt.Fprintf(r.Out, "\n--- P%d's turn ---\n", seatID)
}

// ShowMoveOptions numbers the legal moves so a human can pick by index.
func (r *Renderer) ShowMoveOptions(moves []game.Move) {
	for i, m := range moves {
		fmt.Fprintf(r.Out, "  %2d. %s\n", i+1, FormatMove(m))
	}
}

// ShowResult announces the final outcome.
func (r *Renderer) ShowResult(gs *game.GameState) {
	winner, ok := gs.GetWinner()
	if !ok {
		fmt.Fprintln(r.Out, "\nGame over: draw.")
		return
	}
	fmt.Fprintf(r.Out, "\nGame over: P%d wins.\n", winner)
}

// FormatMove renders a Move the way ShowMoveOptions and human-input
// error messages reference it.
func FormatMove(m game.Move) string {
	switch m.Kind {
	case game.MoveCollect:
		return fmt.Sprintf("Collect %v", m.Take)
	case game.MoveReturn:
		return fmt.Sprintf("Return %v", m.Give)
	case game.MovePurchase:
		return fmt.Sprintf("Purchase card #%d", m.Card)
	case game.MoveReserveFaceUp:
		return fmt.Sprintf("Reserve card #%d (face up)", m.Card)
	case game.MoveReserveFaceDown:
		return fmt.Sprintf("Reserve blind from %s", m.Tier)
	case game.MoveNoble:
		return fmt.Sprintf("Claim noble #%d", m.Noble)
	default:
		return "invalid move"
	}
}
