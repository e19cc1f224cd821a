package view

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/psettle-go/splendor/pkg/game"
)

// Reader reads interactive input from a stream, typically os.Stdin.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

func (r *Reader) readLine(prompt string) string {
	fmt.Fprint(r.out, prompt)
	if r.scanner.Scan() {
		return strings.TrimSpace(r.scanner.Text())
	}
	return "quit"
}

// HumanAgent implements engine.Agent by printing the position and legal
// moves, then reprompting until the input resolves to one of them. "help"
// and "status" are handled as zero-cost commands that reprompt without
// consuming a turn, the same shim shape the board display uses elsewhere
// in the package.
type HumanAgent struct {
	Reader   *Reader
	Renderer *Renderer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{Reader: NewReader(in, out), Renderer: NewRenderer(out)}
}

func (h *HumanAgent) OnSetup(gs *game.GameState, seatID int) {}

func (h *HumanAgent) OnTurn(gs *game.GameState, moves []game.Move) game.Move {
	h.Renderer.ShowState(gs)
	h.Renderer.ShowMoveOptions(moves)

	for {
		input := h.Reader.readLine("Pick a move (number), or 'help'/'status'/'quit': ")
		switch strings.ToLower(input) {
		case "help":
			fmt.Fprintln(h.Reader.out, "Enter the number of the move you want to play.")
			continue
		case "status":
			h.Renderer.ShowState(gs)
			h.Renderer.ShowMoveOptions(moves)
			continue
		case "quit", "exit":
			panic("view: human player quit")
		}

		idx, err := strconv.Atoi(input)
		if err != nil || idx < 1 || idx > len(moves) {
			fmt.Fprintf(h.Reader.out, "Not a valid move number (1-%d). Try again.\n", len(moves))
			continue
		}
		return moves[idx-1]
	}
}
