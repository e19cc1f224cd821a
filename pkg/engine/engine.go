// Package engine implements determinized information-set Monte Carlo
// tree search over Splendor positions: re-determinizing the hidden
// reserved-hand information on every tree visit, searching with a
// two-node-type tree (stateNode for the player to move, moveNode for a
// chosen move whose resulting position is itself sampled rather than
// fixed), and falling back to a rollout policy at the tree's frontier.
package engine

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/psettle-go/splendor/pkg/game"
)

// stateNode is one information-set position for the player recorded in
// mover. Its children are keyed directly by game.Move since Move is a
// plain comparable struct - no string-encoding step required.
type stateNode struct {
	mover    int
	visits   int
	children map[game.Move]*moveNode
}

func newStateNode(mover int) *stateNode {
	return &stateNode{mover: mover, children: map[game.Move]*moveNode{}}
}

// moveNode is one move choice available from a stateNode. Because
// applying a move can draw a random replacement card, a single move can
// lead to many distinct concrete successor positions; outcomes records
// the ones sampled so far, keyed by the resulting GameState's own
// equality. MaxChildrenPerMove bounds how many distinct outcomes a
// moveNode tracks before reusing one instead of growing further.
type moveNode struct {
	move       game.Move
	mover      int
	visits     int
	totalValue float64
	outcomes   map[game.GameState]*stateNode
}

// MoveEval is one candidate move's aggregated search statistics.
type MoveEval struct {
	Move    game.Move
	WinRate float64
	Visits  int
}

// SearchResult is BestMove's return value: the chosen move plus every
// candidate's statistics, most-visited first.
type SearchResult struct {
	Best    game.Move
	WinRate float64
	Visits  int
	Details []MoveEval
}

// workerState is one root-parallel worker's independent tree and RNG.
// Workers never share a node, so no locking is needed between them.
type workerState struct {
	rng  *rand.Rand
	root *stateNode
}

// Search runs determinized IS-MCTS against one player's information
// set. A Search is reusable across an entire game: with TraceHistory
// enabled, Advance re-roots each worker's tree at the subtree reached by
// the move actually played, carrying the earlier search's statistics
// forward instead of discarding them.
type Search struct {
	Options Options
	Policy  Agent
	KT      *game.KnowledgeTracker

	workers []*workerState
}

// NewSearch builds a Search with opts.NumWorkers independent trees, each
// seeded from rng so the overall run stays reproducible for a fixed seed
// even though the workers themselves run concurrently.
func NewSearch(opts Options, policy Agent, kt *game.KnowledgeTracker, rng *rand.Rand) *Search {
	n := opts.NumWorkers
	if n < 1 {
		n = 1
	}
	workers := make([]*workerState, n)
	for i := range workers {
		workers[i] = &workerState{rng: rand.New(rand.NewSource(rng.Int63()))}
	}
	return &Search{Options: opts, Policy: policy, KT: kt, workers: workers}
}

// BestMove searches infoSet - which must be the observing player's own
// masked view, i.e. the result of GameState.Mask(mover) - and returns
// the move with the most root visits once the time budget expires.
func (s *Search) BestMove(infoSet *game.GameState) SearchResult {
	mover := infoSet.GetNextPlayer()
	for _, w := range s.workers {
		w.root = s.reanchor(w.root, infoSet, mover)
	}

	if len(s.workers) == 1 {
		s.runWorker(s.workers[0], infoSet)
	} else {
		var wg sync.WaitGroup
		for _, w := range s.workers {
			wg.Add(1)
			go func(w *workerState) {
				defer wg.Done()
				s.runWorker(w, infoSet)
			}(w)
		}
		wg.Wait()
	}
	return s.aggregate()
}

// Advance re-roots every worker's tree one ply below the move actually
// played, picking the most-visited sampled outcome as the reentry point
// since the real successor's exact hidden fill - e.g. the card a
// face-down reserve draws - isn't known yet at the point this is called
// from OnTurn, before the real GameState.DoMove runs. A worker with no
// tree yet, or whose chosen move was never sampled, starts fresh next
// call. The resulting root represents the opponent about to move; the
// next BestMove call re-anchors one ply further once the opponent's
// actual response is known, via reanchor.
func (s *Search) Advance(move game.Move) {
	for _, w := range s.workers {
		if w.root == nil {
			continue
		}
		mn, ok := w.root.children[move]
		if !ok || len(mn.outcomes) == 0 {
			w.root = nil
			continue
		}
		var best *stateNode
		bestVisits := -1
		for _, sn := range mn.outcomes {
			if sn.visits > bestVisits {
				bestVisits = sn.visits
				best = sn
			}
		}
		w.root = best
	}
}

// reanchor finds the tree position matching infoSet two plies below
// root - our prior move (already applied by Advance), then the
// opponent's actual response - by looking up infoSet itself as an
// outcomes key: selectExpand now joins moveNode successors on their
// masked information-set form, the same form infoSet arrives in, so a
// match is a direct map lookup. No match (a different opponent reply
// than any sampled, a multi-step opponent turn deeper than one ply, a
// cold tree, or TraceHistory off) falls back to a fresh root rather
// than ever reusing a node whose mover isn't the caller.
func (s *Search) reanchor(root *stateNode, infoSet *game.GameState, mover int) *stateNode {
	if root == nil || !s.Options.TraceHistory {
		return newStateNode(mover)
	}
	if root.mover == mover {
		return root
	}
	for _, mn := range root.children {
		if sn, ok := mn.outcomes[*infoSet]; ok && sn.mover == mover {
			return sn
		}
	}
	return newStateNode(mover)
}

func (s *Search) runWorker(w *workerState, infoSet *game.GameState) {
	hasDeadline := s.Options.TimeoutSeconds > 0
	deadline := time.Now().Add(s.Options.Timeout())
	maxIterations := 1
	if !hasDeadline {
		maxIterations = 2000
	}

	for iter := 0; iter < maxIterations || hasDeadline; iter++ {
		if hasDeadline && iter > 0 && time.Now().After(deadline) {
			break
		}
		if !hasDeadline && iter >= maxIterations {
			break
		}

		det := s.determinizeState(infoSet, w.rng)
		mn, leaf, path := s.selectExpand(w.root, &det, w.rng, w.root.mover)

		var value float64
		if mn == nil {
			value = s.outcomeValue(&leaf, w.root.mover)
		} else {
			s.Policy.OnSetup(&leaf, w.root.mover)
			value = s.rollout(leaf, w.root.mover, w.rng)
		}
		s.backup(path, value, w.root.mover)
	}
}

// determinizeState resolves infoSet's hidden tokens into a concrete
// state, biasing the searching player's own knowledge of the opponent's
// hidden reservation when a KnowledgeTracker is attached.
func (s *Search) determinizeState(infoSet *game.GameState, rng *rand.Rand) game.GameState {
	if infoSet.Determinized {
		return infoSet.Clone()
	}
	if s.KT == nil {
		return infoSet.Determinize(rng)
	}

	out := infoSet.Clone()
	players := out.GetPlayers()
	for seat := range players {
		p := players[seat]
		for i := range p.Reserved {
			if !p.Reserved[i].Card.IsHidden() {
				continue
			}
			tier := p.Reserved[i].Card.HiddenTier()
			deck := out.Decks.At(tier)
			if seat == s.KT.MyPlayerID {
				p.Reserved[i].Card = deck.Draw(rng)
			} else {
				p.Reserved[i].Card = s.KT.DrawBiased(deck, rng)
			}
		}
		out.Players[seat] = p
	}
	out.Determinized = true
	return out
}

// selectExpand walks from node to a frontier: either a move whose
// moveNode has never existed before (created on the spot and returned
// as the leaf, unexplored outcomes and all) or a terminal position. path
// accumulates every moveNode traversed, in root-to-leaf order, for
// backup to unwind. observer is the searching player: a moveNode's
// successor is joined into its outcomes by Mask(observer) rather than
// by the raw concrete state, so two samples differing only in a detail
// observer's own information set can't see - the opponent's hidden
// reservation draw - collapse into the same information-set node
// instead of growing the tree once per determinization.
func (s *Search) selectExpand(node *stateNode, gs *game.GameState, rng *rand.Rand, observer int) (*moveNode, game.GameState, []*moveNode) {
	cur := gs.Clone()
	var path []*moveNode

	for {
		node.visits++
		if cur.IsTerminal() {
			return nil, cur, path
		}

		moves := cur.GetMoves()
		var unexplored []game.Move
		for _, m := range moves {
			if _, ok := node.children[m]; !ok {
				unexplored = append(unexplored, m)
			}
		}

		if len(unexplored) > 0 {
			m := unexplored[rng.Intn(len(unexplored))]
			mn := &moveNode{move: m, mover: cur.GetNextPlayer(), outcomes: map[game.GameState]*stateNode{}}
			node.children[m] = mn
			cur.DoMove(m, rng)
			path = append(path, mn)
			return mn, cur, path
		}

		mn := s.ucbSelect(node, moves)
		path = append(path, mn)
		cur.DoMove(mn.move, rng)

		key := cur.Mask(observer)
		child, ok := mn.outcomes[key]
		if !ok {
			cap := s.Options.MaxChildrenPerMove
			if cap > 0 && len(mn.outcomes) >= cap {
				child = randomOutcome(mn, rng)
			} else {
				child = newStateNode(cur.GetNextPlayer())
				mn.outcomes[key] = child
			}
		}
		node = child
	}
}

// ucbSelect picks, among the children whose move is in moves (the moves
// legal in the current determinization), the one maximizing UCT, ties
// going to the earliest in moves. A moveNode's exploit term is
// its own mover's average value, so selection never needs to flip sign
// between the two players' turns - each mover simply maximizes its own
// stored average.
func (s *Search) ucbSelect(node *stateNode, moves []game.Move) *moveNode {
	var best *moveNode
	bestScore := math.Inf(-1)
	for _, m := range moves {
		mn, ok := node.children[m]
		if !ok {
			continue
		}
		if mn.visits == 0 {
			return mn
		}
		exploit := mn.totalValue / float64(mn.visits)
		explore := s.Options.UpperConfidenceBound * math.Sqrt(math.Log(float64(node.visits))/float64(mn.visits))
		score := exploit + explore
		if score > bestScore {
			bestScore = score
			best = mn
		}
	}
	return best
}

// randomOutcome picks an existing sampled outcome uniformly, used once a
// moveNode has hit MaxChildrenPerMove and a freshly drawn successor must
// join an existing bucket rather than grow the tree further.
func randomOutcome(mn *moveNode, rng *rand.Rand) *stateNode {
	idx := rng.Intn(len(mn.outcomes))
	i := 0
	for _, sn := range mn.outcomes {
		if i == idx {
			return sn
		}
		i++
	}
	panic("engine: randomOutcome unreachable")
}

// rollout plays SimsPerRollout independent random-policy games from
// start and averages the result, evaluated from perspective's point of
// view.
func (s *Search) rollout(start game.GameState, perspective int, rng *rand.Rand) float64 {
	sims := s.Options.SimsPerRollout
	if sims < 1 {
		sims = 1
	}
	total := 0.0
	for i := 0; i < sims; i++ {
		sim := start.Clone()
		for steps := 0; steps < 500 && !sim.IsTerminal(); steps++ {
			moves := sim.GetMoves()
			mv := s.Policy.OnTurn(&sim, moves)
			sim.DoMove(mv, rng)
		}
		total += s.outcomeValue(&sim, perspective)
	}
	return total / float64(sims)
}

// outcomeValue scores a position from perspective's point of view: 1 for
// a win, 0 for a loss, 0.5 for a draw, or - for a non-terminal position
// reached only by the rollout step cap - a point-differential estimate
// clamped to [0, 1].
func (s *Search) outcomeValue(gs *game.GameState, perspective int) float64 {
	if !gs.IsTerminal() {
		players := gs.GetPlayers()
		diff := float64(players[perspective].Points - players[1-perspective].Points)
		v := 0.5 + diff/30.0
		return math.Max(0, math.Min(1, v))
	}
	winner, ok := gs.GetWinner()
	if !ok {
		return 0.5
	}
	if winner == perspective {
		return 1
	}
	return 0
}

// backup unwinds path. value is always the root mover's win probability
// for the playout; each moveNode stores its own mover's win probability,
// so a node whose mover differs from rootMover (every other ply, since
// movers alternate) is credited 1-value instead.
func (s *Search) backup(path []*moveNode, value float64, rootMover int) {
	for _, mn := range path {
		mn.visits++
		v := value
		if mn.mover != rootMover {
			v = 1 - v
		}
		mn.totalValue += v
	}
}

// aggregate merges every worker's root children by move and returns the
// most-visited one, with every candidate's stats for diagnostics.
func (s *Search) aggregate() SearchResult {
	type acc struct {
		move   game.Move
		visits int
		value  float64
	}
	merged := map[game.Move]*acc{}
	for _, w := range s.workers {
		if w.root == nil {
			continue
		}
		for m, mn := range w.root.children {
			a, ok := merged[m]
			if !ok {
				a = &acc{move: m}
				merged[m] = a
			}
			a.visits += mn.visits
			a.value += mn.totalValue
		}
	}

	details := make([]MoveEval, 0, len(merged))
	for _, a := range merged {
		wr := 0.0
		if a.visits > 0 {
			wr = a.value / float64(a.visits)
		}
		details = append(details, MoveEval{Move: a.move, WinRate: wr, Visits: a.visits})
	}
	for i := 0; i < len(details); i++ {
		for j := i + 1; j < len(details); j++ {
			if details[j].Visits > details[i].Visits ||
				(details[j].Visits == details[i].Visits && details[j].WinRate > details[i].WinRate) {
				details[i], details[j] = details[j], details[i]
			}
		}
	}

	if len(details) == 0 {
		return SearchResult{}
	}
	best := details[0]
	return SearchResult{Best: best.Move, WinRate: best.WinRate, Visits: best.Visits, Details: details}
}
