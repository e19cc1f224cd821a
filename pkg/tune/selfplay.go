// Package tune searches for good Weights values two ways: a
// coordinate-descent hill-climb and a genetic search built on eaopt,
// both scored by self-play win rate between a candidate and a baseline.
package tune

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/psettle-go/splendor/pkg/engine"
	"github.com/psettle-go/splendor/pkg/game"
	"github.com/psettle-go/splendor/pkg/runner"
)

// winRateAgainst plays games games of candidate vs baseline, alternating
// the seat each plays to cancel out first-move advantage, and returns
// candidate's average position score (1 win, 0.5 draw, 0 loss). Games
// run concurrently, bounded by the machine's core count, matching how
// a self-play tuning sweep is run elsewhere in this corpus.
func winRateAgainst(candidate, baseline engine.Weights, games int, rng *rand.Rand) float64 {
	if games < 1 {
		games = 1
	}
	seeds := make([]int64, games)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	scores := make([]float64, games)
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for g := 0; g < games; g++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(g int) {
			defer wg.Done()
			defer func() { <-sem }()
			scores[g] = playOneGame(candidate, baseline, rand.New(rand.NewSource(seeds[g])), g%2)
		}(g)
	}
	wg.Wait()

	total := 0.0
	for _, s := range scores {
		total += s
	}
	return total / float64(games)
}

// playOneGame plays one game with candidate seated at candidateSeat and
// baseline at the other seat, returning candidate's position score.
func playOneGame(candidate, baseline engine.Weights, rng *rand.Rand, candidateSeat int) float64 {
	var agents [2]engine.Agent
	agents[candidateSeat] = engine.NewSmartAgent(rand.New(rand.NewSource(rng.Int63())), candidate)
	agents[1-candidateSeat] = engine.NewSmartAgent(rand.New(rand.NewSource(rng.Int63())), baseline)

	gs := game.NewGame(rng)
	r := runner.NewRunner(agents, nil)
	winner, ok := r.RunGame(gs, rng)
	if !ok {
		return 0.5
	}
	if winner == candidateSeat {
		return 1
	}
	return 0
}
