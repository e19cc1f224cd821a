package tune

import (
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/psettle-go/splendor/pkg/engine"
)

// GeneticConfig controls RunGeneticSearch.
type GeneticConfig struct {
	PopSize        uint
	NGenerations   uint
	Elite          uint
	MutRate        float64
	CrossRate      float64
	GamesPerFitness int
	TournamentSize uint
}

func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopSize:         24,
		NGenerations:    20,
		Elite:           2,
		MutRate:         0.3,
		CrossRate:       0.7,
		GamesPerFitness: 24,
		TournamentSize:  3,
	}
}

// weightsGenome wraps a Weights value so eaopt can evolve it. Fitness is
// -winRateAgainst(baseline), negated because eaopt.GA.Minimize hunts for
// the lowest fitness and a tuning run wants the highest win rate.
type weightsGenome struct {
	weights  engine.Weights
	baseline engine.Weights
	games    int
	rng      *rand.Rand
}

func (g *weightsGenome) Evaluate() (float64, error) {
	return -winRateAgainst(g.weights, g.baseline, g.games, g.rng), nil
}

// Mutate perturbs one random tunable parameter within its bounds,
// mirroring the coordinate-descent tuner's single-parameter step but
// drawing both the parameter and the step size at random.
func (g *weightsGenome) Mutate(rng *rand.Rand) {
	params := g.weights.Params()
	p := params[rng.Intn(len(params))]
	span := p.Max - p.Min
	delta := (rng.Float64()*2 - 1) * span * 0.1
	*p.Ptr = engine.Clamp(*p.Ptr+delta, p.Min, p.Max)
}

// Crossover blends this genome's parameters with other's at a random
// mixing ratio, in place, the way a real-valued GA typically recombines
// continuous genes.
func (g *weightsGenome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	o, ok := other.(*weightsGenome)
	if !ok {
		return
	}
	t := rng.Float64()
	mine := g.weights.Params()
	theirs := o.weights.Params()
	for i := range mine {
		a, b := *mine[i].Ptr, *theirs[i].Ptr
		*mine[i].Ptr = engine.Clamp(a+t*(b-a), mine[i].Min, mine[i].Max)
		*theirs[i].Ptr = engine.Clamp(b+t*(a-b), theirs[i].Min, theirs[i].Max)
	}
}

func (g *weightsGenome) Clone() eaopt.Genome {
	return &weightsGenome{
		weights:  g.weights,
		baseline: g.baseline,
		games:    g.games,
		rng:      rand.New(rand.NewSource(g.rng.Int63())),
	}
}

// RunGeneticSearch evolves a population of Weights against baseline for
// cfg.NGenerations and returns the fittest individual found, taken from
// the eaopt hall of fame. On an eaopt error it returns seed with the error.
func RunGeneticSearch(cfg GeneticConfig, seed engine.Weights, baseline engine.Weights, rng *rand.Rand) (engine.Weights, error) {
	gaConfig := eaopt.GAConfig{
		NPops:        1,
		PopSize:      cfg.PopSize,
		NGenerations: cfg.NGenerations,
		HofSize:      1,
		Model: tournamentElite{
			Selector:  eaopt.SelTournament{NContestants: cfg.TournamentSize},
			Elite:     cfg.Elite,
			MutRate:   cfg.MutRate,
			CrossRate: cfg.CrossRate,
		},
		RNG: rng,
	}

	ga, err := gaConfig.NewGA()
	if err != nil {
		return seed, err
	}

	first := true
	err = ga.Minimize(func(rng *rand.Rand) eaopt.Genome {
		w := seed
		if !first {
			// Every individual after the first starts from a uniformly
			// random point within each parameter's bounds so the initial
			// population isn't a single repeated point.
			for _, p := range w.Params() {
				*p.Ptr = p.Min + rng.Float64()*(p.Max-p.Min)
			}
		}
		first = false
		return &weightsGenome{
			weights:  w,
			baseline: baseline,
			games:    cfg.GamesPerFitness,
			rng:      rand.New(rand.NewSource(rng.Int63())),
		}
	})
	if err != nil {
		return seed, err
	}

	best := ga.HallOfFame[0].Genome.(*weightsGenome)
	return best.weights, nil
}
