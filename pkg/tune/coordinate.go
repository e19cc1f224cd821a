package tune

import (
	"math/rand"

	"github.com/psettle-go/splendor/pkg/engine"
)

// CoordinateDescentConfig controls the hill-climb tuner.
type CoordinateDescentConfig struct {
	GamesPerDirection int
	Delta             float64
	MinImprove        float64
	MaxRounds         int
}

func DefaultCoordinateDescentConfig() CoordinateDescentConfig {
	return CoordinateDescentConfig{
		GamesPerDirection: 40,
		Delta:             0.04,
		MinImprove:        0.02,
		MaxRounds:         30,
	}
}

// ProgressFunc is called after every parameter is tried, for a CLI to
// print round-by-round progress.
type ProgressFunc func(paramName string, accepted bool, direction float64, newValue, winRate float64)

// RunCoordinateDescent walks every tunable Weights parameter up and down
// by Delta, keeping whichever direction beats the current best weights
// by more than MinImprove above a coinflip, and repeats until a full round makes no
// change or MaxRounds is reached.
func RunCoordinateDescent(cfg CoordinateDescentConfig, start engine.Weights, rng *rand.Rand, progress ProgressFunc) engine.Weights {
	best := start

	for round := 0; round < cfg.MaxRounds; round++ {
		improved := false
		params := best.Params()

		for pi, p := range params {
			original := *p.Ptr

			plusW := best
			*plusW.Params()[pi].Ptr = engine.Clamp(original+cfg.Delta, p.Min, p.Max)
			minusW := best
			*minusW.Params()[pi].Ptr = engine.Clamp(original-cfg.Delta, p.Min, p.Max)

			plusRate := winRateAgainst(plusW, best, cfg.GamesPerDirection, rng)
			minusRate := winRateAgainst(minusW, best, cfg.GamesPerDirection, rng)

			accepted := false
			switch {
			case plusRate >= minusRate && plusRate > 0.5+cfg.MinImprove:
				best = plusW
				accepted = true
				improved = true
				if progress != nil {
					progress(p.Name, true, cfg.Delta, *plusW.Params()[pi].Ptr, plusRate)
				}
			case minusRate > 0.5+cfg.MinImprove:
				best = minusW
				accepted = true
				improved = true
				if progress != nil {
					progress(p.Name, true, -cfg.Delta, *minusW.Params()[pi].Ptr, minusRate)
				}
			}
			if !accepted && progress != nil {
				rate := plusRate
				if minusRate > rate {
					rate = minusRate
				}
				progress(p.Name, false, 0, original, rate)
			}
		}

		if !improved {
			break
		}
	}
	return best
}
