package engine

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Weights holds the Smart rollout policy's tunable parameters. Loadable
// and saveable as YAML so a tuning run (coordinate-descent or genetic)
// can persist its result between invocations.
type Weights struct {
	// NearTermCostThreshold bounds which board/reserved cards count
	// toward cardCost: only cards whose cost after the mover's discount
	// totals at most this many gems contribute.
	NearTermCostThreshold float64 `yaml:"near_term_cost_threshold"`

	// PurchaseForDevelopmentCardWeight ("a") scales a purchase's weight
	// by how much it relieves cardCost pressure on its color.
	PurchaseForDevelopmentCardWeight float64 `yaml:"purchase_for_development_card_weight"`

	// PurchaseForNobleCardWeight ("b") scales a purchase's weight by how
	// much it relieves nobleCost pressure on its color.
	PurchaseForNobleCardWeight float64 `yaml:"purchase_for_noble_card_weight"`

	// PurchaseForPointsWeight ("p") scales a purchase's weight by its
	// victory points.
	PurchaseForPointsWeight float64 `yaml:"purchase_for_points_weight"`
}

// DefaultWeights returns the Smart policy's out-of-the-box weights,
// matching the component design's stated defaults (a=2, b=0, p=100,
// threshold=3).
func DefaultWeights() Weights {
	return Weights{
		NearTermCostThreshold:           3,
		PurchaseForDevelopmentCardWeight: 2,
		PurchaseForNobleCardWeight:       0,
		PurchaseForPointsWeight:          100,
	}
}

// WeightParam describes one tunable parameter: its name, a pointer into
// a live Weights value, and the bounds a tuner must clamp it to.
type WeightParam struct {
	Name string
	Ptr  *float64
	Min  float64
	Max  float64
}

// Params returns every tunable parameter, ready for a tuner to iterate.
func (w *Weights) Params() []WeightParam {
	return []WeightParam{
		{"near_term_cost_threshold", &w.NearTermCostThreshold, 0, 10},
		{"purchase_for_development_card_weight", &w.PurchaseForDevelopmentCardWeight, 0, 10},
		{"purchase_for_noble_card_weight", &w.PurchaseForNobleCardWeight, 0, 10},
		{"purchase_for_points_weight", &w.PurchaseForPointsWeight, 0, 500},
	}
}

// Clamp keeps v within [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// LoadWeights loads weights from a YAML file, filling in defaults for
// any field the file omits. Returns DefaultWeights alongside a non-nil
// error if the file is missing or malformed - never a hard failure.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultWeights(), err
	}
	w := DefaultWeights()
	if err := yaml.Unmarshal(data, &w); err != nil {
		return DefaultWeights(), err
	}
	return w, nil
}

// SaveWeights writes w as a readable YAML file.
func SaveWeights(w Weights, path string) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
