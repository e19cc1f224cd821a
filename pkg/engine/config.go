package engine

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options configures one MCTS agent instance.
type Options struct {
	// TimeoutSeconds is the per-turn wall-clock search budget.
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
	// UpperConfidenceBound is the UCT exploration constant C.
	UpperConfidenceBound float64 `yaml:"upper_confidence_bound"`
	// SimsPerRollout is the number of playouts run per leaf evaluation.
	SimsPerRollout int `yaml:"sims_per_rollout"`
	// TraceHistory enables tree reuse across turns.
	TraceHistory bool `yaml:"trace_history"`
	// NumWorkers is the root-parallel search worker count. 1 disables
	// root-parallelism for deterministic single-path behavior.
	NumWorkers int `yaml:"num_workers"`
	// Debug is loaded and saved with the other options. The search does
	// not read it: it prints no diagnostics and never changes selection
	// or backup.
	Debug bool `yaml:"debug"`
	// MaxChildrenPerMove caps MoveNode children under stochastic moves.
	// 0 means unbounded (value-join with no cap, the default per the
	// component design's resolved open question).
	MaxChildrenPerMove int `yaml:"max_children_per_move"`
}

// DefaultOptions mirrors the component design's stated defaults.
func DefaultOptions() Options {
	return Options{
		TimeoutSeconds:       0.1,
		UpperConfidenceBound: 0.8,
		SimsPerRollout:       5,
		TraceHistory:         true,
		NumWorkers:           1,
		Debug:                false,
		MaxChildrenPerMove:   0,
	}
}

// Timeout returns TimeoutSeconds as a time.Duration.
func (o Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds * float64(time.Second))
}

// LoadOptions loads options from a YAML file, filling in defaults for
// any field the file omits. Returns DefaultOptions alongside a non-nil
// error if the file is missing or malformed.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), err
	}
	o := DefaultOptions()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return DefaultOptions(), err
	}
	return o, nil
}

// SaveOptions writes o as a readable YAML file.
func SaveOptions(o Options, path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
