// Command splendor plays, benchmarks, and tunes the IS-MCTS Splendor
// engine from the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/psettle-go/splendor/pkg/engine"
	"github.com/psettle-go/splendor/pkg/game"
	"github.com/psettle-go/splendor/pkg/runner"
	"github.com/psettle-go/splendor/pkg/tune"
	"github.com/psettle-go/splendor/pkg/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "splendor: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cmd := &cli.Command{
		Name:  "splendor",
		Usage: "play and tune the IS-MCTS Splendor engine",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
			&cli.StringFlag{Name: "options", Value: "options.yaml", Usage: "search Options YAML path"},
			&cli.StringFlag{Name: "weights", Value: "weights.yaml", Usage: "rollout Weights YAML path"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return ctx, nil
		},
		Commands: []*cli.Command{
			playCommand(),
			benchCommand(),
			tuneCommand(),
		},
	}

	return cmd.Run(context.Background(), os.Args)
}

func loadOptions(cmd *cli.Command) engine.Options {
	opts, err := engine.LoadOptions(cmd.String("options"))
	if err != nil {
		slog.Debug("using default search options", "path", cmd.String("options"), "err", err)
	}
	return opts
}

func loadWeights(cmd *cli.Command) engine.Weights {
	w, err := engine.LoadWeights(cmd.String("weights"))
	if err != nil {
		slog.Debug("using default rollout weights", "path", cmd.String("weights"), "err", err)
	}
	return w
}

// playCommand seats a human against the search engine.
func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play a game against the engine",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "human-first", Value: true, Usage: "human plays seat 0"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := loadOptions(cmd)
			weights := loadWeights(cmd)
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			humanSeat := 0
			if !cmd.Bool("human-first") {
				humanSeat = 1
			}
			kt := game.NewKnowledgeTracker(1 - humanSeat)
			search := engine.NewSearch(opts, engine.NewSmartAgent(rng, weights), kt, rng)

			human := view.NewHumanAgent(os.Stdin, os.Stdout)
			renderer := view.NewRenderer(os.Stdout)

			var agents [2]engine.Agent
			agents[humanSeat] = human
			agents[1-humanSeat] = engine.NewSearchAgent(search)

			gs := game.NewGame(rng)
			r := runner.NewRunner(agents, renderer)
			winner, ok := r.RunGame(gs, rng)
			if ok {
				fmt.Printf("\nSeat %d wins.\n", winner)
			} else {
				fmt.Println("\nGame ended without a winner.")
			}
			return nil
		},
	}
}

// benchCommand pits two Options/Weights configurations against each
// other over a batch of games and reports the first seat's win rate.
// Games are independent (fresh agents, fresh GameState every game), so
// they run across a worker pool instead of one at a time.
func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "play the engine against itself and report a win rate",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: 20, Usage: "number of games to play"},
			&cli.IntFlag{Name: "threads", Value: 1, Usage: "number of games to run concurrently"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := loadOptions(cmd)
			weights := loadWeights(cmd)
			games := int(cmd.Int("games"))
			threads := int(cmd.Int("threads"))
			if threads < 1 {
				threads = 1
			}
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			bar := progressbar.NewOptions(games,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetItsString("games"),
			)

			// Each game needs its own independent *rand.Rand; deriving
			// every seed up front from the single dispatch-loop rng keeps
			// the run reproducible regardless of how the goroutines race.
			seeds := make([]int64, games)
			for i := range seeds {
				seeds[i] = rng.Int63()
			}

			var wins int
			var mu sync.Mutex
			var wg sync.WaitGroup
			sem := make(chan struct{}, threads)
			for g := 0; g < games; g++ {
				wg.Add(1)
				sem <- struct{}{}
				go func(seed int64) {
					defer wg.Done()
					defer func() { <-sem }()

					gameRng := rand.New(rand.NewSource(seed))
					seat0KT := game.NewKnowledgeTracker(0)
					seat1KT := game.NewKnowledgeTracker(1)
					var agents [2]engine.Agent
					agents[0] = engine.NewSearchAgent(engine.NewSearch(opts, engine.NewSmartAgent(gameRng, weights), seat0KT, gameRng))
					agents[1] = engine.NewSearchAgent(engine.NewSearch(opts, engine.NewSmartAgent(gameRng, weights), seat1KT, gameRng))

					gs := game.NewGame(gameRng)
					r := runner.NewRunner(agents, nil)
					winner, ok := r.RunGame(gs, gameRng)

					mu.Lock()
					if ok && winner == 0 {
						wins++
					}
					mu.Unlock()
					bar.Add(1)
				}(seeds[g])
			}
			wg.Wait()

			fmt.Printf("\nseat 0 win rate: %.1f%% (%d/%d)\n", 100*float64(wins)/float64(games), wins, games)
			return nil
		},
	}
}

// tuneCommand runs either the coordinate-descent or genetic Weights
// search and writes the result back to the weights file.
func tuneCommand() *cli.Command {
	return &cli.Command{
		Name:  "tune",
		Usage: "search for better rollout Weights via self-play",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "method", Value: "coordinate", Usage: "coordinate or genetic"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			weights := loadWeights(cmd)
			baseline := weights
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			var best engine.Weights
			switch cmd.String("method") {
			case "genetic":
				var err error
				best, err = tune.RunGeneticSearch(tune.DefaultGeneticConfig(), weights, baseline, rng)
				if err != nil {
					return fmt.Errorf("genetic search: %w", err)
				}
			default:
				best = tune.RunCoordinateDescent(tune.DefaultCoordinateDescentConfig(), weights, rng,
					func(name string, accepted bool, direction, newValue, winRate float64) {
						if accepted {
							fmt.Printf("  %-40s -> %.4f (win rate %.1f%%)\n", name, newValue, winRate*100)
						}
					})
			}

			if err := engine.SaveWeights(best, cmd.String("weights")); err != nil {
				return fmt.Errorf("saving weights: %w", err)
			}
			fmt.Printf("tuned weights written to %s\n", cmd.String("weights"))
			return nil
		},
	}
}
