// Command life runs a life-like cellular automaton on a toroidal grid,
// either animated (terminal or SDL window) or headless as a throughput
// benchmark.
//
// Benchmark mode is selected with -view none -steps N and prints a single
// report line:
//
//	steps=1000 width=512 height=512 threads=8 strategy=rows time_ms=... per_step_ms=... per_cell_us=...
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/StephenZhaoyi/Parallel-Life/config"
	"github.com/StephenZhaoyi/Parallel-Life/life"
	"github.com/StephenZhaoyi/Parallel-Life/render"
)

func main() {
	def := config.Default()

	configPath := flag.String("config", "", "path to YAML run configuration")
	width := flag.Int("width", def.Width, "grid width")
	height := flag.Int("height", def.Height, "grid height")
	steps := flag.Int("steps", def.Steps, "generations to run (<= 0: until quit)")
	rule := flag.String("rule", def.Rule, "life-like rulestring, e.g. B3/S23")
	prob := flag.Float64("prob", def.LiveProbability, "initial live cell probability")
	seed := flag.Int64("seed", 0, "random seed (0: time-based)")
	threads := flag.Int("threads", 0, "worker goroutines (0: all CPUs)")
	strategy := flag.String("strategy", def.Strategy, "decomposition: sequential, rows, vector or blocks")
	blockRows := flag.Int("block-rows", 0, "rows per task for the blocks strategy")
	view := flag.String("view", "terminal", "display: terminal, sdl or none")
	fps := flag.Int("fps", def.FPS, "animation frames per second")
	loadPath := flag.String("load", "", "load initial state from a PGM snapshot")
	savePath := flag.String("save", "", "write final state to a PGM snapshot")
	flag.Parse()

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "steps":
			cfg.Steps = *steps
		case "rule":
			cfg.Rule = *rule
		case "prob":
			cfg.LiveProbability = *prob
		case "seed":
			cfg.Seed = *seed
		case "threads":
			cfg.Threads = *threads
		case "strategy":
			cfg.Strategy = *strategy
		case "block-rows":
			cfg.BlockRows = *blockRows
		case "fps":
			cfg.FPS = *fps
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	rules, warn := life.ParseRule(cfg.Rule)
	if warn != nil {
		log.Printf("warning: %v", warn)
	}
	strat, err := life.ParseStrategy(cfg.Strategy)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var grid *life.Grid
	if *loadPath != "" {
		if grid, err = life.ReadPGM(*loadPath); err != nil {
			log.Fatalf("loading snapshot: %v", err)
		}
		cfg.Width, cfg.Height = grid.Width, grid.Height
	} else {
		if grid, err = life.NewGrid(cfg.Width, cfg.Height); err != nil {
			log.Fatalf("invalid configuration: %v", err)
		}
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		grid.Randomize(cfg.LiveProbability, rand.New(rand.NewSource(cfg.Seed)))
	}

	world := life.NewWorld(grid, rules, life.Config{
		Strategy:  strat,
		Workers:   cfg.Threads,
		BlockRows: cfg.BlockRows,
	})

	if *view == "none" && cfg.Steps > 0 {
		runBenchmark(world, cfg)
	} else {
		runAnimated(world, cfg, *view)
	}

	if *savePath != "" {
		if err := life.WritePGM(world.Grid(), *savePath); err != nil {
			log.Fatalf("saving snapshot: %v", err)
		}
		log.Printf("final state written to %s", *savePath)
	}
}

// runBenchmark times a fixed number of generations with no display.
func runBenchmark(world *life.World, cfg config.Config) {
	start := time.Now()
	for i := 0; i < cfg.Steps; i++ {
		world.Step()
	}
	elapsed := time.Since(start)

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	ms := float64(elapsed.Microseconds()) / 1000.0
	cells := float64(cfg.Steps) * float64(cfg.Width) * float64(cfg.Height)
	fmt.Printf("steps=%d width=%d height=%d threads=%d strategy=%s time_ms=%.3f per_step_ms=%.6f per_cell_us=%.6f\n",
		cfg.Steps, cfg.Width, cfg.Height, threads, cfg.Strategy,
		ms, ms/float64(cfg.Steps), ms*1000.0/cells)
}

// runAnimated steps at a fixed frame rate until the step budget is spent
// or the renderer reports quit.
func runAnimated(world *life.World, cfg config.Config, view string) {
	var renderer render.Renderer
	var err error
	switch view {
	case "terminal":
		renderer, err = render.NewTerminal()
	case "sdl":
		renderer, err = render.NewSDL(cfg.Width, cfg.Height, 8)
	case "none":
		renderer = nil
	default:
		log.Fatalf("invalid configuration: unknown view %q", view)
	}
	if err != nil {
		log.Fatalf("opening display: %v", err)
	}
	if renderer != nil {
		defer renderer.Close()
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for cfg.Steps <= 0 || world.Generation() < cfg.Steps {
		if renderer != nil {
			if err := renderer.Render(world.Grid()); err != nil {
				log.Fatalf("rendering: %v", err)
			}
			select {
			case <-renderer.Quit():
				return
			case <-ticker.C:
			}
		}
		world.Step()
	}
	if renderer != nil {
		// Show the final generation before exiting.
		_ = renderer.Render(world.Grid())
	}
}
