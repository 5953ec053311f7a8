package life

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Strategy selects how a generation step is decomposed across workers.
type Strategy int

const (
	// Sequential runs the whole pass on the calling goroutine.
	Sequential Strategy = iota
	// Rows statically splits contiguous row ranges across workers.
	Rows
	// Vector uses the row split with a branchless, modulo-free inner loop
	// over interior columns.
	Vector
	// Blocks queues fixed-height row blocks consumed by a worker pool.
	Blocks
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Rows:
		return "rows"
	case Vector:
		return "vector"
	case Blocks:
		return "blocks"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "sequential", "seq":
		return Sequential, nil
	case "rows", "row":
		return Rows, nil
	case "vector", "vec":
		return Vector, nil
	case "blocks", "block":
		return Blocks, nil
	}
	return Sequential, fmt.Errorf("unknown strategy %q (want sequential, rows, vector or blocks)", name)
}

const defaultBlockRows = 16

// Config fixes the decomposition for the lifetime of a World.
type Config struct {
	Strategy  Strategy
	Workers   int // worker goroutines per pass; <= 0 means runtime.NumCPU()
	BlockRows int // rows per block task for Blocks; <= 0 means 16
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func (c Config) blockRows() int {
	if c.BlockRows > 0 {
		return c.BlockRows
	}
	return defaultBlockRows
}

// World owns the two grid buffers of a running simulation. During a step
// the current buffer is read-only and the next buffer is written by
// exactly one worker per cell; Step then swaps the two roles, so no cell
// data is ever copied between generations.
type World struct {
	cur  *Grid
	next *Grid
	rule Rule
	cfg  Config
	gen  int
}

// NewWorld wraps g as the current generation and allocates the back buffer.
func NewWorld(g *Grid, r Rule, cfg Config) *World {
	next, _ := NewGrid(g.Width, g.Height)
	return &World{cur: g, next: next, rule: r, cfg: cfg}
}

// Grid returns the current generation. The returned grid is only valid to
// read until the next Step call.
func (w *World) Grid() *Grid { return w.cur }

// Rule returns the rule the world was built with.
func (w *World) Rule() Rule { return w.rule }

// Generation returns the number of completed steps.
func (w *World) Generation() int { return w.gen }

// Step advances the world one generation. Every cell of the next buffer
// is recomputed from the current buffer only, then the buffers swap.
// Step returns after the whole pass is complete; passes never overlap.
func (w *World) Step() {
	switch w.cfg.Strategy {
	case Rows:
		stepRowsParallel(w.cur, w.next, w.rule, w.cfg.workers(), stepRange)
	case Vector:
		stepRowsParallel(w.cur, w.next, w.rule, w.cfg.workers(), stepRangeVector)
	case Blocks:
		stepBlocks(w.cur, w.next, w.rule, w.cfg.workers(), w.cfg.blockRows())
	default:
		stepRange(w.cur, w.next, w.rule, 0, w.cur.Height)
	}
	w.cur, w.next = w.next, w.cur
	w.gen++
}

// stepRange recomputes rows [y0, y1) of next from cur with modulo wrap.
func stepRange(cur, next *Grid, r Rule, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < cur.Width; x++ {
			n := cur.Neighbours(y, x)
			if cur.Cells[y][x] != 0 {
				next.Cells[y][x] = r.Survive[n]
			} else {
				next.Cells[y][x] = r.Birth[n]
			}
		}
	}
}

// stepRangeVector is stepRange with the interior of each row reduced to
// straight-line arithmetic: no modulo, no branch, each x iteration
// independent of its neighbours. Row edges keep the wrapping path.
func stepRangeVector(cur, next *Grid, r Rule, y0, y1 int) {
	w, h := cur.Width, cur.Height
	if w < 3 {
		stepRange(cur, next, r, y0, y1)
		return
	}
	for y := y0; y < y1; y++ {
		up := cur.Cells[(y-1+h)%h]
		mid := cur.Cells[y]
		down := cur.Cells[(y+1)%h]
		dst := next.Cells[y]
		for x := 1; x < w-1; x++ {
			n := up[x-1] + up[x] + up[x+1] +
				mid[x-1] + mid[x+1] +
				down[x-1] + down[x] + down[x+1]
			a := mid[x]
			dst[x] = (1-a)*r.Birth[n] + a*r.Survive[n]
		}
		for _, x := range [2]int{0, w - 1} {
			xl := (x - 1 + w) % w
			xr := (x + 1) % w
			n := up[xl] + up[x] + up[xr] +
				mid[xl] + mid[xr] +
				down[xl] + down[x] + down[xr]
			a := mid[x]
			dst[x] = (1-a)*r.Birth[n] + a*r.Survive[n]
		}
	}
}

// stepRowsParallel forks one goroutine per contiguous row range and joins
// them before returning. Workers share cur read-only and write disjoint
// rows of next, so the WaitGroup barrier is the only synchronisation.
func stepRowsParallel(cur, next *Grid, r Rule, workers int, kernel func(cur, next *Grid, r Rule, y0, y1 int)) {
	if workers > cur.Height {
		workers = cur.Height
	}
	if workers <= 1 {
		kernel(cur, next, r, 0, cur.Height)
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		y0 := i * cur.Height / workers
		y1 := (i + 1) * cur.Height / workers
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			kernel(cur, next, r, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// stepBlocks queues fixed-height row blocks on a channel drained by a
// fixed pool of workers. Block boundaries partition next disjointly, so
// any worker may take any block in any order without affecting the result.
func stepBlocks(cur, next *Grid, r Rule, workers, blockRows int) {
	type block struct{ y0, y1 int }
	tasks := make(chan block, (cur.Height+blockRows-1)/blockRows)
	for y0 := 0; y0 < cur.Height; y0 += blockRows {
		y1 := y0 + blockRows
		if y1 > cur.Height {
			y1 = cur.Height
		}
		tasks <- block{y0, y1}
	}
	close(tasks)

	if workers <= 1 {
		for b := range tasks {
			stepRange(cur, next, r, b.y0, b.y1)
		}
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range tasks {
				stepRange(cur, next, r, b.y0, b.y1)
			}
		}()
	}
	wg.Wait()
}
