// Command lifeview is a windowed viewer for the simulator. The update
// tick advances one generation, so the window's TPS is the generation
// rate. Space pauses, R reseeds the board, Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/StephenZhaoyi/Parallel-Life/life"
)

const cellSize = 4

type game struct {
	world  *life.World
	tex    *ebiten.Image
	pix    []byte
	rng    *rand.Rand
	prob   float64
	paused bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Grid().Randomize(g.prob, g.rng)
	}
	if !g.paused {
		g.world.Step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	grid := g.world.Grid()
	i := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Cells[y][x] != 0 {
				g.pix[i], g.pix[i+1], g.pix[i+2] = 0x50, 0xdc, 0x64
			} else {
				g.pix[i], g.pix[i+1], g.pix[i+2] = 0, 0, 0
			}
			g.pix[i+3] = 0xff
			i += 4
		}
	}
	g.tex.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellSize, cellSize)
	screen.DrawImage(g.tex, op)

	status := fmt.Sprintf("rule %v  gen %d  alive %d  tps %.0f",
		g.world.Rule(), g.world.Generation(), grid.Alive(), ebiten.ActualTPS())
	if g.paused {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 8, grid.Height*cellSize-8, color.White)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Grid().Width * cellSize, g.world.Grid().Height * cellSize
}

func main() {
	width := flag.Int("width", 200, "grid width")
	height := flag.Int("height", 150, "grid height")
	rule := flag.String("rule", "B3/S23", "life-like rulestring")
	prob := flag.Float64("prob", 0.25, "initial live cell probability")
	seed := flag.Int64("seed", 0, "random seed (0: time-based)")
	threads := flag.Int("threads", 0, "worker goroutines (0: all CPUs)")
	strategy := flag.String("strategy", "rows", "decomposition strategy")
	tps := flag.Int("tps", 10, "generations per second")
	flag.Parse()

	rules, warn := life.ParseRule(*rule)
	if warn != nil {
		log.Printf("warning: %v", warn)
	}
	strat, err := life.ParseStrategy(*strategy)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	grid, err := life.NewGrid(*width, *height)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	grid.Randomize(*prob, rng)

	g := &game{
		world: life.NewWorld(grid, rules, life.Config{Strategy: strat, Workers: *threads}),
		tex:   ebiten.NewImage(*width, *height),
		pix:   make([]byte, *width**height*4),
		rng:   rng,
		prob:  *prob,
	}

	ebiten.SetWindowSize(*width*cellSize, *height*cellSize)
	ebiten.SetWindowTitle(fmt.Sprintf("Parallel Life (%v)", rules))
	ebiten.SetTPS(*tps)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
