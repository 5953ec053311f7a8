package render

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/StephenZhaoyi/Parallel-Life/life"
)

// SDL renders the grid in a window, cellSize screen pixels per cell.
// Events are polled on each Render call, so it must be driven from the
// goroutine that created it.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	cell     int32
	quit     chan struct{}
	quitOnce sync.Once
}

// NewSDL opens the window sized to the grid.
func NewSDL(width, height, cellSize int) (*SDL, error) {
	if cellSize < 1 {
		cellSize = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}
	window, err := sdl.CreateWindow("Parallel Life",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width*cellSize), int32(height*cellSize), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	return &SDL{
		window:   window,
		renderer: renderer,
		cell:     int32(cellSize),
		quit:     make(chan struct{}),
	}, nil
}

// Render draws live cells as filled rects and pumps the event queue.
func (s *SDL) Render(g *life.Grid) error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			s.signalQuit()
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN &&
				(ev.Keysym.Sym == sdl.K_q || ev.Keysym.Sym == sdl.K_ESCAPE) {
				s.signalQuit()
			}
		}
	}

	if err := s.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.SetDrawColor(80, 220, 100, 255); err != nil {
		return err
	}
	rect := sdl.Rect{W: s.cell, H: s.cell}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == 0 {
				continue
			}
			rect.X = int32(x) * s.cell
			rect.Y = int32(y) * s.cell
			if err := s.renderer.FillRect(&rect); err != nil {
				return err
			}
		}
	}
	s.renderer.Present()
	return nil
}

func (s *SDL) signalQuit() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// Quit reports window close or q/Esc.
func (s *SDL) Quit() <-chan struct{} { return s.quit }

// Close tears down the window and SDL.
func (s *SDL) Close() {
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
}
