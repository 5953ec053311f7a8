package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/StephenZhaoyi/Parallel-Life/life"
)

// Terminal renders the grid full-screen in the controlling terminal, one
// character cell per grid cell. q, Esc or Ctrl-C requests quit.
type Terminal struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	quit   chan struct{}
}

// NewTerminal initialises the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	t := &Terminal{
		screen: screen,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		dead:   tcell.StyleDefault,
		quit:   make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

func (t *Terminal) pollEvents() {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				close(t.quit)
				return
			case ev.Rune() == 'q' || ev.Rune() == 'Q':
				close(t.quit)
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			// Screen finalised.
			return
		}
	}
}

// Render draws every cell, '#' for alive.
func (t *Terminal) Render(g *life.Grid) error {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != 0 {
				t.screen.SetContent(x, y, '#', nil, t.alive)
			} else {
				t.screen.SetContent(x, y, ' ', nil, t.dead)
			}
		}
	}
	t.screen.Show()
	return nil
}

// Quit reports user-requested shutdown.
func (t *Terminal) Quit() <-chan struct{} { return t.quit }

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}
