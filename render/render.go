// Package render draws grid snapshots between simulation steps. Renderers
// only ever read the grid they are handed; the stepping kernels never call
// into this package.
package render

import "github.com/StephenZhaoyi/Parallel-Life/life"

// Renderer displays one generation at a time.
type Renderer interface {
	// Render draws the given grid. The grid is only valid for the duration
	// of the call.
	Render(g *life.Grid) error
	// Quit is closed once the user has asked to stop the run.
	Quit() <-chan struct{}
	// Close releases the display. Safe to call after a failed Render.
	Close()
}
