package life

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Grid is a toroidal board of bit-valued cells. Cells holds one row slice
// per row, all sharing one flat backing array, so a whole board is a
// single allocation and rows stay cache-adjacent.
type Grid struct {
	Width  int
	Height int
	Cells  [][]uint8
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are a
// configuration error.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d: both must be positive", width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([][]uint8, height),
	}
	backing := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		g.Cells[y] = backing[y*width : (y+1)*width]
	}
	return g, nil
}

// Clone returns a deep copy with its own backing array.
func (g *Grid) Clone() *Grid {
	c, _ := NewGrid(g.Width, g.Height)
	for y := range g.Cells {
		copy(c.Cells[y], g.Cells[y])
	}
	return c
}

// Equal reports whether two grids have identical dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != o.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Neighbours counts live cells among the eight toroidal neighbours of (y, x).
func (g *Grid) Neighbours(y, x int) int {
	cnt := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy != 0 || dx != 0 {
				cnt += int(g.Cells[(y+dy+g.Height)%g.Height][(x+dx+g.Width)%g.Width])
			}
		}
	}
	return cnt
}

// Randomize sets each cell alive with probability p.
func (g *Grid) Randomize(p float64, rng *rand.Rand) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if rng.Float64() < p {
				g.Cells[y][x] = 1
			} else {
				g.Cells[y][x] = 0
			}
		}
	}
}

// Alive returns the live cell count.
func (g *Grid) Alive() int {
	n := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// AliveCells lists the coordinates of all live cells in row-major order.
func (g *Grid) AliveCells() []Cell {
	cells := make([]Cell, 0, g.Alive())
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// SetPattern stamps a plaintext pattern onto the grid with its top-left
// corner at (top, left), wrapping toroidally. Pattern rows are lines of
// '.' (dead) and 'O' (alive); lines starting with '!' are comments.
func (g *Grid) SetPattern(pattern string, top, left int) {
	y := top
	for _, line := range strings.Split(pattern, "\n") {
		if strings.HasPrefix(line, "!") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		for i, c := range line {
			gy := ((y % g.Height) + g.Height) % g.Height
			gx := (((left + i) % g.Width) + g.Width) % g.Width
			switch c {
			case 'O', 'o', '#', '*':
				g.Cells[gy][gx] = 1
			case '.', '_':
				g.Cells[gy][gx] = 0
			}
		}
		y++
	}
}
