package life

import (
	"math/rand"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{10, -1},
		{-5, -5},
	} {
		if _, err := NewGrid(tc.w, tc.h); err == nil {
			t.Errorf("NewGrid(%d, %d) succeeded, want error", tc.w, tc.h)
		}
	}
	if _, err := NewGrid(1, 1); err != nil {
		t.Errorf("NewGrid(1, 1) failed: %v", err)
	}
}

func TestNeighboursToroidalWrap(t *testing.T) {
	g, err := NewGrid(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	// One live cell in each far corner relative to (0,0).
	g.Cells[3][4] = 1 // diagonal wrap
	g.Cells[0][4] = 1 // horizontal wrap
	g.Cells[3][0] = 1 // vertical wrap
	if n := g.Neighbours(0, 0); n != 3 {
		t.Fatalf("Neighbours(0,0) = %d, want 3 across wrapped edges", n)
	}
	// The opposite corner sees the same cells from the other side.
	g.Cells[3][4] = 0
	g.Cells[0][0] = 1
	if n := g.Neighbours(3, 4); n != 3 {
		t.Fatalf("Neighbours(3,4) = %d, want 3", n)
	}
}

func TestNeighboursExcludesSelf(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Cells[1][1] = 1
	if n := g.Neighbours(1, 1); n != 0 {
		t.Fatalf("a lone cell counts %d neighbours, want 0", n)
	}
}

func TestRandomizeDeterministicBySeed(t *testing.T) {
	a, _ := NewGrid(32, 32)
	b, _ := NewGrid(32, 32)
	a.Randomize(0.25, rand.New(rand.NewSource(7)))
	b.Randomize(0.25, rand.New(rand.NewSource(7)))
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	if a.Alive() == 0 || a.Alive() == 32*32 {
		t.Fatalf("Alive() = %d, implausible for p=0.25", a.Alive())
	}
}

func TestSetPatternAndAliveCells(t *testing.T) {
	g, _ := NewGrid(6, 6)
	g.SetPattern("!a blinker\n.O.\n.O.\n.O.", 1, 1)
	want := []Cell{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	got := g.AliveCells()
	if len(got) != len(want) {
		t.Fatalf("AliveCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AliveCells() = %v, want %v", got, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(4, 4)
	g.Cells[2][2] = 1
	c := g.Clone()
	c.Cells[2][2] = 0
	if g.Cells[2][2] != 1 {
		t.Fatal("mutating a clone changed the original")
	}
	if c.Equal(g) {
		t.Fatal("Equal() missed a differing cell")
	}
}
