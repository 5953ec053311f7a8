package life

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePGM saves a grid snapshot as a binary (P5) PGM image with live
// cells at full intensity, the format the usual GoL tooling exchanges.
func WritePGM(g *Grid, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "P5\n%d %d\n255\n", g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b := byte(0)
			if g.Cells[y][x] != 0 {
				b = 255
			}
			if err := w.WriteByte(b); err != nil {
				return err
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Sync()
}

// ReadPGM loads a binary (P5) PGM snapshot into a fresh grid. Any
// non-zero pixel is treated as a live cell.
func ReadPGM(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := bufio.NewReader(file)
	var magic string
	var width, height, maxval int
	if err := scanPGMHeader(r, &magic, &width, &height, &maxval); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if magic != "P5" {
		return nil, fmt.Errorf("%s: not a P5 pgm file (got %q)", path, magic)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("%s: unsupported maxval %d", path, maxval)
	}

	g, err := NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	buf := make([]byte, width)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%s: short pixel data: %w", path, err)
		}
		for x, b := range buf {
			if b != 0 {
				g.Cells[y][x] = 1
			}
		}
	}
	return g, nil
}

// scanPGMHeader reads the magic, dimensions and maxval, consuming the
// single whitespace byte that separates the header from the pixel data.
func scanPGMHeader(r *bufio.Reader, magic *string, width, height, maxval *int) error {
	if _, err := fmt.Fscan(r, magic, width, height, maxval); err != nil {
		return fmt.Errorf("bad pgm header: %w", err)
	}
	if _, err := r.ReadByte(); err != nil {
		return fmt.Errorf("bad pgm header: %w", err)
	}
	return nil
}
