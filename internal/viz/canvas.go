package viz

import "strings"

const brailleBlank = 0x2800

// Dot bits of one braille cell, indexed [row][col]:
//
//	1 4
//	2 5
//	3 6
//	7 8
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells. A canvas of w x h cells addresses
// 2w x 4h dots with (0, 0) at the top left.
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBlank
		}
	}
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (int, int) {
	return c.Width * 2, c.Height * 4
}

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/4, x/2
	return row, col, row < c.Height && col < c.Width
}

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok || c.cells[row][col] < brailleBlank {
		return
	}
	c.cells[row][col] |= brailleDots[y%4][x%2]
}

// Label replaces the cell holding dot (x, y) with r.
func (c *Canvas) Label(x, y int, r rune) {
	if row, col, ok := c.cell(x, y); ok {
		c.cells[row][col] = r
	}
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	rows := make([]string, len(c.cells))
	for i, row := range c.cells {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
