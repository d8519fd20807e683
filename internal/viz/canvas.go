package viz

import (
	"strings"

	"github.com/san-kum/buddhabrot/internal/density"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// GridCanvas renders a normalized density grid as a braille canvas: every
// cell at or above level lights one dot. Grid rows map to canvas y and
// columns to canvas x, so the canvas is ceil(w/2) x ceil(h/4) characters.
func GridCanvas(n *density.Normalized, level float64) *Canvas {
	c := NewCanvas((n.Width()+1)/2, (n.Height()+3)/4)
	for row := 0; row < n.Height(); row++ {
		for col := 0; col < n.Width(); col++ {
			if n.At(row, col) >= level && n.At(row, col) > 0 {
				c.Set(col, row)
			}
		}
	}
	return c
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
