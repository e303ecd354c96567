package plot

import (
	"math"
	"os"
	"strings"
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

// Canvas draws with braille characters; each cell holds 2x4 sub-pixels.
type Canvas struct {
	frame
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y); the canvas is (Width*2) x (Height*4).
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

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
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

// Render rasterises the recorded primitives onto the grid.
func (c *Canvas) Render() {
	c.Clear()
	if c.empty() {
		return
	}

	tr, arrows := c.layout(c.Width*2, c.Height*4)
	seg := func(x0, y0, x1, y1 float64) {
		if !drawable(x0, y0, x1, y1) {
			return
		}
		c.DrawLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	}

	for _, path := range c.paths {
		for i := 1; i < len(path); i++ {
			x0, y0 := tr.apply(path[i-1])
			x1, y1 := tr.apply(path[i])
			seg(x0, y0, x1, y1)
		}
	}
	for _, a := range arrows {
		x0, y0 := tr.apply(a.from)
		x1, y1 := tr.apply(a.to)
		seg(x0, y0, x1, y1)
	}
	for _, s := range c.scatters {
		for _, p := range s.pts {
			x, y := tr.apply(p)
			seg(x-1, y, x+1, y)
			seg(x, y-1, x, y+1)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func (c *Canvas) Save(path string) error {
	if c.empty() {
		return ErrEmpty
	}
	c.Render()
	return os.WriteFile(path, []byte(c.String()), 0644)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
