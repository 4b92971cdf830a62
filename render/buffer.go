package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magic-lab/core"
)

// Cell is one composited terminal cell
// Depth is the view distance of whatever wrote Rune; +Inf means nothing has
type Cell struct {
	Rune  rune
	Fg    core.RGB
	Bg    core.RGB
	Depth float64
}

var emptyCell = Cell{Rune: ' ', Fg: core.RGBWhite, Bg: core.RGBBlack, Depth: math.Inf(1)}

// Buffer is a depth-tested cell compositor flushed to a tcell screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds reads the empty cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Set writes a glyph if it is nearer than what the cell already holds
func (b *Buffer) Set(x, y int, r rune, fg core.RGB, depth float64) bool {
	if !b.inBounds(x, y) {
		return false
	}
	dst := &b.cells[y*b.width+x]
	if depth > dst.Depth {
		return false
	}
	dst.Rune = r
	dst.Fg = fg
	dst.Depth = depth
	return true
}

// Tint blends bg into the cell background without touching its glyph
func (b *Buffer) Tint(x, y int, bg core.RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = dst.Bg.Blend(bg, alpha)
}

// Glow adds light to the cell background
func (b *Buffer) Glow(x, y int, light core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = dst.Bg.Add(light)
}

// WriteString draws text on top of everything, clipped to the buffer
// Returns the column after the last written rune
func (b *Buffer) WriteString(x, y int, s string, fg core.RGB) int {
	for _, r := range s {
		if x >= b.width {
			break
		}
		b.Set(x, y, r, fg, math.Inf(-1))
		x++
	}
	return x
}

// Flush copies every cell to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			style := tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
