package dial

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	ch   rune
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// Canvas is a grid of terminal cells. Coordinates are in cells with the
// centre of cell (col, row) at (col+0.5, row+0.5).
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas returns a blank canvas.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return c
}

// Size of the canvas in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// Fill sets the background of a cell.
func (c *Canvas) Fill(col, row int, bg lipgloss.Color) {
	if p := c.at(col, row); p != nil {
		p.bg = bg
	}
}

// Set draws a glyph in a cell, keeping its background.
func (c *Canvas) Set(col, row int, ch rune, fg lipgloss.Color, bold bool) {
	if p := c.at(col, row); p != nil {
		p.ch, p.fg, p.bold = ch, fg, bold
	}
}

// Rune returns the glyph at a cell, or 0 outside the canvas.
func (c *Canvas) Rune(col, row int) rune {
	if p := c.at(col, row); p != nil {
		return p.ch
	}
	return 0
}

// Text writes s centred on the point at.
func (c *Canvas) Text(at Vec, s string, fg lipgloss.Color, bold bool) {
	runes := []rune(s)
	row := int(math.Floor(at.Y))
	col := int(math.Round(at.X - float64(len(runes))/2))
	for i, r := range runes {
		c.Set(col+i, row, r, fg, bold)
	}
}

// Line draws a straight stroke from one point to another.
func (c *Canvas) Line(from, to Vec, ch rune, fg lipgloss.Color) {
	dx, dy := to.X-from.X, to.Y-from.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) * 2))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x, y := from.X+dx*f, from.Y+dy*f
		c.Set(int(math.Floor(x)), int(math.Floor(y)), ch, fg, false)
	}
}

// String renders the canvas, one line per row, merging runs of equally
// styled cells.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for col := 1; col <= c.cols; col++ {
			if col < c.cols && sameStyle(c.cells[row*c.cols+col], c.cells[row*c.cols+start]) {
				continue
			}
			b.WriteString(c.renderRun(row, start, col))
			start = col
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func (c *Canvas) renderRun(row, from, to int) string {
	if from >= to {
		return ""
	}
	var text strings.Builder
	for col := from; col < to; col++ {
		text.WriteRune(c.cells[row*c.cols+col].ch)
	}
	first := c.cells[row*c.cols+from]
	if first.fg == "" && first.bg == "" && !first.bold {
		return text.String()
	}
	style := lipgloss.NewStyle().Bold(first.bold)
	if first.fg != "" {
		style = style.Foreground(first.fg)
	}
	if first.bg != "" {
		style = style.Background(first.bg)
	}
	return style.Render(text.String())
}
