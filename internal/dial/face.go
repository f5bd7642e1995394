package dial

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/icco/chordclock/internal/harmony"
)

// Ring colours of the playable zones. The dead centre is drawn white.
var ringColors = map[harmony.Zone]lipgloss.Color{
	harmony.ZoneMinor: "#99CCFF",
	harmony.ZoneMajor: "#FB99CC",
	harmony.ZoneSus4:  "#FFFF99",
}

const (
	centerColor lipgloss.Color = "#FFFFFF"
	labelColor  lipgloss.Color = "#000000"
	tinyColor   lipgloss.Color = "#444444"
	markerColor lipgloss.Color = "#7D56F4"
)

// Face draws the dial and clock into a grid of terminal cells.
type Face struct {
	Cols, Rows int

	// EmptyKeyLabel is shown at twelve o'clock instead of a key signature.
	EmptyKeyLabel string

	// Marker, when set, highlights the pressed point in cell coordinates.
	Marker *Vec
}

// Geometry of the face in cell units.
func (f Face) Geometry() Geometry {
	return Geometry{Width: float64(f.Cols), Height: float64(f.Rows)}
}

// Decode maps a terminal cell inside the face to a pointer.
func (f Face) Decode(col, row int) Pointer {
	return f.Geometry().Decode(float64(col)+0.5, float64(row)+0.5)
}

// Draw paints the rings, labels and the clock hands at now.
func (f Face) Draw(now time.Time) *Canvas {
	c := NewCanvas(f.Cols, f.Rows)
	g := f.Geometry()

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			p := f.Decode(col, row)
			switch {
			case p.Distance < harmony.MinBound:
				c.Fill(col, row, centerColor)
			case p.InControl():
				c.Fill(col, row, ringColors[p.Zone])
			}
		}
	}

	label := f.EmptyKeyLabel
	if label == "" {
		label = harmony.DefaultEmptyKeyLabel
	}
	for _, l := range Labels(g, label) {
		switch l.Size {
		case FontTiny:
			c.Text(l.At, l.Text, tinyColor, false)
		case FontSmall:
			c.Text(l.At, l.Text, labelColor, false)
		default:
			c.Text(l.At, l.Text, labelColor, true)
		}
	}

	center := g.Center()
	for _, h := range Hands(now) {
		dir := g.Direction(h.Angle)
		color := lipgloss.Color(h.Color)
		if h.Tail != nil {
			c.Line(center, g.Position(-h.Tail.Length, dir), strokeGlyph(h.Tail.Width), color)
		}
		c.Line(center, g.Position(h.Length, dir), strokeGlyph(h.Width), color)
	}
	c.Set(int(center.X), int(center.Y), '●', labelColor, true)

	if f.Marker != nil {
		c.Set(int(f.Marker.X), int(f.Marker.Y), '✚', markerColor, true)
	}
	return c
}

// Render is Draw followed by Canvas.String.
func (f Face) Render(now time.Time) string {
	return f.Draw(now).String()
}

func strokeGlyph(width float64) rune {
	switch {
	case width >= 7:
		return '█'
	case width >= 5:
		return '▓'
	case width >= 3:
		return '▒'
	default:
		return '·'
	}
}
