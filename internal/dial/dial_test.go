package dial

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icco/chordclock/internal/harmony"
)

func TestDecode(t *testing.T) {
	g := Geometry{Width: 100, Height: 100}
	tests := []struct {
		name string
		x, y float64
		hour int
		zone harmony.Zone
	}{
		{"above centre", 50, 30, 0, harmony.ZoneMinor},
		{"right of centre", 85, 50, 3, harmony.ZoneMajor},
		{"below centre", 50, 95, -6, harmony.ZoneSus4},
		{"left of centre", 30, 50, -3, harmony.ZoneMinor},
		{"dead centre", 50, 50, 0, harmony.ZoneOutside},
		{"corner", 0, 0, -1, harmony.ZoneOutside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := g.Decode(tt.x, tt.y)
			assert.Equal(t, tt.zone, p.Zone)
			if p.InControl() {
				assert.Equal(t, tt.hour, p.Hour)
			}
		})
	}
}

func TestDecodeEmptyGeometry(t *testing.T) {
	p := Geometry{}.Decode(1, 1)
	assert.False(t, p.InControl())
}

func TestPositionDecodeRoundTrip(t *testing.T) {
	// A wide surface, like a terminal, gives an ellipse; decoding undoes it.
	g := Geometry{Width: 120, Height: 40}
	for hour := harmony.FirstHour; hour <= harmony.LastHour; hour++ {
		for _, d := range []float64{0.2, 0.35, 0.47} {
			pos := g.Position(d, g.Direction(float64(hour)*RadiansPerHour))
			p := g.Decode(pos.X, pos.Y)
			assert.Equal(t, hour, p.Hour)
			assert.InDelta(t, d, p.Distance, 1e-9)
			assert.Equal(t, harmony.ZoneOf(d), p.Zone)
		}
	}
}

func TestHands(t *testing.T) {
	hands := Hands(time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC))
	require.Len(t, hands, 3)
	assert.InDelta(t, math.Pi/2, hands[0].Angle, 1e-9)
	assert.InDelta(t, 0, hands[1].Angle, 1e-9)
	assert.InDelta(t, 0, hands[2].Angle, 1e-9)
	assert.Nil(t, hands[0].Tail)
	require.NotNil(t, hands[2].Tail)
	assert.Equal(t, 0.12, hands[2].Tail.Length)

	hands = Hands(time.Date(2026, 1, 1, 12, 30, 30, 0, time.UTC))
	assert.InDelta(t, 12.5*RadiansPerHour, hands[0].Angle, 1e-9)
	assert.InDelta(t, 30.5*math.Pi/30, hands[1].Angle, 1e-9)
	assert.InDelta(t, math.Pi, hands[2].Angle, 1e-9)
}

func TestLabels(t *testing.T) {
	g := Geometry{Width: 100, Height: 100}
	labels := Labels(g, "Key/sus4")

	// Two key names for every hour, plus key signatures on the outer hours.
	assert.Len(t, labels, 15*2+12)

	var key *Label
	for i := range labels {
		if labels[i].Text == "Key/sus4" {
			key = &labels[i]
		}
	}
	require.NotNil(t, key)
	assert.Equal(t, FontTiny, key.Size)
	assert.InDelta(t, 50, key.At.X, 1e-9)
	assert.InDelta(t, 50-46.5, key.At.Y, 1e-9)

	sizes := map[string]FontSize{}
	for _, l := range labels {
		sizes[l.Text] = l.Size
	}
	assert.Equal(t, FontLarge, sizes["C"])
	assert.Equal(t, FontSmall, sizes["F#"])
	assert.Equal(t, FontSmall, sizes["Cb"])
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(7, 1)
	c.Text(Vec{X: 3.5, Y: 0.5}, "abc", "", false)
	assert.Equal(t, "  abc  ", c.String())

	c.Text(Vec{X: 0, Y: 0.5}, "xyz", "", false)
	assert.Equal(t, "z abc  ", c.String(), "text is clipped at the edge")
	assert.Equal(t, rune(0), c.Rune(10, 0))
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Line(Vec{X: 0.5, Y: 0.5}, Vec{X: 4.5, Y: 4.5}, '*', "")
	for i := 0; i < 5; i++ {
		assert.Equal(t, '*', c.Rune(i, i))
	}
	assert.Equal(t, ' ', c.Rune(4, 0))
}

func TestFaceDraw(t *testing.T) {
	f := Face{Cols: 60, Rows: 30, EmptyKeyLabel: "Key/sus4"}
	c := f.Draw(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	cols, rows := c.Size()
	assert.Equal(t, 60, cols)
	assert.Equal(t, 30, rows)
	assert.Equal(t, '●', c.Rune(30, 15))

	out := f.Render(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 29, strings.Count(out, "\n"))
}

func TestFaceDecodeMatchesGeometry(t *testing.T) {
	f := Face{Cols: 60, Rows: 30}
	p := f.Decode(30, 4)
	assert.Equal(t, 0, p.Hour)
	assert.Equal(t, harmony.ZoneMajor, p.Zone)
}
