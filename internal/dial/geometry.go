// Package dial lays out the circle-of-fifths clock face and decodes pointer
// positions on it.
package dial

import (
	"math"

	"github.com/icco/chordclock/internal/harmony"
)

// RadiansPerHour is one of twelve positions around the dial.
const RadiansPerHour = math.Pi / 6

// Vec is a point or direction in canvas units.
type Vec struct {
	X, Y float64
}

// Geometry is the size of the drawing surface. The dial fills it, so a
// surface that is not square gives an elliptical dial.
type Geometry struct {
	Width, Height float64
}

// Center of the surface.
func (g Geometry) Center() Vec {
	return Vec{X: g.Width / 2, Y: g.Height / 2}
}

// Direction of a clockwise angle from twelve o'clock, scaled to the surface.
func (g Geometry) Direction(angle float64) Vec {
	return Vec{
		X: g.Width * math.Sin(angle),
		Y: -g.Height * math.Cos(angle),
	}
}

// Position is the point at distance along dir from the centre. Distances
// are fractions of the surface, so 0.5 reaches its edge.
func (g Geometry) Position(distance float64, dir Vec) Vec {
	c := g.Center()
	return Vec{
		X: c.X + distance*dir.X,
		Y: c.Y + distance*dir.Y,
	}
}

// Pointer is a decoded position on the dial.
type Pointer struct {
	Angle    float64
	Distance float64
	Hour     int
	Zone     harmony.Zone
}

// InControl reports whether the pointer is on one of the playable rings.
func (p Pointer) InControl() bool {
	return p.Zone != harmony.ZoneOutside
}

// Decode converts a surface point into an hour, distance and zone.
func (g Geometry) Decode(x, y float64) Pointer {
	if g.Width <= 0 || g.Height <= 0 {
		return Pointer{Zone: harmony.ZoneOutside, Distance: math.Inf(1)}
	}
	c := g.Center()
	rx := (x - c.X) / g.Width
	ry := (y - c.Y) / g.Height
	angle := math.Atan2(rx, -ry)
	distance := math.Hypot(rx, ry)
	return Pointer{
		Angle:    angle,
		Distance: distance,
		Hour:     harmony.HourOf(angle),
		Zone:     harmony.ZoneOf(distance),
	}
}
