package dial

import (
	"math"
	"time"
)

const radiansPerMinute = math.Pi / 30

// Hand is one clock hand. Length is a fraction of the surface; Width is a
// stroke weight, heavier hands drawing with denser glyphs.
type Hand struct {
	Angle  float64
	Length float64
	Width  float64
	Color  string

	// Tail, when set, extends the hand backwards through the centre.
	Tail *Tail
}

// Tail is the short counterweight of the second hand.
type Tail struct {
	Length float64
	Width  float64
}

const (
	handColor   = "#555555"
	secondColor = "#FF4000"
)

// Hands returns the hour, minute and second hands at t.
func Hands(t time.Time) []Hand {
	hh, mm, ss := float64(t.Hour()), float64(t.Minute()), float64(t.Second())
	return []Hand{
		{Angle: (hh + mm/60) * RadiansPerHour, Length: 0.25, Width: 7, Color: handColor},
		{Angle: (mm + ss/60) * radiansPerMinute, Length: 0.4, Width: 5, Color: handColor},
		{
			Angle: ss * radiansPerMinute, Length: 0.4, Width: 1, Color: secondColor,
			Tail: &Tail{Length: 0.12, Width: 3},
		},
	}
}
