package harmony

import "math"

// Radial bounds of the control, as a fraction of its half-width and
// half-height. They must stay ordered MinBound < MajBound < Sus4Bound < MaxBound.
const (
	MinBound  = 0.14
	MajBound  = 0.30
	Sus4Bound = 0.43
	MaxBound  = 0.50
)

// Zone is the ring of the control a pointer falls in. It decides the third.
type Zone int

const (
	ZoneOutside Zone = iota
	ZoneMinor
	ZoneMajor
	ZoneSus4
)

var zoneNames = map[Zone]string{
	ZoneOutside: "outside",
	ZoneMinor:   "minor",
	ZoneMajor:   "major",
	ZoneSus4:    "sus4",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return "unknown"
}

// ParseZone is the inverse of Zone.String.
func ParseZone(s string) (Zone, bool) {
	for z, name := range zoneNames {
		if name == s {
			return z, true
		}
	}
	return ZoneOutside, false
}

// ZoneOf classifies a normalized distance from the centre. Each ring
// includes its inner edge and excludes its outer edge, except that the
// outermost ring also includes MaxBound.
func ZoneOf(distance float64) Zone {
	switch {
	case math.IsNaN(distance), distance < MinBound, distance > MaxBound:
		return ZoneOutside
	case distance < MajBound:
		return ZoneMinor
	case distance < Sus4Bound:
		return ZoneMajor
	default:
		return ZoneSus4
	}
}

// thirdAdjust is the zone's change to a major third: -1 for a minor third,
// +1 for a perfect fourth in place of the third.
var thirdAdjust = map[Zone]int{
	ZoneMinor: -1,
	ZoneMajor: 0,
	ZoneSus4:  1,
}

// ThirdAdjust reports the zone's third adjustment. ZoneOutside has none.
func (z Zone) ThirdAdjust() int {
	return thirdAdjust[z]
}

// Playable hours. Angles outside this range fold back into it.
const (
	FirstHour = -6
	LastHour  = 5

	hoursPerCircle = 12
)

// HourOf rounds a clockwise angle from twelve o'clock, in radians, to the
// nearest hour. Halfway angles round away from zero before folding.
func HourOf(angle float64) int {
	return NormalizeHour(int(math.Round(angle * hoursPerCircle / (2 * math.Pi))))
}

// NormalizeHour folds any hour into FirstHour..LastHour.
func NormalizeHour(hour int) int {
	return mod(hour-FirstHour, hoursPerCircle) + FirstHour
}
