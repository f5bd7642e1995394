package harmony

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneOf(t *testing.T) {
	tests := []struct {
		distance float64
		want     Zone
	}{
		{0, ZoneOutside},
		{0.1399, ZoneOutside},
		{MinBound, ZoneMinor},
		{0.2999, ZoneMinor},
		{MajBound, ZoneMajor},
		{0.4299, ZoneMajor},
		{Sus4Bound, ZoneSus4},
		{MaxBound, ZoneSus4},
		{0.5001, ZoneOutside},
		{2, ZoneOutside},
		{math.NaN(), ZoneOutside},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneOf(tt.distance), "distance %v", tt.distance)
	}
}

func TestZoneNames(t *testing.T) {
	for _, z := range []Zone{ZoneOutside, ZoneMinor, ZoneMajor, ZoneSus4} {
		parsed, ok := ParseZone(z.String())
		assert.True(t, ok)
		assert.Equal(t, z, parsed)
	}
	_, ok := ParseZone("diminished")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Zone(42).String())
}

func TestThirdAdjust(t *testing.T) {
	assert.Equal(t, -1, ZoneMinor.ThirdAdjust())
	assert.Equal(t, 0, ZoneMajor.ThirdAdjust())
	assert.Equal(t, 1, ZoneSus4.ThirdAdjust())
	assert.Equal(t, 0, ZoneOutside.ThirdAdjust())
}

func TestHourOf(t *testing.T) {
	// Computed at run time so half steps are exact halves after scaling.
	twoPi := 2 * math.Pi
	step := twoPi / 12
	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"twelve o'clock", 0, 0},
		{"three o'clock", math.Pi / 2, 3},
		{"six o'clock folds to -6", math.Pi, -6},
		{"negative six o'clock", -math.Pi, -6},
		{"nine o'clock", -math.Pi / 2, -3},
		{"just before half an hour", step * 0.49, 0},
		{"just after half an hour", step * 0.51, 1},
		{"just after minus half an hour", -step * 0.51, -1},
		{"exactly half an hour rounds away from zero", step * 0.5, 1},
		{"exactly minus half an hour rounds away from zero", -step * 0.5, -1},
		{"exactly half past one", step * 1.5, 2},
		{"exactly minus half past one", -step * 1.5, -2},
		{"full turn", 2 * math.Pi, 0},
		{"eleven o'clock", 11 * step, -1},
		{"five o'clock", 5 * step, 5},
		{"seven o'clock", 7 * step, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HourOf(tt.angle))
		})
	}
}

func TestNormalizeHour(t *testing.T) {
	for hour := -40; hour <= 40; hour++ {
		n := NormalizeHour(hour)
		assert.GreaterOrEqual(t, n, FirstHour)
		assert.LessOrEqual(t, n, LastHour)
		assert.Equal(t, 0, mod(n-hour, 12))
	}
}
