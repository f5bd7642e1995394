package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFifthOf(t *testing.T) {
	want := map[Letter]Letter{'A': 'E', 'B': 'F', 'C': 'G', 'D': 'A', 'E': 'B', 'F': 'C', 'G': 'D'}
	for from, to := range want {
		assert.Equal(t, to, FifthOf(from), "fifth of %s", from)
	}

	// Seven fifths visit every letter once.
	seen := map[Letter]bool{}
	l := Letter('C')
	for i := 0; i < 7; i++ {
		seen[l] = true
		l = FifthOf(l)
	}
	assert.Len(t, seen, 7)
	assert.Equal(t, Letter('C'), l)
}

func TestKeySignatureOf(t *testing.T) {
	tests := map[int]string{
		0: "Key", 1: "#", -1: "b", 2: "##", -2: "bb",
		3: "3#", -3: "3b", 5: "5#", -6: "6b", 7: "7#", -7: "7b",
	}
	for hour, want := range tests {
		assert.Equal(t, want, KeySignatureOf(hour, DefaultEmptyKeyLabel), "hour %d", hour)
	}
	assert.Equal(t, "Key/sus4", KeySignatureOf(0, "Key/sus4"))
}

func TestKeySignatureLabelSeams(t *testing.T) {
	assert.Equal(t, "5b/7#", KeySignatureLabel(-5, DefaultEmptyKeyLabel))
	assert.Equal(t, "5#/7b", KeySignatureLabel(5, DefaultEmptyKeyLabel))
	assert.Equal(t, "6#/6b", KeySignatureLabel(6, DefaultEmptyKeyLabel))
	assert.Equal(t, "4#", KeySignatureLabel(4, DefaultEmptyKeyLabel))
	assert.Equal(t, "4b", KeySignatureLabel(-4, DefaultEmptyKeyLabel))
}

func TestDialLabels(t *testing.T) {
	labels := DialLabels(DefaultEmptyKeyLabel)
	require.Len(t, labels, 15)

	byHour := map[int]HourLabel{}
	for _, l := range labels {
		byHour[l.Hour] = l
	}

	tests := []HourLabel{
		{Hour: -7, Major: "Cb", Minor: "Abm", Inner: true},
		{Hour: -6, Major: "Gb", Minor: "Ebm", Inner: true},
		{Hour: -5, Major: "Db", Minor: "Bbm", KeySignature: "5b/7#"},
		{Hour: -4, Major: "Ab", Minor: "Fm", KeySignature: "4b"},
		{Hour: -2, Major: "Bb", Minor: "Gm", KeySignature: "bb"},
		{Hour: -1, Major: "F", Minor: "Dm", KeySignature: "b"},
		{Hour: 0, Major: "C", Minor: "Am", KeySignature: "Key"},
		{Hour: 1, Major: "G", Minor: "Em", KeySignature: "#"},
		{Hour: 3, Major: "A", Minor: "F#m", KeySignature: "3#"},
		{Hour: 5, Major: "B", Minor: "G#m", KeySignature: "5#/7b"},
		{Hour: 6, Major: "F#", Minor: "D#m", KeySignature: "6#/6b"},
		{Hour: 7, Major: "C#", Minor: "A#m", Inner: true},
	}
	for _, want := range tests {
		assert.Equal(t, want, byHour[want.Hour])
	}

	// Every outer major label names the root the engine plays at that hour.
	for hour := lowSeamHour; hour <= LastHour; hour++ {
		c, ok := Map(hour, ZoneMajor, Modifiers{})
		require.True(t, ok)
		assert.Contains(t, c.Root.Spellings(), byHour[hour].Major, "hour %d", hour)
	}
}
