// Package harmony maps positions on the circle of fifths to chords.
//
// Everything here is pure: the same hour, zone and modifiers always give the
// same chord, and nothing keeps state between calls.
package harmony

import "strings"

// PitchClass is a semitone above C, 0..11.
type PitchClass int

// PitchClassOf reduces any note number to its pitch class.
func PitchClassOf(note int) PitchClass {
	return PitchClass(mod(note, semitonesPerOctave))
}

const semitonesPerOctave = 12

// rootSpellings is the display spelling of each pitch class. When two names
// are listed the first one is the usual key name on the dial.
var rootSpellings = [semitonesPerOctave][]string{
	{"C"},
	{"C#", "Db"},
	{"D"},
	{"Eb", "D#"},
	{"E"},
	{"F"},
	{"F#", "Gb"},
	{"G"},
	{"Ab", "G#"},
	{"A"},
	{"Bb", "A#"},
	{"B"},
}

// Spellings returns the one or two names of pc. The slice is a copy.
func (pc PitchClass) Spellings() []string {
	names := rootSpellings[mod(int(pc), semitonesPerOctave)]
	return append([]string(nil), names...)
}

// Name joins every spelling of pc with "/", each carrying suffix,
// e.g. "C#m7/Dbm7".
func (pc PitchClass) Name(suffix string) string {
	names := rootSpellings[mod(int(pc), semitonesPerOctave)]
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + suffix
	}
	return strings.Join(parts, "/")
}

func (pc PitchClass) String() string {
	return pc.Name("")
}

// mod is a modulo that is never negative for positive m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
