package harmony

import (
	"strconv"
	"strings"
)

// Dial hours run from seven flats to seven sharps. Hours beyond the seams
// are enharmonic duplicates of the hours at the opposite end.
const (
	FirstDialHour = -7
	LastDialHour  = 7

	lowSeamHour   = -5
	sharpSeamHour = 5
	highSeamHour  = 6
)

// DefaultEmptyKeyLabel is what hour 0 shows in place of a key signature.
const DefaultEmptyKeyLabel = "Key"

// Letter is a natural note letter, 'A' through 'G'.
type Letter byte

// FifthOf returns the letter a perfect fifth above l, wrapping G back to A.
func FifthOf(l Letter) Letter {
	if l >= 'D' {
		return l - 3
	}
	return l + 4
}

func (l Letter) String() string {
	return string(rune(l))
}

// KeySignatureOf describes the key signature of hour: "#" and "b" for one
// accidental, doubled glyphs for two, and a count for more ("5#").
// Hour 0 has no accidentals and shows emptyLabel.
func KeySignatureOf(hour int, emptyLabel string) string {
	if hour == 0 {
		return emptyLabel
	}
	count, glyph := hour, "#"
	if hour < 0 {
		count, glyph = -hour, "b"
	}
	switch count {
	case 1:
		return glyph
	case 2:
		return glyph + glyph
	default:
		return strconv.Itoa(count) + glyph
	}
}

// KeySignatureLabel is the text drawn at hour. Seam hours carry both their
// own signature and that of their enharmonic twin twelve hours away.
func KeySignatureLabel(hour int, emptyLabel string) string {
	labels := []string{KeySignatureOf(hour, emptyLabel)}
	switch {
	case hour == lowSeamHour:
		labels = append(labels, KeySignatureOf(hour+semitonesPerOctave, emptyLabel))
	case hour >= sharpSeamHour:
		labels = append(labels, KeySignatureOf(hour-semitonesPerOctave, emptyLabel))
	}
	return strings.Join(labels, "/")
}

// HourLabel is the text shown for one hour of the dial.
type HourLabel struct {
	Hour  int
	Major string // e.g. "F#"
	Minor string // e.g. "D#m"

	// KeySignature is empty for inner hours.
	KeySignature string

	// Inner hours are enharmonic duplicates drawn closer to the centre.
	Inner bool
}

// keyWalker spells key names while stepping around the circle by fifths.
// The accidental changes each time the walk reaches F: flats end and,
// one lap later, sharps begin.
type keyWalker struct {
	letter     Letter
	accidental string
	suffix     string
}

func (w *keyWalker) next() string {
	w.letter = FifthOf(w.letter)
	if w.letter == 'F' {
		if w.accidental == "" {
			w.accidental = "#"
		} else {
			w.accidental = ""
		}
	}
	return w.letter.String() + w.accidental + w.suffix
}

// DialLabels returns the labels for every dial hour in order from
// FirstDialHour to LastDialHour.
func DialLabels(emptyLabel string) []HourLabel {
	// Seeded one fifth below Cb major and Ab minor.
	major := keyWalker{letter: 'F', accidental: "b"}
	minor := keyWalker{letter: 'D', accidental: "b", suffix: "m"}

	labels := make([]HourLabel, 0, LastDialHour-FirstDialHour+1)
	for hour := FirstDialHour; hour <= LastDialHour; hour++ {
		l := HourLabel{
			Hour:  hour,
			Minor: minor.next(),
			Major: major.next(),
			Inner: hour < lowSeamHour || hour > highSeamHour,
		}
		if !l.Inner {
			l.KeySignature = KeySignatureLabel(hour, emptyLabel)
		}
		labels = append(labels, l)
	}
	return labels
}
