package dial

import "github.com/icco/chordclock/internal/harmony"

// FontSize of a dial label.
type FontSize int

const (
	FontTiny FontSize = iota
	FontSmall
	FontLarge
)

// Label is text centred on a point of the dial.
type Label struct {
	Text string
	At   Vec
	Size FontSize
}

// ringDistance is where each label ring sits. Inner rings are used by the
// enharmonic duplicates at the ends of the dial.
type ringDistance struct {
	outer, inner float64
}

var (
	minorRing = ringDistance{outer: 0.23, inner: 0.17}
	majorRing = ringDistance{outer: 0.38, inner: 0.32}
)

const keySignatureDistance = 0.465

func (r ringDistance) at(inner bool) float64 {
	if inner {
		return r.inner
	}
	return r.outer
}

// Labels places every key name and key signature of the dial on g.
func Labels(g Geometry, emptyKeyLabel string) []Label {
	var labels []Label
	for _, hl := range harmony.DialLabels(emptyKeyLabel) {
		dir := g.Direction(float64(hl.Hour) * RadiansPerHour)

		size := FontLarge
		switch {
		case hl.Inner:
			size = FontSmall
		case hl.Hour == harmony.LastDialHour-1:
			// Three-character names crowd the seam.
			size = FontSmall
		}

		if !hl.Inner {
			labels = append(labels, Label{
				Text: hl.KeySignature,
				At:   g.Position(keySignatureDistance, dir),
				Size: FontTiny,
			})
		}
		labels = append(labels,
			Label{Text: hl.Minor, At: g.Position(minorRing.at(hl.Inner), dir), Size: size},
			Label{Text: hl.Major, At: g.Position(majorRing.at(hl.Inner), dir), Size: size},
		)
	}
	return labels
}
