package harmony

// Semitone offsets from the root.
const (
	majorThird   = 4
	perfectFifth = 7
	ninth        = 14
)

// Minor roots sit three semitones below major roots, so each hour's minor
// chord is the relative minor of its major chord.
const (
	minorRootBase = 9
	majorRootBase = 12
)

// Chord is the result of mapping one input event.
type Chord struct {
	Hour int
	Zone Zone

	// RootNumber is the root as an unfolded note number; Offsets are added
	// to it.
	RootNumber int
	Root       PitchClass

	// Offsets are semitones from the root: root, third (or fourth), fifth,
	// then the optional extension and ninth. They strictly increase.
	Offsets []int

	Minor     bool
	Sus4      bool
	Augmented bool
	Flat5     bool
	Extension Extension
	Ninth     bool

	// Suffix is the quality part of the symbol, e.g. "m7" or "dim7".
	Suffix string
}

// suffixRenames replaces suffixes whose literal assembly is not the
// conventional name.
var suffixRenames = map[string]string{
	"m6-5":  "dim7",
	"m69-5": "dim9",
}

// Map turns a dial position and modifier state into a chord. It reports
// false when zone is outside the control; there is no other failure.
func Map(hour int, zone Zone, mods Modifiers) (Chord, bool) {
	if zone == ZoneOutside {
		return Chord{}, false
	}
	hour = NormalizeHour(hour)
	third := zone.ThirdAdjust()

	base := majorRootBase
	if third < 0 {
		base = minorRootBase
	}
	// Adding six to odd hours is the same as stepping seven semitones per
	// hour, folded into one octave.
	root := hour + 6*mod(hour, 2) + base

	fifth := 0
	if mods.AltersFifth() {
		if third == 1 {
			// A suspended chord with an altered fifth is an augmented triad.
			fifth, third = 1, 0
		} else {
			fifth = -1
		}
	}

	c := Chord{
		Hour:       hour,
		Zone:       zone,
		RootNumber: root,
		Root:       PitchClassOf(root),
		Minor:      third < 0,
		Sus4:       third > 0,
		Augmented:  fifth > 0,
		Flat5:      fifth < 0,
		Extension:  mods.Extension(),
		Ninth:      mods.AddsNinth(),
	}

	c.Offsets = []int{0, majorThird + third, perfectFifth + fifth}
	if iv := c.Extension.Interval(); iv != 0 {
		c.Offsets = append(c.Offsets, iv)
	}
	if c.Ninth {
		c.Offsets = append(c.Offsets, ninth)
	}
	c.Suffix = c.suffix()
	return c, true
}

func (c Chord) suffix() string {
	s := ""
	if c.Minor {
		s += "m"
	}
	if c.Augmented {
		s += "aug"
	}
	s += c.Extension.Word(c.Ninth)
	if c.Sus4 {
		s += "sus4"
	}
	if c.Flat5 {
		s += "-5"
	}
	if renamed, ok := suffixRenames[s]; ok {
		return renamed
	}
	return s
}

// Symbol is the chord name with every spelling of the root,
// e.g. "F#7/Gb7".
func (c Chord) Symbol() string {
	return c.Root.Name(c.Suffix)
}

// Notes returns the chord's note numbers folded into w, in offset order.
func (c Chord) Notes(w Window) []int {
	notes := make([]int, len(c.Offsets))
	for i, o := range c.Offsets {
		notes[i] = w.Fold(c.RootNumber + o)
	}
	return notes
}

// PitchClasses returns the pitch class of every chord tone, in offset order.
func (c Chord) PitchClasses() []PitchClass {
	pcs := make([]PitchClass, len(c.Offsets))
	for i, o := range c.Offsets {
		pcs[i] = PitchClassOf(c.RootNumber + o)
	}
	return pcs
}
