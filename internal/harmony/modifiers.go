package harmony

// Toggles is the state of an on-screen toggle panel.
type Toggles struct {
	Seventh      bool
	MajorSeventh bool
	FlatFifth    bool
	AddNinth     bool
}

// Modifiers is everything besides position that shapes a chord. It is
// rebuilt for every input event.
type Modifiers struct {
	Alt             bool
	Ctrl            bool
	Shift           bool
	SecondaryButton bool

	// Toggles is nil when there is no toggle panel. When present it alone
	// picks the extension; Shift and SecondaryButton are then ignored.
	Toggles *Toggles
}

// AltersFifth reports whether the fifth is raised or lowered.
func (m Modifiers) AltersFifth() bool {
	return m.Alt || (m.Toggles != nil && m.Toggles.FlatFifth)
}

// AddsNinth reports whether a ninth is stacked on the chord.
func (m Modifiers) AddsNinth() bool {
	return m.Ctrl || (m.Toggles != nil && m.Toggles.AddNinth)
}

// Extension resolves the extension selector.
func (m Modifiers) Extension() Extension {
	var sel int
	if t := m.Toggles; t != nil {
		sel = extensionUnset
		if t.Seventh {
			sel -= 2
		}
		if t.MajorSeventh {
			sel--
		}
	}
	if sel == 0 {
		if m.SecondaryButton {
			sel += 2
		}
		if m.Shift {
			sel++
		}
	}
	if sel == extensionUnset {
		sel = 0
	}
	return Extension(sel)
}

// Extension is the note stacked above the fifth, if any.
type Extension int

const (
	ExtNone Extension = iota
	ExtSixth
	ExtSeventh
	ExtMajorSeventh

	// extensionUnset is a toggle panel with nothing held.
	extensionUnset = 4
)

// Interval is the extension's distance from the root in semitones, or 0.
func (e Extension) Interval() int {
	if e == ExtNone {
		return 0
	}
	return 8 + int(e)
}

var (
	extensionWords      = [...]string{"", "6", "7", "M7"}
	ninthExtensionWords = [...]string{"add9", "69", "9", "M9"}
)

// Word is the extension's part of a chord symbol.
func (e Extension) Word(ninth bool) string {
	if e < ExtNone || e > ExtMajorSeventh {
		return ""
	}
	if ninth {
		return ninthExtensionWords[e]
	}
	return extensionWords[e]
}

func (e Extension) String() string {
	switch e {
	case ExtNone:
		return "none"
	case ExtSixth:
		return "6th"
	case ExtSeventh:
		return "7th"
	case ExtMajorSeventh:
		return "maj7th"
	default:
		return "unknown"
	}
}
