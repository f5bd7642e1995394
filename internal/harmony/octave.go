package harmony

// Octave window bounds. The lower bound runs 0 through 116, so the window
// never leaves MIDI range.
const (
	DefaultOctaveLow = 58
	MinOctaveLow     = 0
	MaxOctaveLow     = 128 - semitonesPerOctave
)

// Window is a span of twelve consecutive note numbers starting at Low.
type Window struct {
	Low int
}

// DefaultWindow is centred around middle C.
var DefaultWindow = Window{Low: DefaultOctaveLow}

// High is the last note number inside the window.
func (w Window) High() int {
	return w.Low + semitonesPerOctave - 1
}

// Contains reports whether note lies in the window.
func (w Window) Contains(note int) bool {
	return note >= w.Low && note <= w.High()
}

// Fold transposes note by octaves until it lies in the window.
func (w Window) Fold(note int) int {
	for !w.Contains(note) {
		if note < w.Low {
			note += semitonesPerOctave
		} else {
			note -= semitonesPerOctave
		}
	}
	return note
}

// Shift moves the window by delta semitones, clamped to the slider range.
func (w Window) Shift(delta int) Window {
	low := w.Low + delta
	if low < MinOctaveLow {
		low = MinOctaveLow
	}
	if low > MaxOctaveLow {
		low = MaxOctaveLow
	}
	return Window{Low: low}
}
