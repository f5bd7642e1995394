package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/icco/chordclock/internal/harmony"
	"github.com/icco/chordclock/internal/keyboard"
)

const stripOctaves = 2

var (
	whiteKeys = []int{0, 2, 4, 5, 7, 9, 11}                       // C D E F G A B
	blackKeys = []int{1, 3, -1, 6, 8, 10, -1}                      // C# D# _ F# G# A# _
	blackPos  = []bool{true, true, false, true, true, true, false} // which white keys have black keys after
)

var (
	whiteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	blackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	outsideWhite  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	activeWhite   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	activeBlack   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	releasedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
)

// strip is a piano strip covering the two octaves around an octave window.
// Every key is one cell followed by a gap, black keys on the top row and
// white keys on the bottom row.
type strip struct {
	first int // C at or below the window's low note
	win   harmony.Window
}

func newStrip(w harmony.Window) strip {
	return strip{first: w.Low / 12 * 12, win: w}
}

// width in cells.
func (s strip) width() int {
	return stripOctaves * len(whiteKeys) * 2
}

// noteAt returns the note under a cell of the strip. Row 0 is the black
// keys, row 1 the white keys.
func (s strip) noteAt(col, row int) (int, bool) {
	if col < 0 || col >= s.width() || col%2 != 0 {
		return 0, false
	}
	idx := col / 2
	octave, i := idx/len(whiteKeys), idx%len(whiteKeys)
	base := s.first + octave*12

	var note int
	switch row {
	case 0:
		if !blackPos[i] {
			return 0, false
		}
		note = base + blackKeys[i]
	case 1:
		note = base + whiteKeys[i]
	default:
		return 0, false
	}
	if note >= keyboard.NumKeys {
		return 0, false
	}
	return note, true
}

func (s strip) keyStyle(kb *keyboard.Keyboard, note int, black bool) lipgloss.Style {
	switch {
	case kb.Pressed(note) && black:
		return activeBlack
	case kb.Pressed(note):
		return activeWhite
	case kb.Released(note):
		return releasedStyle
	case black:
		return blackStyle
	case !s.win.Contains(note):
		return outsideWhite
	default:
		return whiteStyle
	}
}

func (s strip) render(kb *keyboard.Keyboard) string {
	var top, bottom strings.Builder

	for col := 0; col < s.width(); col += 2 {
		if note, ok := s.noteAt(col, 0); ok {
			top.WriteString(s.keyStyle(kb, note, true).Render("█"))
		} else {
			top.WriteString(" ")
		}
		top.WriteString(" ")

		if note, ok := s.noteAt(col, 1); ok {
			bottom.WriteString(s.keyStyle(kb, note, false).Render("█"))
		} else {
			bottom.WriteString(" ")
		}
		bottom.WriteString(" ")
	}

	return top.String() + "\n" + bottom.String()
}

var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// noteName gives note names like C4 for 60.
func noteName(note int) string {
	octave := note/12 - 1
	return fmt.Sprintf("%s%d", sharpNames[note%12], octave)
}
