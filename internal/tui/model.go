// Package tui is the interactive chord clock: a circle-of-fifths dial that
// plays chords under the mouse, with a piano strip and a toggle panel.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/icco/chordclock/internal/audio"
	"github.com/icco/chordclock/internal/config"
	"github.com/icco/chordclock/internal/dial"
	"github.com/icco/chordclock/internal/harmony"
	"github.com/icco/chordclock/internal/keyboard"
)

const (
	headerRows = 2 // title and a blank line
	footerRows = 7 // chord symbol, strip, toggles, status, blank, help

	minFaceRows     = 11
	defaultFaceRows = 21

	volumeStep = 0.01
)

// Synth is the built-in synthesizer as the model drives it.
type Synth interface {
	keyboard.VoiceFactory
	SetVolume(vol float64)
	Volume() float64
	SetWave(w audio.WaveType)
	Wave() audio.WaveType
	AllNotesOff()
	Close() error
}

// Output is any other sound sink, such as a MIDI port.
type Output interface {
	keyboard.VoiceFactory
	Name() string
	Close() error
}

// Devices are the sinks opened at startup. Errs holds sinks that failed to
// open; the instrument keeps running without them.
type Devices struct {
	Synth Synth
	MIDI  Output
	Errs  []error
}

// Opener opens the devices. It runs once, off the event loop.
type Opener func() Devices

// devicesMsg is sent when the devices have been opened.
type devicesMsg Devices

// tickMsg redraws the clock.
type tickMsg time.Time

// noteOffMsg ends a note started from the computer keyboard.
type noteOffMsg struct {
	note int
	gen  uint64
}

// sinks is the keyboard's voice factory. Devices attach to it once open.
type sinks struct {
	keyboard.Tee
}

// Model is the bubbletea model of the instrument.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger
	open   Opener
	clock  func() time.Time

	keys keyMap
	help help.Model

	out   *sinks
	kb    *keyboard.Keyboard
	synth Synth
	midi  Output

	window  harmony.Window
	toggles harmony.Toggles
	volume  float64
	wave    audio.WaveType

	face   dial.Face
	now    time.Time
	width  int
	height int

	dialHeld  bool
	stripNote int
	held      map[int]uint64 // computer-keyboard notes awaiting release
	nextGen   uint64

	message string
	ready   bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithOpener sets how devices are opened. Without one the instrument is
// silent.
func WithOpener(open Opener) Option {
	return func(m *Model) {
		m.open = open
	}
}

// WithClock replaces time.Now for the clock hands.
func WithClock(clock func() time.Time) Option {
	return func(m *Model) {
		m.clock = clock
	}
}

// New builds the instrument from a validated config.
func New(cfg *config.Config, opts ...Option) *Model {
	m := &Model{
		cfg:       cfg,
		logger:    slog.New(slog.DiscardHandler),
		clock:     time.Now,
		keys:      newKeyMap(),
		help:      help.New(),
		out:       &sinks{},
		window:    cfg.Window(),
		volume:    cfg.Volume,
		wave:      cfg.WaveType(),
		stripNote: -1,
		held:      make(map[int]uint64),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.kb = keyboard.New(m.out, keyboard.WithLogger(m.logger))
	m.now = m.clock()
	m.face = dial.Face{EmptyKeyLabel: cfg.EmptyKeyLabel}
	m.resizeFace(0, 0)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.openDevices, tick())
}

func (m *Model) openDevices() tea.Msg {
	if m.open == nil {
		return devicesMsg{}
	}
	return devicesMsg(m.open())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Keyboard exposes the note state.
func (m *Model) Keyboard() *keyboard.Keyboard {
	return m.kb
}

// Window is the current octave window.
func (m *Model) Window() harmony.Window {
	return m.window
}

// Toggles is the current toggle panel state.
func (m *Model) Toggles() harmony.Toggles {
	return m.toggles
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeFace(msg.Width, msg.Height)
		return m, nil

	case devicesMsg:
		m.attach(Devices(msg))
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case noteOffMsg:
		if gen, ok := m.held[msg.note]; ok && gen == msg.gen {
			delete(m.held, msg.note)
			m.kb.Deactivate(msg.note)
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) attach(d Devices) {
	for _, err := range d.Errs {
		m.logger.Warn("device unavailable", "err", err)
		m.message = err.Error()
	}
	if d.Synth != nil {
		d.Synth.SetVolume(m.volume)
		d.Synth.SetWave(m.wave)
		m.volume, m.wave = d.Synth.Volume(), d.Synth.Wave()
		m.synth = d.Synth
		m.out.Tee = append(m.out.Tee, d.Synth)
	}
	if d.MIDI != nil {
		m.midi = d.MIDI
		m.out.Tee = append(m.out.Tee, d.MIDI)
		if len(d.Errs) == 0 {
			m.message = "MIDI out: " + d.MIDI.Name()
		}
	}
	m.ready = true
}

// resizeFace fits the dial between the header and footer. Terminal cells
// are about twice as tall as wide, so the face is twice as many columns as
// rows.
func (m *Model) resizeFace(width, height int) {
	rows := defaultFaceRows
	if height > 0 {
		rows = max(height-headerRows-footerRows, minFaceRows)
	}
	if width > 0 && rows*2 > width {
		rows = max(width/2, minFaceRows)
	}
	m.face.Rows = rows
	m.face.Cols = rows * 2
}

func (m *Model) stripTop() int {
	return headerRows + m.face.Rows + 1
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
			return
		}
		if m.pressDial(msg) {
			return
		}
		m.pressStrip(msg)

	case tea.MouseActionRelease:
		if m.dialHeld {
			m.kb.DeactivateChord()
			m.held = make(map[int]uint64)
			m.dialHeld = false
			m.face.Marker = nil
		}
		if m.stripNote >= 0 {
			m.kb.Deactivate(m.stripNote)
			m.stripNote = -1
		}
	}
}

// pressDial plays the chord under the pointer. It reports whether the
// press landed on the dial's rings.
func (m *Model) pressDial(msg tea.MouseMsg) bool {
	col, row := msg.X, msg.Y-headerRows
	if col < 0 || col >= m.face.Cols || row < 0 || row >= m.face.Rows {
		return false
	}
	p := m.face.Decode(col, row)
	chord, ok := harmony.Map(p.Hour, p.Zone, m.modifiers(msg))
	if !ok {
		return false
	}

	notes := chord.Notes(m.window)
	m.kb.ActivateChord(notes)
	m.kb.SetSymbol(chord.Symbol())
	m.held = make(map[int]uint64)
	m.dialHeld = true
	m.face.Marker = &dial.Vec{X: float64(col), Y: float64(row)}

	m.logger.Debug("chord",
		"hour", chord.Hour,
		"zone", chord.Zone,
		"symbol", chord.Symbol(),
		"notes", notes,
	)
	return true
}

func (m *Model) pressStrip(msg tea.MouseMsg) {
	s := newStrip(m.window)
	note, ok := s.noteAt(msg.X, msg.Y-m.stripTop())
	if !ok {
		return
	}
	m.kb.ClearSymbol()
	m.kb.Activate(note)
	m.stripNote = note
	// The mouse now holds the note; a pending key release must not end it.
	delete(m.held, note)
}

func (m *Model) modifiers(msg tea.MouseMsg) harmony.Modifiers {
	mods := harmony.Modifiers{
		Alt:             msg.Alt,
		Ctrl:            msg.Ctrl,
		Shift:           msg.Shift,
		SecondaryButton: msg.Button == tea.MouseButtonRight,
	}
	if m.cfg.Toggles {
		t := m.toggles
		mods.Toggles = &t
	}
	return mods
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.cleanup

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Seventh):
		m.toggles.Seventh = !m.toggles.Seventh
	case key.Matches(msg, m.keys.MajorSeventh):
		m.toggles.MajorSeventh = !m.toggles.MajorSeventh
	case key.Matches(msg, m.keys.FlatFifth):
		m.toggles.FlatFifth = !m.toggles.FlatFifth
	case key.Matches(msg, m.keys.AddNinth):
		m.toggles.AddNinth = !m.toggles.AddNinth

	case key.Matches(msg, m.keys.SemitoneDown):
		m.shiftWindow(-1)
	case key.Matches(msg, m.keys.SemitoneUp):
		m.shiftWindow(1)
	case key.Matches(msg, m.keys.OctaveDown):
		m.shiftWindow(-12)
	case key.Matches(msg, m.keys.OctaveUp):
		m.shiftWindow(12)

	case key.Matches(msg, m.keys.VolumeUp):
		m.setVolume(m.volume + volumeStep)
	case key.Matches(msg, m.keys.VolumeDown):
		m.setVolume(m.volume - volumeStep)

	case key.Matches(msg, m.keys.Wave):
		m.wave = m.wave.Next()
		if m.synth != nil {
			m.synth.SetWave(m.wave)
			m.wave = m.synth.Wave()
		}
		m.message = "Wave: " + m.wave.String()

	case key.Matches(msg, m.keys.Release):
		m.releaseAll()

	default:
		if note, ok := keyboard.NoteForKey(msg.String()); ok {
			return m, m.playNote(note)
		}
	}
	return m, nil
}

// playNote sounds a note from the computer keyboard. Terminals report no
// key release, so the note ends after the hold time unless it is pressed
// again first.
func (m *Model) playNote(note int) tea.Cmd {
	m.kb.ClearSymbol()
	m.kb.Activate(note)

	m.nextGen++
	gen := m.nextGen
	m.held[note] = gen
	return tea.Tick(m.cfg.NoteHold, func(time.Time) tea.Msg {
		return noteOffMsg{note: note, gen: gen}
	})
}

func (m *Model) shiftWindow(delta int) {
	m.window = m.window.Shift(delta)
	m.message = fmt.Sprintf("Window: %s..%s", noteName(m.window.Low), noteName(m.window.High()))
}

func (m *Model) setVolume(vol float64) {
	m.volume = min(max(vol, audio.MinVolume), audio.MaxVolume)
	if m.synth != nil {
		m.synth.SetVolume(m.volume)
		m.volume = m.synth.Volume()
	}
	m.message = fmt.Sprintf("Volume: %.2f", m.volume)
}

func (m *Model) releaseAll() {
	m.kb.DeactivateChord()
	m.kb.ClearSymbol()
	m.held = make(map[int]uint64)
	m.dialHeld = false
	m.stripNote = -1
	m.face.Marker = nil
	if m.synth != nil {
		m.synth.AllNotesOff()
	}
}

func (m *Model) cleanup() tea.Msg {
	m.releaseAll()
	m.kb.Close()
	if m.midi != nil {
		if err := m.midi.Close(); err != nil {
			m.logger.Warn("closing MIDI out", "err", err)
		}
	}
	if m.synth != nil {
		if err := m.synth.Close(); err != nil {
			m.logger.Warn("closing synth", "err", err)
		}
	}
	return tea.Quit()
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	symbolStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	toggleOn = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	toggleOff = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Circle of Fifths Chord Clock") + "\n\n")
	b.WriteString(m.face.Render(m.now) + "\n")

	symbol := m.kb.Symbol()
	if symbol == "" {
		symbol = "-"
	}
	b.WriteString(subtitleStyle.Render("Chord: ") + symbolStyle.Render(symbol) + "\n")
	b.WriteString(newStrip(m.window).render(m.kb) + "\n")
	b.WriteString(m.togglePanel() + "\n")
	b.WriteString(m.status() + "\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) togglePanel() string {
	if !m.cfg.Toggles {
		return subtitleStyle.Render("right button: 7th  shift: 6th  both: M7  alt: -5/aug  ctrl: add9")
	}
	render := func(on bool, label string) string {
		if on {
			return toggleOn.Render(label)
		}
		return toggleOff.Render(label)
	}
	return strings.Join([]string{
		render(m.toggles.Seventh, "7th"),
		render(m.toggles.MajorSeventh, "M7"),
		render(m.toggles.FlatFifth, "-5"),
		render(m.toggles.AddNinth, "add9"),
	}, " ")
}

func (m *Model) status() string {
	parts := []string{
		fmt.Sprintf("Window %s..%s", noteName(m.window.Low), noteName(m.window.High())),
		fmt.Sprintf("Vol %.2f", m.volume),
		m.wave.String(),
	}
	switch {
	case !m.ready:
		parts = append(parts, "opening audio...")
	case m.synth == nil && m.midi == nil:
		parts = append(parts, "silent")
	}
	if m.message != "" {
		parts = append(parts, m.message)
	}
	return subtitleStyle.Render(strings.Join(parts, "  |  "))
}
