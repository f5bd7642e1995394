// Package keyboard tracks which notes are sounding and owns their voices.
//
// A Keyboard is not safe for concurrent use. It is driven from the single
// goroutine that handles input events.
package keyboard

import (
	"log/slog"
	"slices"
)

// NumKeys is the number of MIDI note numbers.
const NumKeys = 128

// Voice is one sounding pitch.
type Voice interface {
	Start()
	Stop()
}

// VoiceFactory creates a voice for a note number.
type VoiceFactory interface {
	NewVoice(note int) Voice
}

type key struct {
	voice    Voice
	pressed  bool
	released bool
}

// Keyboard maps note numbers to voices and remembers what to highlight.
type Keyboard struct {
	factory VoiceFactory
	logger  *slog.Logger

	keys   [NumKeys]key
	active []int // pressed notes, in activation order
	marked []int // notes highlighted as just released

	symbol        string
	defaultSymbol string
}

// Option configures a Keyboard.
type Option func(*Keyboard)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(k *Keyboard) {
		k.logger = l
	}
}

// WithDefaultSymbol sets the chord symbol shown when no chord is held.
func WithDefaultSymbol(s string) Option {
	return func(k *Keyboard) {
		k.defaultSymbol = s
		k.symbol = s
	}
}

// New returns a keyboard whose voices come from factory.
func New(factory VoiceFactory, opts ...Option) *Keyboard {
	k := &Keyboard{
		factory: factory,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func inRange(note int) bool {
	return note >= 0 && note < NumKeys
}

// Activate sounds note unless it already has a voice, and marks it pressed.
// Any just-released highlights are cleared. Notes outside MIDI range are
// ignored.
func (k *Keyboard) Activate(note int) {
	k.clearMarks()
	if !inRange(note) {
		return
	}
	key := &k.keys[note]
	if key.voice == nil && k.factory != nil {
		key.voice = k.factory.NewVoice(note)
		if key.voice != nil {
			key.voice.Start()
			k.logger.Debug("voice started", "note", note)
		}
	}
	if !key.pressed {
		key.pressed = true
		k.active = append(k.active, note)
	}
}

// Deactivate stops note's voice if it has one and marks it released.
func (k *Keyboard) Deactivate(note int) {
	if !inRange(note) {
		return
	}
	if i := slices.Index(k.active, note); i >= 0 {
		k.active = slices.Delete(k.active, i, i+1)
	}
	key := &k.keys[note]
	key.pressed = false
	if key.voice != nil {
		key.voice.Stop()
		key.voice = nil
		k.logger.Debug("voice stopped", "note", note)
	}
	if !key.released {
		key.released = true
		k.marked = append(k.marked, note)
	}
}

// DeactivateChord releases every pressed note, most recent first.
func (k *Keyboard) DeactivateChord() {
	for len(k.active) > 0 {
		k.Deactivate(k.active[len(k.active)-1])
	}
}

// ActivateChord replaces whatever is sounding with notes.
func (k *Keyboard) ActivateChord(notes []int) {
	k.DeactivateChord()
	for _, n := range notes {
		k.Activate(n)
	}
}

func (k *Keyboard) clearMarks() {
	for _, n := range k.marked {
		k.keys[n].released = false
	}
	k.marked = k.marked[:0]
}

// Pressed reports whether note is held down.
func (k *Keyboard) Pressed(note int) bool {
	return inRange(note) && k.keys[note].pressed
}

// Released reports whether note was let go since the last activation.
func (k *Keyboard) Released(note int) bool {
	return inRange(note) && k.keys[note].released
}

// Sounding reports whether note has a live voice.
func (k *Keyboard) Sounding(note int) bool {
	return inRange(note) && k.keys[note].voice != nil
}

// Active returns the pressed notes in activation order, whether or not
// they have a voice.
func (k *Keyboard) Active() []int {
	return slices.Clone(k.active)
}

// Symbol is the chord symbol to display.
func (k *Keyboard) Symbol() string {
	return k.symbol
}

// SetSymbol sets the displayed chord symbol.
func (k *Keyboard) SetSymbol(s string) {
	k.symbol = s
}

// ClearSymbol restores the default symbol.
func (k *Keyboard) ClearSymbol() {
	k.symbol = k.defaultSymbol
}

// Close stops every voice. The keyboard stays usable.
func (k *Keyboard) Close() {
	k.DeactivateChord()
}
