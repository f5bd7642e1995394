// Package midiout plays keyboard voices on an external MIDI output.
//
// A driver must be registered by the program, e.g. by importing
// gitlab.com/gomidi/midi/v2/drivers/rtmididrv.
package midiout

import (
	"errors"
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/icco/chordclock/internal/keyboard"
)

// ErrPortNotFound is returned by Open when no output matches the name.
var ErrPortNotFound = errors.New("midi output not found")

const (
	DefaultVelocity = 100
	allNotesOff     = 123
)

// Ports lists the names of the available MIDI outputs.
func Ports() []string {
	var names []string
	for _, out := range midi.GetOutPorts() {
		names = append(names, out.String())
	}
	return names
}

// Port sends note on/off messages for keyboard voices.
type Port struct {
	name     string
	out      drivers.Out
	send     func(msg midi.Message) error
	channel  uint8
	velocity uint8
	logger   *slog.Logger
}

var _ keyboard.VoiceFactory = (*Port)(nil)

// Open connects to the first output whose name contains name.
func Open(name string, channel, velocity uint8, logger *slog.Logger) (*Port, error) {
	out, err := midi.FindOutPort(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrPortNotFound, name, Ports())
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("failed to open port %s: %w", out.String(), err)
	}
	p := newPort(out.String(), send, channel, velocity, logger)
	p.out = out
	return p, nil
}

func newPort(name string, send func(midi.Message) error, channel, velocity uint8, logger *slog.Logger) *Port {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if velocity == 0 || velocity > 127 {
		velocity = DefaultVelocity
	}
	return &Port{
		name:     name,
		send:     send,
		channel:  channel & 0x0F,
		velocity: velocity,
		logger:   logger,
	}
}

// Name of the connected output.
func (p *Port) Name() string {
	return p.name
}

func (p *Port) sendMsg(msg midi.Message) {
	if p.send == nil {
		return
	}
	if err := p.send(msg); err != nil {
		p.logger.Warn("midi send failed", "port", p.name, "msg", msg.String(), "err", err)
	}
}

// NewVoice returns a voice for note. Notes outside MIDI range are silent.
func (p *Port) NewVoice(note int) keyboard.Voice {
	if note < 0 || note > 127 {
		return nil
	}
	return &voice{port: p, key: uint8(note)}
}

type voice struct {
	port *Port
	key  uint8
}

func (v *voice) Start() {
	v.port.sendMsg(midi.NoteOn(v.port.channel, v.key, v.port.velocity))
}

func (v *voice) Stop() {
	v.port.sendMsg(midi.NoteOff(v.port.channel, v.key))
}

// Close sends all notes off and closes the output.
func (p *Port) Close() error {
	p.sendMsg(midi.ControlChange(p.channel, allNotesOff, 0))
	p.send = nil
	if p.out != nil {
		if err := p.out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", p.name, err)
		}
		p.out = nil
	}
	return nil
}

// CloseDriver releases the MIDI driver. Call it once on exit.
func CloseDriver() {
	midi.CloseDriver()
}
