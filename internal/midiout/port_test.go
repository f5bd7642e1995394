package midiout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/icco/chordclock/internal/keyboard"
)

type recorder struct {
	msgs []midi.Message
	err  error
}

func (r *recorder) send(msg midi.Message) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestVoicesSendNoteOnOff(t *testing.T) {
	rec := &recorder{}
	p := newPort("test", rec.send, 2, 90, nil)

	k := keyboard.New(p)
	k.ActivateChord([]int{60, 64, 67})
	k.DeactivateChord()

	require.Len(t, rec.msgs, 6)

	var ch, key, vel uint8
	for i, want := range []uint8{60, 64, 67} {
		require.True(t, rec.msgs[i].GetNoteOn(&ch, &key, &vel))
		assert.Equal(t, uint8(2), ch)
		assert.Equal(t, want, key)
		assert.Equal(t, uint8(90), vel)
	}
	// Released most recent first.
	for i, want := range []uint8{67, 64, 60} {
		require.True(t, rec.msgs[3+i].GetNoteOff(&ch, &key, &vel))
		assert.Equal(t, want, key)
	}
}

func TestCloseSendsAllNotesOff(t *testing.T) {
	rec := &recorder{}
	p := newPort("test", rec.send, 0, 0, nil)
	require.NoError(t, p.Close())

	require.Len(t, rec.msgs, 1)
	var ch, ctl, val uint8
	require.True(t, rec.msgs[0].GetControlChange(&ch, &ctl, &val))
	assert.Equal(t, uint8(allNotesOff), ctl)

	// Nothing is sent after Close.
	p.NewVoice(60).Start()
	assert.Len(t, rec.msgs, 1)
}

func TestSendErrorsAreNotFatal(t *testing.T) {
	rec := &recorder{err: errors.New("unplugged")}
	p := newPort("test", rec.send, 0, 100, nil)
	v := p.NewVoice(60)
	v.Start()
	v.Stop()
	assert.Len(t, rec.msgs, 2)
}

func TestPortDefaults(t *testing.T) {
	p := newPort("synth", nil, 17, 0, nil)
	assert.Equal(t, "synth", p.Name())
	assert.Equal(t, uint8(1), p.channel)
	assert.Equal(t, uint8(DefaultVelocity), p.velocity)
	assert.Nil(t, p.NewVoice(128))
	assert.Nil(t, p.NewVoice(-1))
}
