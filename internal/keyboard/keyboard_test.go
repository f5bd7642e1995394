package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVoice struct {
	note   int
	starts int
	stops  int
}

func (v *fakeVoice) Start() { v.starts++ }
func (v *fakeVoice) Stop()  { v.stops++ }

type fakeFactory struct {
	voices []*fakeVoice
}

func (f *fakeFactory) NewVoice(note int) Voice {
	v := &fakeVoice{note: note}
	f.voices = append(f.voices, v)
	return v
}

// sounding counts voices started but not yet stopped.
func (f *fakeFactory) sounding() int {
	n := 0
	for _, v := range f.voices {
		n += v.starts - v.stops
	}
	return n
}

func (f *fakeFactory) assertBalanced(t *testing.T) {
	t.Helper()
	for _, v := range f.voices {
		assert.Equal(t, 1, v.starts, "note %d started", v.note)
		assert.Equal(t, 1, v.stops, "note %d stopped", v.note)
	}
}

func TestActivateDeactivate(t *testing.T) {
	f := &fakeFactory{}
	k := New(f)

	k.Activate(60)
	assert.True(t, k.Pressed(60))
	assert.True(t, k.Sounding(60))
	assert.Equal(t, []int{60}, k.Active())

	// A second activation reuses the live voice.
	k.Activate(60)
	assert.Len(t, f.voices, 1)

	k.Deactivate(60)
	assert.False(t, k.Pressed(60))
	assert.False(t, k.Sounding(60))
	assert.True(t, k.Released(60))
	assert.Empty(t, k.Active())

	// Deactivating again does not stop the voice twice.
	k.Deactivate(60)
	f.assertBalanced(t)
}

func TestActivateChordReplacesChord(t *testing.T) {
	f := &fakeFactory{}
	k := New(f)

	k.ActivateChord([]int{60, 64, 67})
	assert.Equal(t, []int{60, 64, 67}, k.Active())
	assert.Equal(t, 3, f.sounding())

	k.ActivateChord([]int{62, 65, 69, 72})
	assert.Equal(t, []int{62, 65, 69, 72}, k.Active())
	assert.Equal(t, 4, f.sounding())
	for _, n := range []int{60, 64, 67} {
		assert.False(t, k.Pressed(n))
		assert.False(t, k.Sounding(n))
	}

	k.DeactivateChord()
	assert.Zero(t, f.sounding())
	assert.Empty(t, k.Active())
	f.assertBalanced(t)
}

func TestSharedNoteIsRestruck(t *testing.T) {
	f := &fakeFactory{}
	k := New(f)

	k.ActivateChord([]int{60, 64, 67})
	k.ActivateChord([]int{60, 65, 69})

	// The old C is stopped before the new one starts.
	require.Len(t, f.voices, 6)
	assert.Equal(t, 3, f.sounding())
	assert.Equal(t, 1, f.voices[0].stops)
	assert.Equal(t, 60, f.voices[3].note)
	assert.Equal(t, 0, f.voices[3].stops)
}

func TestReleasedMarksClearOnNextActivation(t *testing.T) {
	f := &fakeFactory{}
	k := New(f)

	k.ActivateChord([]int{60, 64, 67})
	k.DeactivateChord()
	for _, n := range []int{60, 64, 67} {
		assert.True(t, k.Released(n))
	}

	k.Activate(72)
	for _, n := range []int{60, 64, 67} {
		assert.False(t, k.Released(n))
	}
	assert.True(t, k.Pressed(72))
}

func TestOutOfRangeNotesAreIgnored(t *testing.T) {
	f := &fakeFactory{}
	k := New(f)

	k.Activate(-1)
	k.Activate(NumKeys)
	k.Deactivate(-1)
	k.Deactivate(500)
	assert.Empty(t, f.voices)
	assert.False(t, k.Pressed(-1))
	assert.False(t, k.Released(NumKeys))
}

func TestNilFactory(t *testing.T) {
	k := New(nil)
	k.Activate(60)
	assert.True(t, k.Pressed(60))
	assert.False(t, k.Sounding(60))
	k.Deactivate(60)
	assert.False(t, k.Pressed(60))
}

func TestSilentChordsAreReleased(t *testing.T) {
	k := New(Tee{})

	k.ActivateChord([]int{60, 64, 67})
	assert.Equal(t, []int{60, 64, 67}, k.Active())
	k.DeactivateChord()
	k.ActivateChord([]int{62, 67, 71})
	k.DeactivateChord()

	for n := 0; n < NumKeys; n++ {
		assert.False(t, k.Pressed(n), "note %d still pressed", n)
		assert.False(t, k.Sounding(n))
	}
	assert.Empty(t, k.Active())
	for _, n := range []int{62, 67, 71} {
		assert.True(t, k.Released(n))
	}
}

func TestCloseStopsEverything(t *testing.T) {
	f := &fakeFactory{}
	k := New(f)
	k.ActivateChord([]int{60, 64, 67, 71, 74})
	k.Activate(48)

	k.Close()
	assert.Zero(t, f.sounding())
	f.assertBalanced(t)
}

func TestRandomSequenceNeverLeaks(t *testing.T) {
	f := &fakeFactory{}
	k := New(f)

	chords := [][]int{{60, 64, 67}, {57, 60, 64}, {62, 66, 69, 72}, {60}, {}}
	for i := 0; i < 50; i++ {
		switch i % 4 {
		case 0:
			k.ActivateChord(chords[i%len(chords)])
		case 1:
			k.Activate(40 + i)
		case 2:
			k.Deactivate(40 + i - 1)
		default:
			k.DeactivateChord()
		}
		assert.Equal(t, len(k.Active()), f.sounding())
	}
	k.Close()
	f.assertBalanced(t)
}

func TestSymbol(t *testing.T) {
	k := New(&fakeFactory{}, WithDefaultSymbol("Chord"))
	assert.Equal(t, "Chord", k.Symbol())
	k.SetSymbol("Am7")
	assert.Equal(t, "Am7", k.Symbol())
	k.ClearSymbol()
	assert.Equal(t, "Chord", k.Symbol())
}

func TestTee(t *testing.T) {
	a, b := &fakeFactory{}, &fakeFactory{}
	k := New(Tee{a, nil, b})

	k.ActivateChord([]int{60, 64})
	assert.Equal(t, 2, a.sounding())
	assert.Equal(t, 2, b.sounding())

	k.Close()
	a.assertBalanced(t)
	b.assertBalanced(t)

	assert.Nil(t, Tee{nil}.NewVoice(60))
}

func TestNoteForKey(t *testing.T) {
	n, ok := NoteForKey("q")
	assert.True(t, ok)
	assert.Equal(t, 60, n)

	n, ok = NoteForKey("]")
	assert.True(t, ok)
	assert.Equal(t, 79, n)

	n, ok = NoteForKey("5")
	assert.True(t, ok)
	assert.Equal(t, 66, n)

	_, ok = NoteForKey("4")
	assert.False(t, ok, "no black key between E and F")
}
