// Package audio provides a small polyphonic synthesizer for the keyboard.
package audio

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/icco/chordclock/internal/keyboard"
)

const (
	sampleRate   = 44100
	channelCount = 2 // stereo
	bitDepth     = 2 // 16-bit

	maxVoices = 64
)

// Envelope time constants, in seconds. A held note fades on its own; a
// stopped note fades quickly and is freed after releaseTime.
const (
	decayTime   = 0.6
	releaseTau  = 0.1
	releaseTime = 0.2
)

// Volume bounds for SetVolume.
const (
	MinVolume     = 0.0
	MaxVolume     = 0.3
	DefaultVolume = 0.03
)

// WaveType represents different oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

var waveNames = [...]string{"sine", "square", "sawtooth", "triangle"}

func (w WaveType) String() string {
	if w < 0 || int(w) >= len(waveNames) {
		return "unknown"
	}
	return waveNames[w]
}

// Next cycles through the wave types.
func (w WaveType) Next() WaveType {
	return WaveType((int(w) + 1) % len(waveNames))
}

// ParseWave parses a wave name such as "sawtooth".
func ParseWave(s string) (WaveType, error) {
	for i, name := range waveNames {
		if strings.EqualFold(s, name) {
			return WaveType(i), nil
		}
	}
	return WaveSine, fmt.Errorf("unknown wave type %q", s)
}

// voice is one slot of the synth's voice pool.
type voice struct {
	gen       uint64
	note      int
	wave      WaveType
	frequency float64
	phase     float64
	gain      float64
	decay     float64 // per-sample gain multiplier
	releasing bool
	remaining int // samples left once releasing
	active    bool
}

// Synth is a polyphonic synthesizer
type Synth struct {
	mu      sync.Mutex
	otoCtx  *oto.Context
	player  *oto.Player
	voices  []*voice
	nextGen uint64
	volume  float64
	wave    WaveType
	running bool
}

var _ keyboard.VoiceFactory = (*Synth)(nil)

// NewSynth opens the audio device and starts the output stream. An error
// means the machine has no usable audio output.
func NewSynth(volume float64, wave WaveType) (*Synth, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-readyChan

	s := newSynth(volume, wave)
	s.otoCtx = otoCtx
	s.player = otoCtx.NewPlayer(&synthReader{synth: s})
	s.player.Play()

	return s, nil
}

func newSynth(volume float64, wave WaveType) *Synth {
	s := &Synth{wave: wave, running: true}
	s.volume = clampVolume(volume)
	return s
}

// synthReader implements io.Reader for continuous audio generation
type synthReader struct {
	synth *Synth
}

func (r *synthReader) Read(buf []byte) (int, error) {
	s := r.synth
	s.mu.Lock()
	defer s.mu.Unlock()

	numSamples := len(buf) / (channelCount * bitDepth)

	for i := 0; i < numSamples; i++ {
		var sample float64

		if s.running {
			for _, v := range s.voices {
				if !v.active {
					continue
				}
				sample += generateWave(v.wave, v.phase) * v.gain

				v.phase += v.frequency / sampleRate
				if v.phase >= 1.0 {
					v.phase -= 1.0
				}

				v.gain *= v.decay
				if v.releasing {
					v.remaining--
					if v.remaining <= 0 {
						v.active = false
					}
				}
			}
		}

		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}

		// Convert to 16-bit signed integer
		sampleInt := int16(sample * 32767)

		// Write stereo samples (same for L and R)
		idx := i * channelCount * bitDepth
		buf[idx] = byte(sampleInt)
		buf[idx+1] = byte(sampleInt >> 8)
		buf[idx+2] = byte(sampleInt)
		buf[idx+3] = byte(sampleInt >> 8)
	}

	return len(buf), nil
}

func generateWave(waveType WaveType, phase float64) float64 {
	switch waveType {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 0.8
		}
		return -0.8
	case WaveSawtooth:
		return 2*phase - 1
	case WaveTriangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// perSample turns a time constant into a per-sample gain multiplier.
func perSample(tau float64) float64 {
	return math.Exp(-1 / (tau * sampleRate))
}

// NewVoice returns a voice for note. Nothing sounds until Start.
func (s *Synth) NewVoice(note int) keyboard.Voice {
	return &Voice{synth: s, note: note}
}

// Voice is a handle on one note of the synth. Start and Stop may each be
// called once; a stolen voice's Stop is a no-op.
type Voice struct {
	synth *Synth
	note  int
	slot  *voice
	gen   uint64
}

// Start begins the note at the current volume and wave type.
func (h *Voice) Start() {
	s := h.synth
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.slot != nil {
		return
	}

	// Find an inactive voice or steal the oldest one
	var v *voice
	for _, candidate := range s.voices {
		if !candidate.active {
			v = candidate
			break
		}
	}
	if v == nil {
		if len(s.voices) < maxVoices {
			v = &voice{}
			s.voices = append(s.voices, v)
		} else {
			v = s.voices[0]
			s.voices = append(s.voices[1:], v)
		}
	}

	s.nextGen++
	*v = voice{
		gen:       s.nextGen,
		note:      h.note,
		wave:      s.wave,
		frequency: midiNoteToFreq(h.note),
		gain:      s.volume,
		decay:     perSample(decayTime),
		active:    true,
	}
	h.slot, h.gen = v, v.gen
}

// Stop fades the note out.
func (h *Voice) Stop() {
	s := h.synth
	s.mu.Lock()
	defer s.mu.Unlock()

	v := h.slot
	if v == nil || v.gen != h.gen || !v.active || v.releasing {
		return
	}
	v.releasing = true
	v.decay = perSample(releaseTau)
	v.remaining = int(releaseTime * sampleRate)
}

// ActiveVoices counts voices still producing sound, including fading ones.
func (s *Synth) ActiveVoices() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, v := range s.voices {
		if v.active {
			n++
		}
	}
	return n
}

// AllNotesOff releases every playing voice.
func (s *Synth) AllNotesOff() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.voices {
		if v.active && !v.releasing {
			v.releasing = true
			v.decay = perSample(releaseTau)
			v.remaining = int(releaseTime * sampleRate)
		}
	}
}

func clampVolume(vol float64) float64 {
	if vol < MinVolume {
		return MinVolume
	}
	if vol > MaxVolume {
		return MaxVolume
	}
	return vol
}

// SetVolume sets the starting gain of new notes, clamped to
// MinVolume..MaxVolume.
func (s *Synth) SetVolume(vol float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(vol)
}

// Volume returns the current volume.
func (s *Synth) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetWave sets the wave type of new notes.
func (s *Synth) SetWave(w WaveType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wave = w
}

// Wave returns the wave type of new notes.
func (s *Synth) Wave() WaveType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wave
}

// Close silences the synthesizer.
func (s *Synth) Close() error {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	// Note: As of oto v3.4, player.Close() is deprecated and no longer needed.
	// The player will be cleaned up when garbage collected.
	if s.player != nil {
		s.player.Pause()
	}
	return nil
}

// midiNoteToFreq converts a MIDI note number to frequency in Hz
func midiNoteToFreq(note int) float64 {
	// A4 (note 69) = 440 Hz
	return 440.0 * math.Pow(2.0, (float64(note)-69.0)/12.0)
}
