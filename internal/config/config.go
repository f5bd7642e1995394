// Package config loads chordclock settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/icco/chordclock/internal/audio"
	"github.com/icco/chordclock/internal/harmony"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const appName = "chordclock"

// Config is the main configuration structure
type Config struct {
	// OctaveLow is the lowest note of the playing window.
	OctaveLow int `yaml:"octave_low"`

	Volume float64 `yaml:"volume"`
	Wave   string  `yaml:"wave"`
	Audio  bool    `yaml:"audio"`

	// Toggles shows the on-screen 7th/M7/-5/add9 panel. Without it the
	// mouse button and modifier keys pick the extension.
	Toggles bool `yaml:"toggles"`

	// NoteHold is how long a QWERTY note sounds; terminals do not report
	// key release.
	NoteHold time.Duration `yaml:"note_hold"`

	MIDIOut     string `yaml:"midi_out,omitempty"`
	MIDIChannel int    `yaml:"midi_channel"`
	Velocity    int    `yaml:"velocity"`

	EmptyKeyLabel string `yaml:"empty_key_label"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		OctaveLow:     harmony.DefaultOctaveLow,
		Volume:        audio.DefaultVolume,
		Wave:          audio.WaveSawtooth.String(),
		Audio:         true,
		Toggles:       true,
		NoteHold:      400 * time.Millisecond,
		Velocity:      100,
		EmptyKeyLabel: harmony.DefaultEmptyKeyLabel + "/sus4",
	}
}

// Dir returns the config directory path
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the full path to config.yaml
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, or returns defaults if there is no file.
// Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := c.YAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// YAML encodes the config as written by Save.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Validate checks every field's range.
func (c *Config) Validate() error {
	if c.OctaveLow < harmony.MinOctaveLow || c.OctaveLow > harmony.MaxOctaveLow {
		return fmt.Errorf("%w: octave_low %d not in %d..%d", ErrInvalid, c.OctaveLow, harmony.MinOctaveLow, harmony.MaxOctaveLow)
	}
	if c.Volume < audio.MinVolume || c.Volume > audio.MaxVolume {
		return fmt.Errorf("%w: volume %v not in %v..%v", ErrInvalid, c.Volume, audio.MinVolume, audio.MaxVolume)
	}
	if _, err := audio.ParseWave(c.Wave); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.NoteHold <= 0 {
		return fmt.Errorf("%w: note_hold must be positive", ErrInvalid)
	}
	if c.MIDIChannel < 0 || c.MIDIChannel > 15 {
		return fmt.Errorf("%w: midi_channel %d not in 0..15", ErrInvalid, c.MIDIChannel)
	}
	if c.Velocity < 1 || c.Velocity > 127 {
		return fmt.Errorf("%w: velocity %d not in 1..127", ErrInvalid, c.Velocity)
	}
	return nil
}

// Window is the configured octave window.
func (c *Config) Window() harmony.Window {
	return harmony.Window{Low: c.OctaveLow}
}

// WaveType is the configured wave, falling back to sawtooth.
func (c *Config) WaveType() audio.WaveType {
	w, err := audio.ParseWave(c.Wave)
	if err != nil {
		return audio.WaveSawtooth
	}
	return w
}
