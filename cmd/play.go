package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/icco/chordclock/internal/audio"
	"github.com/icco/chordclock/internal/config"
	"github.com/icco/chordclock/internal/midiout"
	"github.com/icco/chordclock/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play chords on the clock face",
	Long: `Open the chord clock in the terminal.

Click a ring of the dial to hold its chord; release the button to stop it.
The letter row of the keyboard plays single notes. Sound goes to the
built-in synthesizer and, with --midi-out, to a MIDI output as well.

Example:
  chordclock play --midi-out "IAC Driver" --wave square
`,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.Int("octave-low", 0, "lowest note of the octave window (0-116)")
	f.Float64("volume", 0, "synth volume (0-0.3)")
	f.String("wave", "", "synth wave: sine, square, sawtooth or triangle")
	f.String("midi-out", "", "also play on the MIDI output whose name contains this")
	f.Int("channel", 0, "MIDI channel (0-15)")
	f.Bool("no-audio", false, "do not open the built-in synthesizer")
	f.Bool("no-toggles", false, "pick extensions with the mouse button and shift instead of toggles")
	rootCmd.AddCommand(playCmd)
}

// applyPlayFlags overrides the config with the flags that were set.
func applyPlayFlags(cmd *cobra.Command, c *config.Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("octave-low") {
		c.OctaveLow, err = f.GetInt("octave-low")
	}
	if err == nil && f.Changed("volume") {
		c.Volume, err = f.GetFloat64("volume")
	}
	if err == nil && f.Changed("wave") {
		c.Wave, err = f.GetString("wave")
	}
	if err == nil && f.Changed("midi-out") {
		c.MIDIOut, err = f.GetString("midi-out")
	}
	if err == nil && f.Changed("channel") {
		c.MIDIChannel, err = f.GetInt("channel")
	}
	if err == nil && f.Changed("no-audio") {
		var off bool
		off, err = f.GetBool("no-audio")
		c.Audio = !off
	}
	if err == nil && f.Changed("no-toggles") {
		var off bool
		off, err = f.GetBool("no-toggles")
		c.Toggles = !off
	}
	if err != nil {
		return err
	}
	return c.Validate()
}

// openDevices opens the synth and MIDI output named by c. Failures are
// reported but not fatal.
func openDevices(c *config.Config) tui.Devices {
	var d tui.Devices

	if c.Audio {
		synth, err := audio.NewSynth(c.Volume, c.WaveType())
		if err != nil {
			d.Errs = append(d.Errs, fmt.Errorf("failed to initialize audio: %w", err))
		} else {
			d.Synth = synth
		}
	}

	if c.MIDIOut != "" {
		port, err := midiout.Open(c.MIDIOut, uint8(c.MIDIChannel), uint8(c.Velocity), logger)
		if err != nil {
			d.Errs = append(d.Errs, err)
		} else {
			d.MIDI = port
		}
	}

	logger.Info("devices opened",
		"audio", d.Synth != nil,
		"midi", d.MIDI != nil,
		"errors", len(d.Errs),
	)
	return d
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := applyPlayFlags(cmd, cfg); err != nil {
		return err
	}
	defer midiout.CloseDriver()

	m := tui.New(cfg,
		tui.WithLogger(logger),
		tui.WithOpener(func() tui.Devices { return openDevices(cfg) }),
	)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		p.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
