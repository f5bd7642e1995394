package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/icco/chordclock/internal/config"
	"github.com/icco/chordclock/internal/harmony"
)

var chordOpts struct {
	hour      int
	zone      string
	all       bool
	octaveLow int

	alt, ctrl, shift, secondary bool

	seventh, majorSeventh, flatFifth, addNinth bool
}

var chordCmd = &cobra.Command{
	Use:   "chord",
	Short: "Print the chord at a position of the dial",
	Long: `Print the chord the dial plays at an hour and ring, without sound.

Hours count fifths from C: 0 is C, 1 is G, -1 is F, 6 and -6 are F#/Gb.
Any toggle flag switches to the toggle panel, which then alone picks the
extension; otherwise --secondary and --shift do, like the mouse.

Examples:
  chordclock chord --hour 3 --zone minor --seventh
  chordclock chord --all --alt
`,
	Args: cobra.NoArgs,
	RunE: runChord,
}

func init() {
	f := chordCmd.Flags()
	f.IntVar(&chordOpts.hour, "hour", 0, "dial hour, -6 to 5 (other values wrap)")
	f.StringVar(&chordOpts.zone, "zone", "major", "ring: minor, major or sus4")
	f.BoolVar(&chordOpts.all, "all", false, "print every hour and ring")
	f.IntVar(&chordOpts.octaveLow, "octave-low", 0, "lowest note of the octave window, 0-116 (default from config)")

	f.BoolVar(&chordOpts.alt, "alt", false, "alter the fifth (-5, or aug on sus4)")
	f.BoolVar(&chordOpts.ctrl, "ctrl", false, "add a ninth")
	f.BoolVar(&chordOpts.shift, "shift", false, "add one to the extension selector")
	f.BoolVar(&chordOpts.secondary, "secondary", false, "add two to the extension selector, like the right mouse button")

	f.BoolVar(&chordOpts.seventh, "seventh", false, "toggle: 7th")
	f.BoolVar(&chordOpts.majorSeventh, "major-seventh", false, "toggle: M7")
	f.BoolVar(&chordOpts.flatFifth, "flat-fifth", false, "toggle: -5")
	f.BoolVar(&chordOpts.addNinth, "add-ninth", false, "toggle: add9")

	chordCmd.MarkFlagsMutuallyExclusive("all", "hour")
	chordCmd.MarkFlagsMutuallyExclusive("all", "zone")
	rootCmd.AddCommand(chordCmd)
}

func chordModifiers(cmd *cobra.Command) harmony.Modifiers {
	mods := harmony.Modifiers{
		Alt:             chordOpts.alt,
		Ctrl:            chordOpts.ctrl,
		Shift:           chordOpts.shift,
		SecondaryButton: chordOpts.secondary,
	}
	f := cmd.Flags()
	if f.Changed("seventh") || f.Changed("major-seventh") || f.Changed("flat-fifth") || f.Changed("add-ninth") {
		mods.Toggles = &harmony.Toggles{
			Seventh:      chordOpts.seventh,
			MajorSeventh: chordOpts.majorSeventh,
			FlatFifth:    chordOpts.flatFifth,
			AddNinth:     chordOpts.addNinth,
		}
	}
	return mods
}

func runChord(cmd *cobra.Command, args []string) error {
	w, err := chordWindow(cmd, cfg)
	if err != nil {
		return err
	}
	mods := chordModifiers(cmd)

	hours := []int{chordOpts.hour}
	zones := []harmony.Zone{}
	if chordOpts.all {
		hours = hours[:0]
		for h := harmony.FirstHour; h <= harmony.LastHour; h++ {
			hours = append(hours, h)
		}
		zones = append(zones, harmony.ZoneMinor, harmony.ZoneMajor, harmony.ZoneSus4)
	} else {
		z, ok := harmony.ParseZone(chordOpts.zone)
		if !ok || z == harmony.ZoneOutside {
			return fmt.Errorf("unknown zone %q: want minor, major or sus4", chordOpts.zone)
		}
		zones = append(zones, z)
	}

	fmt.Fprintln(cmd.OutOrStdout(), chordTable(chordRows(hours, zones, mods, w)))
	return nil
}

// chordWindow is the configured octave window unless --octave-low is set.
func chordWindow(cmd *cobra.Command, c *config.Config) (harmony.Window, error) {
	if !cmd.Flags().Changed("octave-low") {
		return c.Window(), nil
	}
	low := chordOpts.octaveLow
	if low < harmony.MinOctaveLow || low > harmony.MaxOctaveLow {
		return harmony.Window{}, fmt.Errorf("--octave-low %d not in %d..%d", low, harmony.MinOctaveLow, harmony.MaxOctaveLow)
	}
	return harmony.Window{Low: low}, nil
}

// chordRows maps every hour and zone to a table row.
func chordRows(hours []int, zones []harmony.Zone, mods harmony.Modifiers, w harmony.Window) [][]string {
	var rows [][]string
	for _, h := range hours {
		for _, z := range zones {
			c, ok := harmony.Map(h, z, mods)
			if !ok {
				continue
			}
			tones := make([]string, 0, len(c.Offsets))
			for _, pc := range c.PitchClasses() {
				tones = append(tones, pc.Spellings()[0])
			}
			notes := make([]string, 0, len(c.Offsets))
			for _, n := range c.Notes(w) {
				notes = append(notes, strconv.Itoa(n))
			}
			rows = append(rows, []string{
				strconv.Itoa(c.Hour),
				c.Zone.String(),
				c.Symbol(),
				strings.Join(tones, " "),
				strings.Join(notes, " "),
			})
		}
	}
	return rows
}

func chordTable(rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("HOUR", "ZONE", "CHORD", "TONES", "NOTES").
		Rows(rows...).
		String()
}
