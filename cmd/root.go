package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/icco/chordclock/internal/config"
	"github.com/icco/chordclock/internal/logging"
)

var (
	configPath string
	debug      bool

	cfg      *config.Config
	cfgPath  string
	logger   = slog.New(slog.DiscardHandler)
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "chordclock",
	Short: "A circle-of-fifths chord clock for the terminal",
	Long: `chordclock turns a clock face into a chord instrument.

The twelve hours of the dial are the twelve keys in circle-of-fifths order.
Pressing the inner ring plays the minor chord of that hour, the middle ring
the major chord and the outer ring the sus4 chord. Toggles add sevenths,
ninths and altered fifths.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/chordclock/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write "+logging.FileName+" next to the config file")
}

func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg, cfgPath = c, path

	l, closer, err := logging.Init(debug, filepath.Join(filepath.Dir(path), logging.FileName))
	if err != nil {
		return err
	}
	logger, closeLog = l, closer
	logger.Debug("config loaded", "path", path, "command", cmd.Name())
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return closeLog()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
