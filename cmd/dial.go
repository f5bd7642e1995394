package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/icco/chordclock/internal/harmony"
)

var dialCmd = &cobra.Command{
	Use:   "dial",
	Short: "Print the labels of the dial",
	Long: `Print every hour of the dial with its major key, relative minor key
and key signature. Inner hours are the enharmonic duplicates drawn closer
to the centre.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), dialTable(harmony.DialLabels(cfg.EmptyKeyLabel)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dialCmd)
}

func dialTable(labels []harmony.HourLabel) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("HOUR", "MAJOR", "MINOR", "SIGNATURE", "")
	for _, l := range labels {
		inner := ""
		if l.Inner {
			inner = "inner"
		}
		t.Row(strconv.Itoa(l.Hour), l.Major, l.Minor, l.KeySignature, inner)
	}
	return t.String()
}
