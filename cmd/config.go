package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/icco/chordclock/internal/config"
)

var writeConfigFile bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration chordclock runs with: the config file merged
over the defaults. With --write the result is also saved to the config
file.

Example:
  chordclock config --write
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), cfg, cfgPath, writeConfigFile)
	},
}

func init() {
	configCmd.Flags().BoolVar(&writeConfigFile, "write", false, "save the effective configuration to the config file")
	rootCmd.AddCommand(configCmd)
}

func showConfig(w io.Writer, c *config.Config, path string, write bool) error {
	if write {
		if err := c.Save(path); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		logger.Info("config saved", "path", path)
		fmt.Fprintf(w, "# written to %s\n", path)
	}
	data, err := c.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
