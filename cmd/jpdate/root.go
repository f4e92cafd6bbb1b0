package main

import (
	"log"

	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand once flags and the
// config file have been resolved.
type app struct {
	cfgFile string
	output  string
	verbose bool

	cfg Config
	log *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "jpdate",
		Short: "Japanese date forms, slots and day arithmetic",
		Long: `jpdate reads loosely formatted dates ("2024-03-01", "2024/3/1 9:05",
"2024-03-01T10:15:00Z") and renders them in Japan Standard Time.

Input that cannot be read as a date falls back to the current time.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML config file")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", defaultOutputFormat, "output format: text, json, yaml or toml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newShowCmd(a),
		newSlotsCmd(a),
		newShiftCmd(a),
		newCompareCmd(a),
		newNewYearCmd(a),
		newConvertCmd(a),
	)
	return root
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = log.New(cmd.ErrOrStderr(), "jpdate: ", 0)

	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = a.output
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.cfgFile != "" {
		a.logf("loaded config from %s", a.cfgFile)
	}
	return nil
}

// logf prints progress messages when --verbose is set.
func (a *app) logf(format string, args ...any) {
	if a.verbose {
		a.log.Printf(format, args...)
	}
}
