package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/matkov/wtt/internal/config"
	"github.com/matkov/wtt/internal/timesheet"
)

// dataFile is the --file flag value; overrides config and the default path.
var dataFile string

// store is the resolved timesheet store, populated in PersistentPreRunE.
var store timesheet.Store

var rootCmd = &cobra.Command{
	Use:   "wtt",
	Short: "Track work time from the command line",
	Long: `wtt records start/stop timestamps of work periods to a single JSON
file (~/.work_time_tracker.json) and reports tracked time for the
current day, week, or month.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := dataFile
		if path == "" {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			path = cfg.DataFile
		}
		if path == "" {
			p, err := timesheet.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		store = timesheet.NewStore(path)
		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Timesheet file path (default ~/.work_time_tracker.json)")
}
