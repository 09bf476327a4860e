package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/matkov/wtt/internal/timefmt"
	"github.com/matkov/wtt/internal/timesheet"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current tracking status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := store.Load()
		if err != nil {
			return err
		}

		now := time.Now()
		if !ts.Tracking() {
			cmd.Println("Not tracking.")
		} else {
			cmd.Printf("Tracking since %s\n", ts.ActiveStart.Local().Format("2006-01-02 15:04:05"))
			cmd.Printf("Elapsed: %s\n", timefmt.HHMMSS(now.Sub(*ts.ActiveStart)))
		}
		cmd.Printf("Today: %s\n", timefmt.HHMMSS(ts.TrackedIn(timesheet.DayWindow(now), now)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
