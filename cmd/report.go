package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/matkov/wtt/internal/timefmt"
	"github.com/matkov/wtt/internal/timesheet"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show tracked time for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, timesheet.DayWindow, "today")
	},
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show tracked time for this week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, timesheet.WeekWindow, "this week")
	},
}

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show tracked time for this month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, timesheet.MonthWindow, "this month")
	},
}

// runReport loads the timesheet and prints the total tracked time
// within the window returned by windowFn. Report commands never write.
func runReport(cmd *cobra.Command, windowFn func(time.Time) timesheet.Period, label string) error {
	ts, err := store.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	total := ts.TrackedIn(windowFn(now), now)
	cmd.Printf("Total time tracked %s: %s\n", label, timefmt.HHMMSS(total))
	return nil
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(monthCmd)
}
