package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/matkov/wtt/internal/timefmt"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current work period",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := store.Load()
		if err != nil {
			return err
		}

		// Stopping while not tracking is a successful no-op.
		elapsed, stopped := ts.Stop(time.Now())
		if !stopped {
			cmd.Println("No active time tracking period to stop.")
			return nil
		}

		if err := store.Save(ts); err != nil {
			return err
		}

		cmd.Println("Stopped tracking time.")
		cmd.Printf("Duration of last session: %s\n", timefmt.HHMMSS(elapsed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
