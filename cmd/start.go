package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin tracking a new work period",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := store.Load()
		if err != nil {
			return err
		}

		// Starting while already tracking is a successful no-op.
		if !ts.Start(time.Now()) {
			cmd.Println("Already tracking time.")
			return nil
		}

		if err := store.Save(ts); err != nil {
			return err
		}

		cmd.Println("Started tracking time.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
