package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/matkov/wtt/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live full-screen view of the current tracking state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdout.Fd()) {
			return errors.New("watch requires an interactive terminal (try \"wtt status\" instead)")
		}
		return tui.Run(store)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
