package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/study-tracker/internal/notifications"
	"github.com/ziadkadry99/study-tracker/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and track cards in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		emitter := notifications.NewEmitter(a.cfg.Notifications.HideAfter, a.cfg.Notifications.RemoveAfter)
		screen := tui.NewScreen()
		tr, err := a.newTracker(context.Background(), screen, emitter)
		if err != nil {
			return err
		}
		tr.RenderAll()
		return tui.Run(tr, screen, emitter)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
