package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/study-tracker/internal/state"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear completed and bookmarked cards",
	Long:  `Deletes the saved completed and bookmarked sets. The catalog and config are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		st := a.store.Load(ctx)

		if !yes {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Clear %d completed and %d bookmarked cards", st.Completed.Len(), st.Bookmarked.Len()),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					fmt.Fprintln(os.Stderr, "Aborted.")
					return nil
				}
				return err
			}
		}

		if err := a.kv.Delete(ctx, state.KeyCompleted, state.KeyBookmarks); err != nil {
			return fmt.Errorf("clearing state: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Cleared saved progress in %s\n", a.cfg.DBPath())
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
