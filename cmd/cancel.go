package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/itsmostafa/ralphw/internal/loop"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel an active Ralph loop",
	Long: `Cancel an active Ralph loop.

Removes the loop state file and the saved session file, stopping the loop on
its next iteration check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return err
		}

		statePath := loop.StateFilePath(workDir)
		if _, err := os.Stat(statePath); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "No active Ralph loop found.")
			return nil
		}

		// A malformed state file still gets cancelled; we just can't
		// report where it was.
		iteration := "?"
		if state, err := loop.LoadState(statePath); err == nil {
			iteration = strconv.Itoa(state.Iteration)
		}

		if err := loop.RemoveState(statePath); err != nil {
			return err
		}
		if err := os.Remove(loop.SessionFilePath(workDir)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Cancelled Ralph loop (was at iteration %s)\n", iteration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
