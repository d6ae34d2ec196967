package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/itsmostafa/ralphw/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ralphw",
	Short: "Ralph Wiggum iterative loop technique for Kiro CLI",
	Long: `ralphw runs kiro-cli repeatedly with fresh sessions on the same task until
the agent reports completion with a <promise> marker, an iteration bound is
reached, or the loop is cancelled.`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExitError carries a specific process exit code out of a command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("ralphw %s\n", version.String()))
}

// Execute runs the root command and maps errors to process exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
