package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/ralphw/internal/kiro"
	"github.com/itsmostafa/ralphw/internal/loop"
	"github.com/itsmostafa/ralphw/internal/session"
	"github.com/spf13/cobra"
)

// Exit codes distinguishing the non-success loop outcomes.
const (
	exitMaxReached  = 2
	exitInterrupted = 130
)

var (
	minIterations     int
	maxIterations     int
	completionPromise string
	agentName         string
)

var loopCmd = &cobra.Command{
	Use:   "loop <prompt>",
	Short: "Start a Ralph Wiggum iterative loop",
	Long: `Start a Ralph Wiggum iterative loop.

The loop runs kiro-cli repeatedly with fresh sessions until:
  - minimum iterations completed AND the completion promise is detected
  - max iterations is reached
  - the loop is interrupted with Ctrl+C

The agent signals completion by wrapping the promise phrase in promise tags,
e.g. <promise>COMPLETE</promise>.`,
	Example: `  ralphw loop "Build a REST API" --min-iterations 3 --max-iterations 20
  ralphw loop "Fix the auth bug" -n 2 -m 10 -p "FIXED"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loop.Config{
			Prompt:            args[0],
			MinIterations:     minIterations,
			MaxIterations:     maxIterations,
			CompletionPromise: completionPromise,
			AgentName:         agentName,
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		workDir, err := os.Getwd()
		if err != nil {
			return err
		}

		client, err := kiro.NewClient(cfg.AgentName, workDir)
		if err != nil {
			return err
		}
		client.Stdout = cmd.OutOrStdout()
		client.Stderr = cmd.ErrOrStderr()

		storePath, err := session.DefaultStorePath()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := loop.NewRunner(cfg, client, session.NewReader(storePath), workDir)
		runner.Output = cmd.OutOrStdout()

		result, err := runner.Run(ctx)
		if err != nil {
			return err
		}

		switch result.Outcome {
		case loop.OutcomeMaxReached:
			return &ExitError{Code: exitMaxReached}
		case loop.OutcomeCancelled:
			return &ExitError{Code: exitInterrupted}
		}
		return nil
	},
}

func init() {
	loopCmd.Flags().IntVarP(&minIterations, "min-iterations", "n", 1, "Minimum iterations before checking completion")
	loopCmd.Flags().IntVarP(&maxIterations, "max-iterations", "m", 0, "Maximum iterations (0 = unlimited)")
	loopCmd.Flags().StringVarP(&completionPromise, "completion-promise", "p", loop.DefaultCompletionPromise, "Promise phrase that signals completion")
	loopCmd.Flags().StringVarP(&agentName, "agent", "a", "", "Agent name (default: ralph-wiggum)")
	rootCmd.AddCommand(loopCmd)
}
