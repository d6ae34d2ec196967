package loop

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/itsmostafa/ralphw/internal/logging"
	"github.com/itsmostafa/ralphw/internal/session"
)

// Outcome is the terminal state of a loop run.
type Outcome string

const (
	// OutcomeCompleted indicates the agent reported the completion promise.
	OutcomeCompleted Outcome = "completed"
	// OutcomeMaxReached indicates the iteration bound was hit without completion.
	OutcomeMaxReached Outcome = "max_reached"
	// OutcomeCancelled indicates the operator interrupted the loop.
	OutcomeCancelled Outcome = "cancelled"
)

// Result is what a loop run terminated with.
type Result struct {
	Outcome   Outcome
	Iteration int
}

// AgentRunner starts one agent session and reports its exit code.
type AgentRunner interface {
	RunChat(ctx context.Context, prompt string) (int, error)
}

// SessionSource returns the latest conversation recorded for a working
// directory, or nil if none exists.
type SessionSource interface {
	Latest(workDir string) (*session.Session, error)
}

// Runner drives the iteration loop. All paths are explicit so tests can run
// against temporary locations.
type Runner struct {
	Config    Config
	Agent     AgentRunner
	Sessions  SessionSource
	StateFile string
	WorkDir   string
	Output    io.Writer
	Logger    zerolog.Logger
}

// NewRunner creates a Runner rooted at workDir with default output and
// logging.
func NewRunner(cfg Config, agent AgentRunner, sessions SessionSource, workDir string) *Runner {
	return &Runner{
		Config:    cfg,
		Agent:     agent,
		Sessions:  sessions,
		StateFile: StateFilePath(workDir),
		WorkDir:   workDir,
		Output:    os.Stdout,
		Logger:    logging.Component("loop"),
	}
}

// Run executes iterations until the completion promise is detected, the max
// bound is reached, or ctx is cancelled. The state file is persisted at the
// start of every iteration and removed on every non-panicking exit.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Output == nil {
		r.Output = os.Stdout
	}

	FormatHeader(r.Output, r.Config)

	defer func() {
		if err := RemoveState(r.StateFile); err != nil {
			r.Logger.Warn().Err(err).Msg("could not clean up state file")
		}
	}()

	startedAt := time.Now().UTC()
	iteration := 0
	for {
		select {
		case <-ctx.Done():
			FormatInterrupted(r.Output, iteration)
			return Result{Outcome: OutcomeCancelled, Iteration: iteration}, nil
		default:
		}
		iteration++

		state := &State{
			Active:            true,
			Iteration:         iteration,
			MinIterations:     r.Config.MinIterations,
			MaxIterations:     r.Config.MaxIterations,
			CompletionPromise: r.Config.CompletionPromise,
			StartedAt:         startedAt,
			Prompt:            r.Config.Prompt,
		}
		if err := state.WriteFile(r.StateFile); err != nil {
			return Result{}, fmt.Errorf("failed to persist loop state: %w", err)
		}

		FormatIterationBanner(r.Output, iteration)

		exitCode, err := r.Agent.RunChat(ctx, r.Config.Prompt)
		if ctx.Err() != nil {
			FormatInterrupted(r.Output, iteration)
			return Result{Outcome: OutcomeCancelled, Iteration: iteration}, nil
		}
		if err != nil {
			// The agent could not be started at all; retrying every
			// iteration forever would spin, so this one is fatal.
			return Result{}, fmt.Errorf("agent invocation failed: %w", err)
		}
		if exitCode != 0 {
			FormatAgentExitWarning(r.Output, exitCode)
			r.Logger.Warn().Int("exit_code", exitCode).Int("iteration", iteration).
				Msg("agent exited non-zero, continuing")
		}

		if iteration >= r.Config.MinIterations {
			sess, err := r.Sessions.Latest(r.WorkDir)
			if err != nil {
				r.Logger.Warn().Err(err).Msg("could not read latest conversation")
			}
			if sess != nil && sess.CheckCompletionPromise(r.Config.CompletionPromise) {
				FormatCompleted(r.Output, iteration)
				return Result{Outcome: OutcomeCompleted, Iteration: iteration}, nil
			}
		} else {
			FormatMinNotReached(r.Output, iteration, r.Config.MinIterations)
		}

		if r.Config.MaxIterations > 0 && iteration >= r.Config.MaxIterations {
			FormatMaxIterations(r.Output, r.Config.MaxIterations)
			return Result{Outcome: OutcomeMaxReached, Iteration: iteration}, nil
		}
	}
}
