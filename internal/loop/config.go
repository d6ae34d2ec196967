// Package loop implements the Ralph Wiggum iteration loop: persist state,
// invoke the agent, check for the completion promise, repeat.
package loop

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultCompletionPromise is used when no promise phrase is configured.
const DefaultCompletionPromise = "COMPLETE"

// Config holds the loop configuration. It is immutable for the duration of
// a run.
type Config struct {
	Prompt            string
	MinIterations     int
	MaxIterations     int // 0 = unlimited
	CompletionPromise string
	AgentName         string // empty = default agent
}

// Validate checks the configuration for violations. Min/max bounds are
// validated jointly: a minimum above a positive maximum is rejected rather
// than silently capped.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Prompt) == "" {
		return errors.New("prompt cannot be empty")
	}
	if c.MinIterations < 1 {
		return fmt.Errorf("min iterations must be at least 1, got %d", c.MinIterations)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations cannot be negative, got %d", c.MaxIterations)
	}
	if strings.TrimSpace(c.CompletionPromise) == "" {
		return errors.New("completion promise cannot be empty")
	}
	if c.MaxIterations > 0 && c.MinIterations > c.MaxIterations {
		return fmt.Errorf("min iterations (%d) cannot exceed max iterations (%d)",
			c.MinIterations, c.MaxIterations)
	}
	return nil
}

// StateFilePath returns the loop state file location for a project directory.
func StateFilePath(dir string) string {
	return filepath.Join(dir, ".kiro", "ralph-loop.local.md")
}

// SessionFilePath returns the saved session file location for a project
// directory.
func SessionFilePath(dir string) string {
	return filepath.Join(dir, ".kiro", "ralph-session.json")
}
