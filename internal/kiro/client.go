// Package kiro wraps kiro-cli subprocess invocations.
package kiro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultAgentName is the agent kiro-cli discovers from .kiro/agents/ when no
// explicit agent is configured.
const DefaultAgentName = "ralph-wiggum"

// ErrAgentConfigMissing indicates the default agent configuration does not
// exist in the project.
var ErrAgentConfigMissing = errors.New("agent config not found")

// AgentConfigPath returns where the default agent configuration must live for
// a project directory.
func AgentConfigPath(dir string) string {
	return filepath.Join(dir, ".kiro", "agents", DefaultAgentName+".json")
}

// Client runs kiro-cli sessions for one project directory.
type Client struct {
	AgentName string
	Dir       string
	Stdout    io.Writer
	Stderr    io.Writer
}

// NewClient creates a Client for the project at dir. An empty agentName
// resolves to the default agent, which must already be scaffolded in the
// project; otherwise ErrAgentConfigMissing is returned and nothing is run.
func NewClient(agentName, dir string) (*Client, error) {
	if agentName == "" {
		path := AgentConfigPath(dir)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w at %s (run 'ralphw init' first)", ErrAgentConfigMissing, path)
		}
		agentName = DefaultAgentName
	}
	return &Client{
		AgentName: agentName,
		Dir:       dir,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}, nil
}

// RunChat starts one kiro-cli chat session with the prompt on stdin,
// streaming the subprocess output through unbuffered, and returns its exit
// code. A non-zero exit is reported as a code, not an error; only failure to
// run the process at all is an error.
func (c *Client) RunChat(ctx context.Context, prompt string) (int, error) {
	cmd := exec.CommandContext(ctx, "kiro-cli",
		"chat",
		"--agent", c.AgentName,
		"--no-interactive",
		"--trust-all-tools",
	)
	cmd.Dir = c.Dir
	cmd.Stdin = strings.NewReader(prompt)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed to run kiro-cli: %w", err)
	}
	return 0, nil
}

// SaveSession writes the current kiro-cli session to path.
func (c *Client) SaveSession(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "kiro-cli", "chat", "save", path, "--force")
	cmd.Dir = c.Dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to save session: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
