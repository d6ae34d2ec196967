package loop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// State is the durable record of an active loop, persisted at the start of
// every iteration and removed on termination. Its presence is the
// externally-visible "a loop is running" signal.
type State struct {
	Active            bool      `yaml:"active"`
	Iteration         int       `yaml:"iteration"`
	MinIterations     int       `yaml:"min_iterations"`
	MaxIterations     int       `yaml:"max_iterations"`
	CompletionPromise string    `yaml:"completion_promise"`
	StartedAt         time.Time `yaml:"started_at"`
	Prompt            string    `yaml:"-"`
}

// Marshal serializes the state as markdown: a YAML frontmatter block wrapped
// in --- delimiters, a blank line, then the task prompt verbatim.
func (s *State) Marshal() ([]byte, error) {
	header, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state header: %w", err)
	}
	return []byte(fmt.Sprintf("---\n%s---\n\n%s", header, s.Prompt)), nil
}

// ParseState parses a markdown state file back into a State. The trailing
// body becomes the prompt, with surrounding whitespace trimmed.
func ParseState(data []byte) (*State, error) {
	parts := strings.SplitN(string(data), "---", 3)
	if len(parts) < 3 {
		return nil, errors.New("invalid state file format: missing YAML frontmatter")
	}
	if strings.TrimSpace(parts[1]) == "" {
		return nil, errors.New("invalid state file format: empty frontmatter")
	}
	var st State
	if err := yaml.Unmarshal([]byte(parts[1]), &st); err != nil {
		return nil, fmt.Errorf("invalid state file format: %w", err)
	}
	st.Prompt = strings.TrimSpace(parts[2])
	return &st, nil
}

// LoadState reads and parses the state file at path.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return ParseState(data)
}

// WriteFile persists the state at path, creating parent directories as
// needed.
func (s *State) WriteFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// RemoveState deletes the state file at path. Removing an already-absent
// file is not an error.
func RemoveState(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
