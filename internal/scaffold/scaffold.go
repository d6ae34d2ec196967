// Package scaffold writes the project files the Ralph agent needs before a
// loop can run.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/ralph-wiggum.json data/ralph-context.md
var dataFS embed.FS

// Relative locations of the scaffolded files inside a project.
const (
	AgentConfigRelPath = ".kiro/agents/ralph-wiggum.json"
	SteeringRelPath    = ".kiro/steering/ralph-context.md"
)

// Result reports what Init did.
type Result struct {
	Created  []string // files written
	Existing []string // files that blocked scaffolding (force=false only)
}

// Init scaffolds the agent configuration and steering file into dir. Without
// force, existing files are left untouched and reported in Result.Existing
// with nothing written.
func Init(dir string, force bool) (*Result, error) {
	files := []struct {
		relPath  string
		dataName string
	}{
		{AgentConfigRelPath, "data/ralph-wiggum.json"},
		{SteeringRelPath, "data/ralph-context.md"},
	}

	res := &Result{}
	if !force {
		for _, f := range files {
			if _, err := os.Stat(filepath.Join(dir, f.relPath)); err == nil {
				res.Existing = append(res.Existing, f.relPath)
			}
		}
		if len(res.Existing) > 0 {
			return res, nil
		}
	}

	for _, f := range files {
		content, err := dataFS.ReadFile(f.dataName)
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded %s: %w", f.dataName, err)
		}
		path := filepath.Join(dir, f.relPath)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", f.relPath, err)
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.relPath, err)
		}
		res.Created = append(res.Created, f.relPath)
	}
	return res, nil
}
