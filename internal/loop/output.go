package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// warnStyle for non-fatal warnings
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// headerBoxStyle for the loop header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)

	// loopBannerStyle for iteration banners
	loopBannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("160")).
			Padding(0, 2)
)

// FormatHeader renders the loop header with configuration info
func FormatHeader(w io.Writer, cfg Config) {
	maxStr := "unlimited"
	if cfg.MaxIterations > 0 {
		maxStr = fmt.Sprintf("%d", cfg.MaxIterations)
	}

	agentName := cfg.AgentName
	if agentName == "" {
		agentName = "ralph-wiggum"
	}

	content := fmt.Sprintf("%s\n%s %d  %s %s\n%s %s\n%s %s",
		titleStyle.Render("Ralph loop starting"),
		dimStyle.Render("Min:"), cfg.MinIterations,
		dimStyle.Render("Max:"), maxStr,
		dimStyle.Render("Promise:"), cfg.CompletionPromise,
		dimStyle.Render("Agent:"), agentName,
	)

	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatIterationBanner renders the iteration banner
func FormatIterationBanner(w io.Writer, iteration int) {
	banner := fmt.Sprintf(" ITERATION %d ", iteration)
	fmt.Fprintln(w)
	fmt.Fprintln(w, loopBannerStyle.Render(banner))
	fmt.Fprintln(w)
}

// FormatAgentExitWarning renders a non-zero agent exit code warning
func FormatAgentExitWarning(w io.Writer, exitCode int) {
	msg := fmt.Sprintf("Agent exited with code %d", exitCode)
	fmt.Fprintln(w, warnStyle.Render(msg))
}

// FormatMinNotReached renders the skipped-completion-check notice
func FormatMinNotReached(w io.Writer, iteration, min int) {
	msg := fmt.Sprintf("Iteration %d/%d (min not reached, skipping completion check)", iteration, min)
	fmt.Fprintln(w, dimStyle.Render(msg))
}

// FormatCompleted renders the completion message
func FormatCompleted(w io.Writer, iteration int) {
	msg := fmt.Sprintf("Completed at iteration %d!", iteration)
	fmt.Fprintln(w, successStyle.Render(msg))
}

// FormatMaxIterations renders the max iterations reached message
func FormatMaxIterations(w io.Writer, max int) {
	msg := fmt.Sprintf("Max iterations (%d) reached", max)
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// FormatInterrupted renders the interrupt message
func FormatInterrupted(w io.Writer, iteration int) {
	msg := fmt.Sprintf("Interrupted at iteration %d", iteration)
	fmt.Fprintln(w)
	fmt.Fprintln(w, warnStyle.Render(msg))
}
