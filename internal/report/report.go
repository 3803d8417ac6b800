// Package report renders lab outcomes for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwichro/dealab/internal/lab"
)

var (
	// Status indicators
	PassStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	FailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	// Scenario names in listings
	NameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff"))

	// Failure kind names
	KindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00"))

	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Frame around full failure reports
	ReportFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

// Outcome renders a one-line status for o.
func Outcome(o lab.Outcome) string {
	status := PassStyle.Render("PASS")
	if o.Failed() {
		status = FailStyle.Render("FAIL")
	}
	line := fmt.Sprintf("%s  %s  %s",
		status,
		NameStyle.Render(o.Scenario),
		Subtle.Render(o.Duration.String()))
	if kind := o.Kind(); kind != "" {
		line += "  " + KindStyle.Render(kind)
	}
	return line
}

// Detail renders the one-line status of o followed by its full failure
// report inside a frame. Passing outcomes have no frame.
func Detail(o lab.Outcome) string {
	if !o.Failed() {
		return Outcome(o)
	}
	return Outcome(o) + "\n" + ReportFrame.Render(strings.TrimSpace(o.Report))
}

// Summary renders a one-line tally for a whole sweep.
func Summary(outcomes []lab.Outcome) string {
	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	passed := len(outcomes) - failed
	tally := PassStyle.Render(fmt.Sprintf("%d passed", passed))
	if failed > 0 {
		tally += Subtle.Render(" / ") + FailStyle.Render(fmt.Sprintf("%d failed", failed))
	}
	return tally
}
