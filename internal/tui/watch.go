// Package tui shows a sweep's outcomes on an interactive screen as the
// scenarios finish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwichro/dealab/internal/lab"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type outcomeMsg lab.Outcome

type doneMsg struct{}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForOutcome(ch <-chan lab.Outcome) tea.Cmd {
	return func() tea.Msg {
		o, ok := <-ch
		if !ok {
			return doneMsg{}
		}
		return outcomeMsg(o)
	}
}

type model struct {
	scenarios []string
	workers   int

	ch     <-chan lab.Outcome
	cancel context.CancelFunc

	outcomes []lab.Outcome
	failed   int
	done     bool
	started  time.Time
	elapsed  time.Duration

	width  int
	height int
}

func newModel(names []string, workers int, ch <-chan lab.Outcome, cancel context.CancelFunc) model {
	return model{
		scenarios: names,
		workers:   workers,
		ch:        ch,
		cancel:    cancel,
		outcomes:  make([]lab.Outcome, 0, len(names)),
		started:   time.Now(),
		width:     80,
		height:    24,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForOutcome(m.ch), tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			m.cancel()
			return m, tea.Quit
		case "enter", " ":
			if m.done {
				return m, tea.Quit
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case outcomeMsg:
		o := lab.Outcome(msg)
		m.outcomes = append(m.outcomes, o)
		if o.Failed() {
			m.failed++
		}
		return m, waitForOutcome(m.ch)
	case doneMsg:
		m.done = true
		m.elapsed = time.Since(m.started)
		return m, nil
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.elapsed = time.Since(m.started)
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("d e a l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	total := len(m.scenarios)
	finished := len(m.outcomes)
	barWidth := 28
	filled := barWidth
	if total > 0 {
		filled = finished * barWidth / total
	}
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	counter := fmt.Sprintf("%d/%d  %.1fs  %d workers", finished, total, m.elapsed.Seconds(), m.workers)
	b.WriteString(fmt.Sprintf("    %s  %s\n\n", bar, dim.Render(counter)))

	seen := make(map[string]bool, finished)
	for _, o := range m.outcomes {
		seen[o.Scenario] = true
		if o.Failed() {
			b.WriteString(fmt.Sprintf("      %s %s %s  %s\n",
				red.Render("✗"),
				white.Render(fmt.Sprintf("%-20s", o.Scenario)),
				dim.Render(o.Duration.Round(time.Microsecond).String()),
				yellow.Render(o.Kind())))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s %s\n",
				green.Render("●"),
				white.Render(fmt.Sprintf("%-20s", o.Scenario)),
				dim.Render(o.Duration.Round(time.Microsecond).String())))
		}
	}
	for _, name := range m.scenarios {
		if !seen[name] {
			b.WriteString("      " + dimmer.Render("· "+name) + "\n")
		}
	}

	b.WriteString("\n")
	if m.done {
		passed := finished - m.failed
		summary := green.Render(fmt.Sprintf("%d passed", passed))
		if m.failed > 0 {
			summary += dim.Render("  ") + red.Render(fmt.Sprintf("%d failed", m.failed))
		}
		b.WriteString("    " + summary + "\n")
		b.WriteString(dim.Render("      enter close   q quit") + "\n")
	} else {
		b.WriteString(dim.Render("      q cancel") + "\n")
	}

	return b.String()
}

// Watch runs the named scenarios and shows each outcome as it lands. It
// returns the outcomes collected by the time the screen closed; quitting
// early cancels the rest of the sweep.
func Watch(names []string, workers int) ([]lab.Outcome, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan lab.Outcome, len(names))
	runner := lab.NewRunner(nil)
	runner.Notify(func(o lab.Outcome) { ch <- o })

	var (
		outcomes []lab.Outcome
		runErr   error
	)
	go func() {
		defer close(ch)
		if workers > 1 {
			outcomes, runErr = runner.RunParallel(ctx, names, workers)
		} else {
			outcomes, runErr = runner.Run(ctx, names)
		}
	}()

	p := tea.NewProgram(newModel(names, workers, ch, cancel), tea.WithAltScreen())
	_, err := p.Run()
	cancel()
	for range ch {
	}
	if err != nil {
		return nil, err
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return outcomes, runErr
	}
	return outcomes, nil
}
