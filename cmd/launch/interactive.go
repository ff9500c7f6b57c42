package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/thread-launch/engine"
	tlerrors "github.com/wippyai/thread-launch/errors"
	"github.com/wippyai/thread-launch/launch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	launcher *launch.Launcher
	attr     *engine.Attr
	work     *tally
	progress progress.Model
	count    int
	stats    launch.Stats
	done     bool
}

type tickMsg time.Time

type workloadDoneMsg struct {
	err error
}

func newInteractiveModel(launcher *launch.Launcher, attr *engine.Attr, count int) *interactiveModel {
	return &interactiveModel{
		launcher: launcher,
		attr:     attr,
		work:     &tally{delay: 20 * time.Millisecond},
		progress: progress.New(progress.WithDefaultGradient()),
		count:    count,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.runWorkload, tick())
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// runWorkload launches and joins every thread. It runs off the UI loop;
// the ticker polls launcher stats for display.
func (m *interactiveModel) runWorkload() tea.Msg {
	threads := make([]engine.Thread, m.count)
	exhausted := &tlerrors.Error{Phase: tlerrors.PhaseCreate, Kind: tlerrors.KindExhausted}

	for i := range threads {
		for {
			err := launch.Launch(m.launcher, &threads[i], m.attr, m.work, (*tally).Increment)
			if err == nil {
				break
			}
			if !errors.Is(err, exhausted) {
				return workloadDoneMsg{err: err}
			}
			time.Sleep(time.Millisecond)
		}
	}

	if m.attr == nil || !m.attr.Detached {
		for i := range threads {
			if _, err := threads[i].Join(); err != nil {
				return workloadDoneMsg{err: err}
			}
		}
	}
	return workloadDoneMsg{}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tickMsg:
		m.stats = m.launcher.Stats()
		if m.done {
			return m, nil
		}
		return m, tick()

	case workloadDoneMsg:
		m.err = msg.err
		m.done = true
		m.stats = m.launcher.Stats()

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("thread-launch"))
	b.WriteString(fmt.Sprintf(" launching %d threads\n\n", m.count))

	percent := 0.0
	if m.count > 0 {
		percent = float64(m.stats.Completed) / float64(m.count)
	}
	b.WriteString("  ")
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n\n")

	b.WriteString(statStyle.Render(fmt.Sprintf("  launched   %d", m.stats.Launched)))
	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("  completed  %d", m.stats.Completed)))
	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("  failures   %d", m.stats.CreateFailures)))
	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("  closures   %d allocated / %d released",
		m.stats.ClosuresAllocated, m.stats.ClosuresReleased)))
	b.WriteString("\n\n")

	if m.done {
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(doneStyle.Render(fmt.Sprintf("Done, tally = %d", m.work.Value())))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("q quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(launcher *launch.Launcher, attr *engine.Attr, count int) error {
	p := tea.NewProgram(newInteractiveModel(launcher, attr, count), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
