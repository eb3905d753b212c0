// Package tui implements a step-through visualizer for the mediant bisection
// walk, built on bubbletea. The search runs to completion first; the
// visualizer then replays the recorded steps under keyboard control.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fareycalc/internal/cli"
	"github.com/agbru/fareycalc/internal/config"
	apperrors "github.com/agbru/fareycalc/internal/errors"
	"github.com/agbru/fareycalc/internal/farey"
	"github.com/agbru/fareycalc/internal/sysmon"
)

const (
	// sysSampleInterval is how often the resource header refreshes.
	sysSampleInterval = time.Second
	// playInterval is the delay between steps in autoplay mode.
	playInterval = 150 * time.Millisecond
	// maxProgressWidth caps the progress bar width on wide terminals.
	maxProgressWidth = 60
)

// TickMsg triggers a periodic resource usage refresh.
type TickMsg time.Time

// playTickMsg advances the replay by one step in autoplay mode.
type playTickMsg time.Time

// SysStatsMsg carries a fresh resource usage snapshot.
type SysStatsMsg sysmon.Stats

func tickCmd() tea.Cmd {
	return tea.Tick(sysSampleInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func playTickCmd() tea.Cmd {
	return tea.Tick(playInterval, func(t time.Time) tea.Msg { return playTickMsg(t) })
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg { return SysStatsMsg(sysmon.Sample()) }
}

// Model is the root bubbletea model for the visualizer.
type Model struct {
	target    float64
	steps     []farey.Step
	result    farey.Result
	searchErr error
	version   string

	idx      int
	playing  bool
	keys     KeyMap
	help     help.Model
	progress progress.Model
	stats    sysmon.Stats
	exitCode int

	width  int
	height int
}

// NewModel creates a visualizer model for a recorded bisection walk.
//
// Parameters:
//   - target: The approximated value.
//   - steps: The recorded bisection steps, in order.
//   - result: The final search result; meaningful only when searchErr is nil.
//   - searchErr: The search failure, if any.
//   - version: The application version shown in the header.
//
// Returns:
//   - Model: The initialized model positioned on the first step.
func NewModel(target float64, steps []farey.Step, result farey.Result, searchErr error, version string) Model {
	return Model{
		target:    target,
		steps:     steps,
		result:    result,
		searchErr: searchErr,
		version:   version,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
		exitCode:  apperrors.ExitCodeFor(searchErr),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(sampleSysStatsCmd(), tickCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w := msg.Width - 8
		if w > maxProgressWidth {
			w = maxProgressWidth
		}
		if w > 0 {
			m.progress.Width = w
		}
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.stats = sysmon.Stats(msg)
		return m, nil

	case playTickMsg:
		if !m.playing {
			return m, nil
		}
		if m.idx < len(m.steps)-1 {
			m.idx++
			return m, playTickCmd()
		}
		m.playing = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if m.idx < len(m.steps)-1 {
			m.idx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.idx > 0 {
			m.idx--
		}
		m.playing = false
		return m, nil

	case key.Matches(msg, m.keys.First):
		m.idx = 0
		m.playing = false
		return m, nil

	case key.Matches(msg, m.keys.Last):
		m.idx = len(m.steps) - 1
		m.playing = false
		return m, nil

	case key.Matches(msg, m.keys.Play):
		m.playing = !m.playing
		if m.playing {
			if m.idx >= len(m.steps)-1 {
				m.idx = 0
			}
			return m, playTickCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// View renders the visualizer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := panelStyle.Render(m.renderStep())
	bar := m.progress.ViewAs(float64(m.idx+1) / float64(len(m.steps)))
	footer := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar, footer)
}

// renderHeader renders the title bar with version and resource usage.
func (m Model) renderHeader() string {
	titleText := "Farey Visualizer"
	if m.version != "" && m.version != "dev" {
		titleText += " " + m.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")
	target := statValueStyle.Render(fmt.Sprintf("target %v", m.target))
	res := statLabelStyle.Render(fmt.Sprintf("CPU %4.1f%%  MEM %4.1f%%  Heap %.1f MiB",
		m.stats.CPUPercent, m.stats.MemPercent, float64(m.stats.HeapBytes)/(1024*1024)))
	return title + pipe + target + pipe + res
}

// renderStep renders the panel for the current step of the walk.
func (m Model) renderStep() string {
	if len(m.steps) == 0 {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.searchErr))
	}

	s := m.steps[m.idx]

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n",
		statLabelStyle.Render("Step"),
		statValueStyle.Render(fmt.Sprintf("%d / %d", m.idx+1, len(m.steps))))

	b.WriteString(traceStyle.Render(cli.FormatTraceLine(s)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s  %s\n", statLabelStyle.Render("lower  "), boundStyle.Render(fmt.Sprintf("%s = %v", s.Left, s.Left.Value())))
	fmt.Fprintf(&b, "%s  %s\n", statLabelStyle.Render("mediant"), mediantStyle.Render(fmt.Sprintf("%s = %v", s.Mediant, s.Value)))
	fmt.Fprintf(&b, "%s  %s\n", statLabelStyle.Render("upper  "), boundStyle.Render(fmt.Sprintf("%s = %v", s.Right, s.Right.Value())))

	if m.idx == len(m.steps)-1 {
		b.WriteString("\n")
		if m.searchErr != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.searchErr)))
		} else {
			b.WriteString(convergedStyle.Render(fmt.Sprintf("Converged on %s after %d iterations", m.result.Fraction, m.result.Iterations)))
			b.WriteString("\n")
			b.WriteString(cli.FormatDiagram(m.result.Fraction))
		}
	}

	return b.String()
}

// Run is the public entry point for the TUI mode. It performs the search,
// then replays the recorded walk interactively, and returns the exit code.
//
// Parameters:
//   - ctx: Cancellation signal for the search.
//   - cfg: The application configuration (target, ceiling, timeout).
//   - version: The application version shown in the header.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	recorder := &farey.Recorder{}
	engine := farey.NewEngine(
		farey.WithMaxIterations(cfg.MaxIterations),
		farey.WithObserver(recorder),
	)

	searchCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	result, err := engine.Search(searchCtx, cfg.Target)
	if err != nil && len(recorder.Steps) == 0 {
		// Nothing to replay (e.g. the target was rejected up front).
		return apperrors.ExitCodeFor(err)
	}

	model := NewModel(cfg.Target, recorder.Steps, result, err, version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, runErr := p.Run()
	if runErr != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
