// Package tui implements the interactive parameter explorer: editable
// calculator inputs on top, the recomposed reports underneath.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlmsinclair/lhc/internal/config"
	"github.com/rlmsinclair/lhc/internal/report"
)

// Input field indices.
const (
	fieldExponent = iota
	fieldRate
	fieldDilation
	fieldPrep
	fieldAccel
	fieldCount
)

// fieldLabels are the input prompts, index-aligned with the field constants.
var fieldLabels = [fieldCount]string{
	"Exponent N",
	"Rate (ops/s)",
	"Dilation factor",
	"Preparation",
	"Acceleration",
}

// Model is the root bubbletea model for the explorer.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	verbose bool

	reports []report.Report
	err     error

	keymap KeyMap
	help   help.Model

	width   int
	height  int
	version string
	opts    report.Options
}

// NewModel creates the explorer model seeded from the configuration.
func NewModel(cfg config.AppConfig, version string) Model {
	m := Model{
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		version: version,
		verbose: cfg.Verbose,
		opts: report.Options{
			SigFigs:        cfg.SigFigs,
			DigitThreshold: cfg.DigitThreshold,
		},
	}

	seeds := [fieldCount]string{
		strconv.Itoa(cfg.Exponent),
		strconv.FormatFloat(cfg.Rate, 'g', -1, 64),
		strconv.FormatFloat(cfg.DilationFactor, 'g', -1, 64),
		cfg.PreparationTime.String(),
		cfg.AccelerationTime.String(),
	}
	for i := range m.inputs {
		input := textinput.New()
		input.SetValue(seeds[i])
		input.CharLimit = 24
		input.Width = 16
		input.Prompt = ""
		m.inputs[i] = input
	}
	m.inputs[fieldExponent].Focus()

	m.recompute()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
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
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keymap.Prev):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keymap.Apply):
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.Verbose):
		m.verbose = !m.verbose
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(index int) {
	m.inputs[m.focus].Blur()
	m.focus = index
	m.inputs[m.focus].Focus()
}

// recompute parses the input fields and rebuilds both reports.
func (m *Model) recompute() {
	exponent, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldExponent].Value()))
	if err != nil {
		m.err = fmt.Errorf("exponent: %w", err)
		return
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldRate].Value()), 64)
	if err != nil {
		m.err = fmt.Errorf("rate: %w", err)
		return
	}
	dilation, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldDilation].Value()), 64)
	if err != nil {
		m.err = fmt.Errorf("dilation: %w", err)
		return
	}
	prep, err := time.ParseDuration(strings.TrimSpace(m.inputs[fieldPrep].Value()))
	if err != nil {
		m.err = fmt.Errorf("preparation: %w", err)
		return
	}
	accel, err := time.ParseDuration(strings.TrimSpace(m.inputs[fieldAccel].Value()))
	if err != nil {
		m.err = fmt.Errorf("acceleration: %w", err)
		return
	}

	opts := m.opts
	opts.Verbose = m.verbose

	sequential, err := report.Sequential(report.SequentialParams{
		Exponent: exponent,
		Rate:     rate,
	}, report.DefaultConstants(), opts)
	if err != nil {
		m.err = err
		return
	}
	parallel, err := report.Parallel(report.ParallelParams{
		Exponent:         exponent,
		Rate:             rate,
		PreparationTime:  prep,
		AccelerationTime: accel,
		DilationFactor:   dilation,
	}, report.DefaultConstants(), opts)
	if err != nil {
		m.err = err
		return
	}

	m.reports = []report.Report{sequential, parallel}
	m.err = nil
}

// View renders the explorer.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("State-space feasibility explorer"),
		versionStyle.Render("  "+m.version),
	)

	fields := make([]string, 0, fieldCount)
	for i, input := range m.inputs {
		fields = append(fields, lipgloss.JoinVertical(lipgloss.Left,
			inputLabelStyle.Render(fieldLabels[i]),
			input.View(),
		))
	}
	inputRow := panelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(fields)...))

	var body string
	if m.err != nil {
		body = panelStyle.Render(errorStyle.Render("Error: " + m.err.Error()))
	} else {
		panels := make([]string, 0, len(m.reports))
		for _, r := range m.reports {
			panels = append(panels, panelStyle.Render(m.renderReport(r)))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(panels)...)
	}

	footer := helpStyle.Render(m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, header, inputRow, body, footer)
}

// renderReport renders one report as styled lines.
func (m Model) renderReport(r report.Report) string {
	lines := make([]string, 0, len(r.Lines)+1)
	lines = append(lines, titleStyle.Render(r.Title))
	for _, line := range r.Lines {
		if line.Value == "" {
			lines = append(lines, reportLineStyle.Render(line.Label))
			continue
		}
		lines = append(lines, labelStyle.Render(line.Label+": ")+valueStyle.Render(line.Value))
	}
	return strings.Join(lines, "\n")
}

// joinSpaced interleaves the given blocks with a two-space gap for
// lipgloss.JoinHorizontal.
func joinSpaced(blocks []string) []string {
	out := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, b)
	}
	return out
}

// Run is the public entry point for the TUI mode. It blocks until the user
// quits or ctx is canceled.
func Run(ctx context.Context, cfg config.AppConfig, version string) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
