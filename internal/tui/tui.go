// Package tui provides an interactive terminal browser over the problem
// registry: pick a problem, inspect its data, run the engine or the
// derivative checker and read the rendered outcome.
package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swsmth4776/nlplab/internal/deriv"
	"github.com/swsmth4776/nlplab/internal/engine"
	"github.com/swsmth4776/nlplab/internal/nlp"
	"github.com/swsmth4776/nlplab/internal/problems"
	"github.com/swsmth4776/nlplab/internal/report"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type screen int

const (
	screenMenu screen = iota
	screenDetail
	screenOutput
)

type model struct {
	screen   screen
	cursor   int
	names    []string
	registry *problems.Registry

	selected string
	program  nlp.Program
	output   string

	width  int
	height int
}

func newModel() model {
	r := problems.NewRegistry()
	return model{
		registry: r,
		names:    r.List(),
		width:    80,
		height:   24,
	}
}

// Run starts the interactive browser and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(newModel())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.names[m.cursor]
			p, err := m.registry.Get(m.selected)
			if err != nil {
				return m, nil
			}
			// keep the finalize summary out of the alt screen
			if h, ok := p.(*problems.HS071); ok {
				h.Out = io.Discard
			}
			m.program = p
			m.screen = screenDetail
		}
	case screenDetail:
		switch key {
		case "esc":
			m.screen = screenMenu
		case "s":
			sol, err := engine.Solve(m.program, engine.DefaultOptions())
			if err != nil {
				m.output = fmt.Sprintf("solve failed: %v", err)
			} else {
				m.output = report.Solution(m.selected, m.program, sol)
			}
			m.screen = screenOutput
		case "c":
			rep, err := deriv.Check(m.selected, m.program, deriv.DefaultOptions())
			if err != nil {
				m.output = fmt.Sprintf("check failed: %v", err)
			} else {
				m.output = report.Check(rep)
			}
			m.screen = screenOutput
		}
	case screenOutput:
		if key == "esc" || key == "enter" {
			m.screen = screenDetail
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenOutput:
		return m.output + "\n" + dim.Render("esc back · q quit") + "\n"
	default:
		return m.viewMenu()
	}
}

func (m model) viewMenu() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("nlplab: nonlinear test problems") + "\n\n")
	for i, name := range m.names {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = magenta.Render("> ")
			style = magenta
		}
		fmt.Fprintf(&sb, "%s%s  %s\n", cursor, style.Render(fmt.Sprintf("%-12s", name)), dim.Render(m.registry.Info(name)))
	}
	sb.WriteString("\n" + dim.Render("↑/↓ select · enter open · q quit") + "\n")
	return sb.String()
}

func (m model) viewDetail() string {
	d := m.program.Dims()
	b := m.program.Bounds()
	x0 := m.program.StartingPoint()

	var sb strings.Builder
	sb.WriteString(cyan.Render(m.selected) + "  " + dim.Render(m.registry.Info(m.selected)) + "\n\n")
	fmt.Fprintf(&sb, "%s n=%d m=%d jac_nnz=%d hess_nnz=%d\n",
		dim.Render("dims"), d.N, d.M, d.JacNNZ, d.HessNNZ)
	fmt.Fprintf(&sb, "%s %v\n", dim.Render("start"), x0)
	fmt.Fprintf(&sb, "%s f(x0) = %.6f\n", dim.Render("objective"), m.program.Objective(x0))

	if d.M > 0 {
		g := make([]float64, d.M)
		m.program.Constraints(x0, g)
		fmt.Fprintf(&sb, "%s %v\n", dim.Render("g(x0)"), g)
	}
	for i := range b.XLower {
		fmt.Fprintf(&sb, "  x[%d] ∈ [%g, %g]\n", i, b.XLower[i], b.XUpper[i])
	}
	if known, ok := m.program.(nlp.KnownSolution); ok {
		xs, fs := known.Optimum()
		fmt.Fprintf(&sb, "%s x* ≈ %v, f* ≈ %g\n", dim.Render("optimum"), xs, fs)
	}

	sb.WriteString("\n" + dim.Render("s solve · c check derivatives · esc back · q quit") + "\n")
	return sb.String()
}
