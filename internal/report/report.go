// Package report renders solve and check outcomes for the terminal.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swsmth4776/nlplab/internal/deriv"
	"github.com/swsmth4776/nlplab/internal/nlp"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	bold   = lipgloss.NewStyle().Bold(true)
)

func statusStyle(s nlp.Status) lipgloss.Style {
	switch s {
	case nlp.StatusOptimal:
		return green
	case nlp.StatusIterationLimit:
		return yellow
	default:
		return red
	}
}

// activity classifies a value against its bounds at the given tolerance.
func activity(v, lo, hi, tol float64) string {
	switch {
	case !nlp.UnboundedBelow(lo) && v < lo-tol:
		return red.Render("violated")
	case !nlp.UnboundedAbove(hi) && v > hi+tol:
		return red.Render("violated")
	case !nlp.UnboundedBelow(lo) && math.Abs(v-lo) <= tol:
		return yellow.Render("active (lower)")
	case !nlp.UnboundedAbove(hi) && math.Abs(v-hi) <= tol:
		return yellow.Render("active (upper)")
	default:
		return dim.Render("inactive")
	}
}

func boundString(lo, hi float64) string {
	l, h := fmt.Sprintf("%g", lo), fmt.Sprintf("%g", hi)
	if nlp.UnboundedBelow(lo) {
		l = "-inf"
	}
	if nlp.UnboundedAbove(hi) {
		h = "+inf"
	}
	return fmt.Sprintf("[%s, %s]", l, h)
}

// Solution renders the terminal summary of a solve: status, objective,
// primal values with bound activity, and constraint values against their
// bounds. When the problem tabulates an optimum, the distance to it is
// reported as well.
func Solution(name string, p nlp.Program, sol *nlp.Solution) string {
	const tol = 1e-6
	b := p.Bounds()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", bold.Render(name), statusStyle(sol.Status).Render(sol.Status.String()))
	fmt.Fprintf(&sb, "%s %.10f  %s %d\n\n",
		dim.Render("objective"), sol.Objective,
		dim.Render("iterations"), sol.Iterations)

	sb.WriteString(cyan.Render("variables") + "\n")
	for i, v := range sol.X {
		fmt.Fprintf(&sb, "  x[%d] = %12.8f  %-14s %s\n",
			i, v, boundString(b.XLower[i], b.XUpper[i]), activity(v, b.XLower[i], b.XUpper[i], tol))
	}

	if len(sol.G) > 0 {
		sb.WriteString("\n" + cyan.Render("constraints") + "\n")
		for i, v := range sol.G {
			fmt.Fprintf(&sb, "  g[%d] = %12.8f  %-14s %s\n",
				i, v, boundString(b.GLower[i], b.GUpper[i]), activity(v, b.GLower[i], b.GUpper[i], tol))
		}
	}

	if known, ok := p.(nlp.KnownSolution); ok {
		xs, fs := known.Optimum()
		dist := 0.0
		for i := range xs {
			if i < len(sol.X) {
				d := sol.X[i] - xs[i]
				dist += d * d
			}
		}
		fmt.Fprintf(&sb, "\n%s |x - x*| = %.2e, |f - f*| = %.2e\n",
			dim.Render("known optimum:"), math.Sqrt(dist), math.Abs(sol.Objective-fs))
	}

	return sb.String()
}

// Check renders a derivative-check report as a pass/fail table.
func Check(rep *deriv.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s %g\n\n", bold.Render(rep.Problem), dim.Render("tolerance"), rep.Tolerance)
	for _, res := range rep.Results {
		mark := green.Render("ok")
		if !res.OK {
			mark = red.Render("FAIL")
		}
		fmt.Fprintf(&sb, "  %-24s max abs %10.3e  max rel %10.3e  %s\n",
			res.Name, res.MaxAbs, res.MaxRel, mark)
	}
	verdict := green.Render("all derivative checks passed")
	if !rep.OK() {
		verdict = red.Render("derivative checks FAILED")
	}
	sb.WriteString("\n" + verdict + "\n")
	return sb.String()
}
