package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/swsmth4776/nlplab/internal/config"
	"github.com/swsmth4776/nlplab/internal/deriv"
	"github.com/swsmth4776/nlplab/internal/engine"
	"github.com/swsmth4776/nlplab/internal/nlp"
	"github.com/swsmth4776/nlplab/internal/problems"
	"github.com/swsmth4776/nlplab/internal/report"
	"github.com/swsmth4776/nlplab/internal/store"
	"github.com/swsmth4776/nlplab/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	accuracy float64
	maxIter  int

	tolerance float64
	samples   int
	seed      int64

	atPoint    string
	scanVar    int
	scanPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nlplab",
		Short: "nonlinear test-problem lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nlplab", "data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list problems",
		RunE:  listProblems,
	}

	infoCmd := &cobra.Command{
		Use:   "info [problem]",
		Short: "show problem data",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [problem]",
		Short: "evaluate callbacks at a point",
		Args:  cobra.ExactArgs(1),
		RunE:  evalProblem,
	}
	evalCmd.Flags().StringVar(&atPoint, "at", "", "evaluation point, comma separated (default: starting point)")

	checkCmd := &cobra.Command{
		Use:   "check [problem]",
		Short: "verify derivatives against finite differences",
		Args:  cobra.ExactArgs(1),
		RunE:  checkProblem,
	}
	checkCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	checkCmd.Flags().StringVar(&preset, "preset", "", "use preset settings")
	checkCmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "relative error tolerance")
	checkCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "random check points")
	checkCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "solve with the slsqp engine",
		Args:  cobra.ExactArgs(1),
		RunE:  solveProblem,
	}
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset settings")
	solveCmd.Flags().Float64Var(&accuracy, "accuracy", config.DefaultAccuracy, "convergence accuracy")
	solveCmd.Flags().IntVar(&maxIter, "maxiter", config.DefaultMaxIterations, "iteration limit")

	scanCmd := &cobra.Command{
		Use:   "scan [problem]",
		Short: "sweep one variable and plot objective and constraints",
		Args:  cobra.ExactArgs(1),
		RunE:  scanProblem,
	}
	scanCmd.Flags().IntVar(&scanVar, "var", 0, "variable index to sweep")
	scanCmd.Flags().IntVar(&scanPoints, "points", 81, "sample count")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run to json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.New(dataDir).ExportJSON(args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list setting presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("%s: accuracy %g, maxiter %d, check tolerance %g\n",
					p, cfg.Engine.Accuracy, cfg.Engine.MaxIterations, cfg.Check.Tolerance)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive problem browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(listCmd, infoCmd, evalCmd, checkCmd, solveCmd, scanCmd, runsCmd, exportCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and flags, with flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// copy so flag overrides below do not mutate the shared preset
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("accuracy") {
		cfg.Engine.Accuracy = accuracy
	}
	if cmd.Flags().Changed("maxiter") {
		cfg.Engine.MaxIterations = maxIter
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Check.Tolerance = tolerance
	}
	if cmd.Flags().Changed("samples") {
		cfg.Check.Samples = samples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Check.Seed = seed
	}

	return cfg, nil
}

func listProblems(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tN\tM\tJAC\tHESS\tDESCRIPTION")
	for _, name := range registry.List() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		d := p.Dims()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n", name, d.N, d.M, d.JacNNZ, d.HessNNZ, registry.Info(name))
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	if err := nlp.Validate(p); err != nil {
		return err
	}

	d := p.Dims()
	b := p.Bounds()
	x0 := p.StartingPoint()

	fmt.Printf("problem: %s\n", args[0])
	fmt.Printf("  %s\n", registry.Info(args[0]))
	fmt.Printf("n = %d, m = %d, jac_nnz = %d, hess_nnz = %d\n", d.N, d.M, d.JacNNZ, d.HessNNZ)
	fmt.Printf("starting point: %v\n", x0)
	for i := range b.XLower {
		fmt.Printf("  x[%d] in %s\n", i, boundText(b.XLower[i], b.XUpper[i]))
	}
	for i := range b.GLower {
		kind := "inequality"
		if b.GLower[i] == b.GUpper[i] {
			kind = "equality"
		}
		fmt.Printf("  g[%d] in %s (%s)\n", i, boundText(b.GLower[i], b.GUpper[i]), kind)
	}
	if known, ok := p.(nlp.KnownSolution); ok {
		xs, fs := known.Optimum()
		fmt.Printf("known optimum: x* = %v, f* = %g\n", xs, fs)
	}
	return nil
}

func boundText(lo, hi float64) string {
	l, h := fmt.Sprintf("%g", lo), fmt.Sprintf("%g", hi)
	if nlp.UnboundedBelow(lo) {
		l = "-inf"
	}
	if nlp.UnboundedAbove(hi) {
		h = "+inf"
	}
	return fmt.Sprintf("[%s, %s]", l, h)
}

func parsePoint(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("point has %d entries, problem has %d variables", len(parts), n)
	}
	x := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", part, err)
		}
		x[i] = v
	}
	return x, nil
}

func evalProblem(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	if err := nlp.Validate(p); err != nil {
		return err
	}

	d := p.Dims()
	x := p.StartingPoint()
	if atPoint != "" {
		if x, err = parsePoint(atPoint, d.N); err != nil {
			return err
		}
	}

	fmt.Printf("x = %v\n", x)
	fmt.Printf("f(x) = %.10f\n", p.Objective(x))

	grad := make([]float64, d.N)
	p.Gradient(x, grad)
	fmt.Printf("grad f(x) = %v\n", grad)

	if d.M > 0 {
		g := make([]float64, d.M)
		p.Constraints(x, g)
		fmt.Printf("g(x) = %v\n", g)

		vals := make([]float64, d.JacNNZ)
		p.Jacobian(x, vals)
		fmt.Println("jacobian:")
		for k, e := range p.JacobianStructure() {
			fmt.Printf("  (%d,%d) = %.10f\n", e.Row, e.Col, vals[k])
		}
	}
	return nil
}

func checkProblem(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	rep, err := deriv.Check(args[0], p, deriv.Options{
		Tolerance: cfg.Check.Tolerance,
		Samples:   cfg.Check.Samples,
		Seed:      cfg.Check.Seed,
	})
	if err != nil {
		return err
	}

	fmt.Print(report.Check(rep))
	if !rep.OK() {
		return fmt.Errorf("derivative check failed for %s", args[0])
	}
	return nil
}

func solveProblem(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("solving %s...\n", args[0])
	start := time.Now()
	sol, err := engine.Solve(p, engine.Options{
		Accuracy:      cfg.Engine.Accuracy,
		MaxIterations: cfg.Engine.MaxIterations,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n\n", elapsed)
	fmt.Print(report.Solution(args[0], p, sol))

	runID, err := st.Save(args[0], cfg.Engine.Accuracy, cfg.Engine.MaxIterations, sol)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func scanProblem(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	if err := nlp.Validate(p); err != nil {
		return err
	}

	d := p.Dims()
	if scanVar < 0 || scanVar >= d.N {
		return fmt.Errorf("variable index %d out of range [0, %d)", scanVar, d.N)
	}
	if scanPoints < 2 {
		return fmt.Errorf("need at least 2 sample points")
	}

	b := p.Bounds()
	lo, hi := b.XLower[scanVar], b.XUpper[scanVar]
	if nlp.UnboundedBelow(lo) {
		lo = -5
	}
	if nlp.UnboundedAbove(hi) {
		hi = 5
	}

	x := p.StartingPoint()
	obj := make([]float64, scanPoints)
	cons := make([][]float64, d.M)
	for i := range cons {
		cons[i] = make([]float64, scanPoints)
	}
	g := make([]float64, d.M)

	for k := 0; k < scanPoints; k++ {
		x[scanVar] = lo + float64(k)*(hi-lo)/float64(scanPoints-1)
		obj[k] = p.Objective(x)
		if d.M > 0 {
			p.Constraints(x, g)
			for i := range g {
				cons[i][k] = g[i]
			}
		}
	}

	fmt.Printf("sweeping x[%d] over [%g, %g], other variables at the starting point\n\n", scanVar, lo, hi)
	fmt.Println(asciigraph.Plot(obj,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("objective vs x%d", scanVar)),
	))
	fmt.Println()
	for i := range cons {
		fmt.Println(asciigraph.Plot(cons[i],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("g%d vs x%d", i, scanVar)),
		))
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tSTATUS\tOBJECTIVE\tITER")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.6f\t%d\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Status,
			run.Objective,
			run.Iterations,
		)
	}
	return w.Flush()
}
