package engine

import (
	"fmt"
	"math"

	"github.com/curioloop/optimizer/slsqp"

	"github.com/swsmth4776/nlplab/internal/nlp"
)

// Options are the engine settings exposed to callers.
type Options struct {
	// Accuracy is the convergence tolerance.
	Accuracy float64
	// MaxIterations bounds the number of SQP iterations.
	MaxIterations int
}

func DefaultOptions() Options {
	return Options{Accuracy: 1e-8, MaxIterations: 200}
}

type rowKind int

const (
	equality rowKind = iota
	// lowerSide encodes g(x) - lo >= 0, upperSide encodes hi - g(x) >= 0.
	lowerSide
	upperSide
)

// row is one engine constraint derived from a program constraint.
type row struct {
	index int
	kind  rowKind
	bound float64
}

// splitRows translates constraint bounds into the engine's vocabulary:
// equal finite bounds become an equality row, each finite side of an
// inequality becomes a one-sided row, and a fully open row vanishes.
func splitRows(b nlp.Bounds) (eq, neq []row) {
	for i := range b.GLower {
		lo, hi := b.GLower[i], b.GUpper[i]
		openLo, openHi := nlp.UnboundedBelow(lo), nlp.UnboundedAbove(hi)
		if !openLo && !openHi && lo == hi {
			eq = append(eq, row{index: i, kind: equality, bound: lo})
			continue
		}
		if !openLo {
			neq = append(neq, row{index: i, kind: lowerSide, bound: lo})
		}
		if !openHi {
			neq = append(neq, row{index: i, kind: upperSide, bound: hi})
		}
	}
	return eq, neq
}

func variableBounds(b nlp.Bounds) []slsqp.Bound {
	bounds := make([]slsqp.Bound, len(b.XLower))
	for i := range bounds {
		lo, hi := b.XLower[i], b.XUpper[i]
		if nlp.UnboundedBelow(lo) {
			lo = math.Inf(-1)
		}
		if nlp.UnboundedAbove(hi) {
			hi = math.Inf(1)
		}
		bounds[i] = slsqp.Bound{Lower: lo, Upper: hi}
	}
	return bounds
}

type bridge struct {
	p         nlp.Program
	dims      nlp.Dims
	structure []nlp.Entry
}

func (b *bridge) objective() slsqp.Evaluation {
	return func(x, grad []float64) float64 {
		if grad != nil {
			b.p.Gradient(x, grad)
		}
		return b.p.Objective(x)
	}
}

func (b *bridge) constraint(r row) slsqp.Evaluation {
	sign := 1.0
	if r.kind == upperSide {
		sign = -1
	}
	return func(x, grad []float64) float64 {
		if grad != nil {
			vals := make([]float64, b.dims.JacNNZ)
			b.p.Jacobian(x, vals)
			for i := range grad {
				grad[i] = 0
			}
			for k, e := range b.structure {
				if e.Row == r.index {
					grad[e.Col] += sign * vals[k]
				}
			}
		}
		g := make([]float64, b.dims.M)
		b.p.Constraints(x, g)
		return sign * (g[r.index] - r.bound)
	}
}

func status(r *slsqp.Result) nlp.Status {
	switch {
	case r.OK:
		return nlp.StatusOptimal
	case r.Status == slsqp.SQPExceedMaxIter:
		return nlp.StatusIterationLimit
	case r.Status == slsqp.ConsIncompatible:
		return nlp.StatusInfeasible
	case r.Status == slsqp.SearchNotDescent,
		r.Status == slsqp.NNLSExceedMaxIter,
		r.Status == slsqp.LSISingularE,
		r.Status == slsqp.LSEISingularC,
		r.Status == slsqp.HFTIRankDefect:
		return nlp.StatusNumericalError
	default:
		return nlp.StatusFailed
	}
}

// Solve validates p, hands it to the SLSQP engine from its starting point,
// and returns the terminal solution. When p implements [nlp.Finalizer] the
// hook is invoked with the finished solution before returning.
//
// The engine does not expose multipliers, so Lambda, ZLower and ZUpper are
// zero vectors of the contractual lengths.
func Solve(p nlp.Program, opts Options) (*nlp.Solution, error) {
	if err := nlp.Validate(p); err != nil {
		return nil, err
	}
	if opts.Accuracy <= 0 {
		opts.Accuracy = DefaultOptions().Accuracy
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions().MaxIterations
	}

	d := p.Dims()
	b := &bridge{p: p, dims: d, structure: p.JacobianStructure()}

	eqRows, neqRows := splitRows(p.Bounds())
	eq := make([]slsqp.Evaluation, len(eqRows))
	for i, r := range eqRows {
		eq[i] = b.constraint(r)
	}
	neq := make([]slsqp.Evaluation, len(neqRows))
	for i, r := range neqRows {
		neq[i] = b.constraint(r)
	}

	prob := slsqp.Problem{
		N:      d.N,
		Object: b.objective(),
		EqCons: eq, NeqCons: neq,
		Bounds: variableBounds(p.Bounds()),
		Stop: slsqp.Termination{
			Accuracy:      opts.Accuracy,
			MaxIterations: opts.MaxIterations,
		},
	}

	o, err := prob.New()
	if err != nil {
		return nil, fmt.Errorf("engine rejected problem: %w", err)
	}

	x0 := make([]float64, d.N)
	copy(x0, p.StartingPoint())
	res := o.Fit(x0, o.Init())

	sol := &nlp.Solution{
		Status:     status(res),
		X:          res.X,
		ZLower:     make([]float64, d.N),
		ZUpper:     make([]float64, d.N),
		Lambda:     make([]float64, d.M),
		G:          make([]float64, d.M),
		Objective:  p.Objective(res.X),
		Iterations: res.NumIter,
	}
	if d.M > 0 {
		p.Constraints(res.X, sol.G)
	}

	if f, ok := p.(nlp.Finalizer); ok {
		f.Finalize(sol)
	}
	return sol, nil
}
