package deriv

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/curioloop/optimizer/numdiff"

	"github.com/swsmth4776/nlplab/internal/nlp"
)

// Options controls the checking battery.
type Options struct {
	// Tolerance is the relative error above which a check fails.
	Tolerance float64
	// Samples is the number of random bound-box points checked in addition
	// to the starting point.
	Samples int
	// Seed makes the sample points deterministic.
	Seed int64
}

func DefaultOptions() Options {
	return Options{Tolerance: 1e-6, Samples: 5, Seed: 1}
}

// Result is the outcome of a single check.
type Result struct {
	Name   string
	MaxAbs float64
	MaxRel float64
	OK     bool
}

// Report collects the results of a full battery.
type Report struct {
	Problem   string
	Tolerance float64
	Results   []Result
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK {
			return false
		}
	}
	return true
}

// Check runs the full derivative battery for p.
func Check(name string, p nlp.Program, opts Options) (*Report, error) {
	if err := nlp.Validate(p); err != nil {
		return nil, err
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultOptions().Tolerance
	}

	d := p.Dims()
	b := p.Bounds()
	rep := &Report{Problem: name, Tolerance: opts.Tolerance}
	rep.Results = append(rep.Results, CheckBounds(b))

	points := samplePoints(p, opts)

	grad := Result{Name: "gradient", OK: true}
	jac := Result{Name: "jacobian", OK: true}
	hobj := Result{Name: "hessian (objective)", OK: true}
	hcons := make([]Result, d.M)
	for i := range hcons {
		hcons[i] = Result{Name: fmt.Sprintf("hessian (constraint %d)", i), OK: true}
	}

	for _, x := range points {
		if err := checkGradientAt(p, x, &grad); err != nil {
			return nil, err
		}
		if d.M > 0 {
			if err := checkJacobianAt(p, x, &jac); err != nil {
				return nil, err
			}
		}
		if err := checkObjectiveHessianAt(p, x, &hobj); err != nil {
			return nil, err
		}
		for i := 0; i < d.M; i++ {
			if err := checkConstraintHessianAt(p, x, i, &hcons[i]); err != nil {
				return nil, err
			}
		}
	}

	grad.OK = grad.MaxRel <= opts.Tolerance
	rep.Results = append(rep.Results, grad)
	if d.M > 0 {
		jac.OK = jac.MaxRel <= opts.Tolerance
		rep.Results = append(rep.Results, jac)
	}
	hobj.OK = hobj.MaxRel <= opts.Tolerance
	rep.Results = append(rep.Results, hobj)
	for i := range hcons {
		hcons[i].OK = hcons[i].MaxRel <= opts.Tolerance
		rep.Results = append(rep.Results, hcons[i])
	}

	return rep, nil
}

// CheckBounds verifies lo[i] <= hi[i] for every variable and constraint,
// treating sentinel values as open bounds.
func CheckBounds(b nlp.Bounds) Result {
	res := Result{Name: "bounds", OK: true}
	for i := range b.XLower {
		if b.XLower[i] > b.XUpper[i] {
			res.OK = false
		}
	}
	for i := range b.GLower {
		if nlp.UnboundedBelow(b.GLower[i]) || nlp.UnboundedAbove(b.GUpper[i]) {
			continue
		}
		if b.GLower[i] > b.GUpper[i] {
			res.OK = false
		}
	}
	return res
}

func samplePoints(p nlp.Program, opts Options) [][]float64 {
	d := p.Dims()
	b := p.Bounds()
	rng := rand.New(rand.NewSource(opts.Seed))

	points := [][]float64{clone(p.StartingPoint())}
	for s := 0; s < opts.Samples; s++ {
		x := make([]float64, d.N)
		for i := range x {
			lo, hi := b.XLower[i], b.XUpper[i]
			if nlp.UnboundedBelow(lo) {
				lo = -5
			}
			if nlp.UnboundedAbove(hi) {
				hi = 5
			}
			x[i] = lo + rng.Float64()*(hi-lo)
		}
		points = append(points, x)
	}
	return points
}

func diffBounds(b nlp.Bounds) []numdiff.Bound {
	bounds := make([]numdiff.Bound, len(b.XLower))
	for i := range bounds {
		lo, hi := b.XLower[i], b.XUpper[i]
		if nlp.UnboundedBelow(lo) {
			lo = math.Inf(-1)
		}
		if nlp.UnboundedAbove(hi) {
			hi = math.Inf(1)
		}
		bounds[i] = numdiff.Bound{lo, hi}
	}
	return bounds
}

// approx runs a central difference of fn : ℝⁿ → ℝᵐ at x.
// The result is laid out as diff[i+j*n] = ∂fn_j/∂x_i.
func approx(p nlp.Program, m int, fn func(x, y []float64), x []float64) ([]float64, error) {
	d := p.Dims()
	spec := &numdiff.ApproxSpec{
		N:      d.N,
		M:      m,
		Object: fn,
		Method: numdiff.Central,
		Bounds: diffBounds(p.Bounds()),
	}
	diff := make([]float64, d.N*m)
	if err := spec.Diff(clone(x), diff); err != nil {
		return nil, fmt.Errorf("finite difference failed: %w", err)
	}
	return diff, nil
}

func checkGradientAt(p nlp.Program, x []float64, res *Result) error {
	d := p.Dims()
	fd, err := approx(p, 1, func(x, y []float64) { y[0] = p.Objective(x) }, x)
	if err != nil {
		return err
	}
	grad := make([]float64, d.N)
	p.Gradient(x, grad)
	accumulate(res, grad, fd)
	return nil
}

func checkJacobianAt(p nlp.Program, x []float64, res *Result) error {
	d := p.Dims()
	fd, err := approx(p, d.M, func(x, y []float64) { p.Constraints(x, y) }, x)
	if err != nil {
		return err
	}
	// fd[i+j*n] vs dense analytic row-major [j*n+i]
	dense := denseJacobian(p, x)
	for j := 0; j < d.M; j++ {
		for i := 0; i < d.N; i++ {
			observe(res, dense[j*d.N+i], fd[i+j*d.N])
		}
	}
	return nil
}

func checkObjectiveHessianAt(p nlp.Program, x []float64, res *Result) error {
	d := p.Dims()
	// differentiate the analytic gradient: fd[i+j*n] = H[j][i]
	fd, err := approx(p, d.N, func(x, y []float64) { p.Gradient(x, y) }, x)
	if err != nil {
		return err
	}
	full := fullHessian(p, x, 1, make([]float64, d.M))
	compareHessian(res, full, fd, d.N)
	return nil
}

func checkConstraintHessianAt(p nlp.Program, x []float64, cons int, res *Result) error {
	d := p.Dims()
	structure := p.JacobianStructure()
	rowGrad := func(x, y []float64) {
		vals := make([]float64, d.JacNNZ)
		p.Jacobian(x, vals)
		for i := range y {
			y[i] = 0
		}
		for k, e := range structure {
			if e.Row == cons {
				y[e.Col] += vals[k]
			}
		}
	}
	fd, err := approx(p, d.N, rowGrad, x)
	if err != nil {
		return err
	}
	lambda := make([]float64, d.M)
	lambda[cons] = 1
	full := fullHessian(p, x, 0, lambda)
	compareHessian(res, full, fd, d.N)
	return nil
}

// fullHessian reconstructs the symmetric n×n matrix from the reported lower
// triangle.
func fullHessian(p nlp.Program, x []float64, objFactor float64, lambda []float64) []float64 {
	d := p.Dims()
	vals := make([]float64, d.HessNNZ)
	p.Hessian(objFactor, x, lambda, vals)

	full := make([]float64, d.N*d.N)
	for k, e := range p.HessianStructure() {
		full[e.Row*d.N+e.Col] += vals[k]
		if e.Row != e.Col {
			full[e.Col*d.N+e.Row] += vals[k]
		}
	}
	return full
}

func denseJacobian(p nlp.Program, x []float64) []float64 {
	d := p.Dims()
	vals := make([]float64, d.JacNNZ)
	p.Jacobian(x, vals)

	dense := make([]float64, d.M*d.N)
	for k, e := range p.JacobianStructure() {
		dense[e.Row*d.N+e.Col] += vals[k]
	}
	return dense
}

func compareHessian(res *Result, full, fd []float64, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			observe(res, full[j*n+i], fd[i+j*n])
		}
	}
}

func accumulate(res *Result, analytic, fd []float64) {
	for i := range analytic {
		observe(res, analytic[i], fd[i])
	}
}

func observe(res *Result, analytic, approx float64) {
	abs := math.Abs(analytic - approx)
	rel := abs / math.Max(1, math.Abs(analytic))
	if abs > res.MaxAbs {
		res.MaxAbs = abs
	}
	if rel > res.MaxRel {
		res.MaxRel = rel
	}
}

func clone(x []float64) []float64 {
	c := make([]float64, len(x))
	copy(c, x)
	return c
}
