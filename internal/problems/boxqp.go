package problems

import "github.com/swsmth4776/nlplab/internal/nlp"

// BoxQP is a small convex quadratic over the unit box with a budget
// equality:
//
//	min  Σ (xi - ci)²      c = (0.1, 0.6, 0.9)
//	s.t. x0 + x1 + x2 = 1
//	     0 ≤ xi ≤ 1
//
// The equality-only minimizer has x0 < 0, so the lower bound on x0 is
// active at the solution. Unlike HS071 its Hessian structure is genuinely
// sparse: the constraint is linear, leaving only the 3 diagonal slots.
type BoxQP struct{}

var boxQPCenter = [3]float64{0.1, 0.6, 0.9}

func NewBoxQP() *BoxQP {
	return &BoxQP{}
}

func (p *BoxQP) Dims() nlp.Dims {
	return nlp.Dims{N: 3, M: 1, JacNNZ: 3, HessNNZ: 3}
}

func (p *BoxQP) Bounds() nlp.Bounds {
	return nlp.Bounds{
		XLower: []float64{0, 0, 0},
		XUpper: []float64{1, 1, 1},
		GLower: []float64{1},
		GUpper: []float64{1},
	}
}

func (p *BoxQP) StartingPoint() []float64 {
	return []float64{1. / 3, 1. / 3, 1. / 3}
}

func (p *BoxQP) Objective(x []float64) float64 {
	f := 0.0
	for i, c := range boxQPCenter {
		d := x[i] - c
		f += d * d
	}
	return f
}

func (p *BoxQP) Gradient(x, grad []float64) {
	for i, c := range boxQPCenter {
		grad[i] = 2 * (x[i] - c)
	}
}

func (p *BoxQP) Constraints(x, g []float64) {
	g[0] = x[0] + x[1] + x[2]
}

func (p *BoxQP) JacobianStructure() []nlp.Entry {
	return []nlp.Entry{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
}

func (p *BoxQP) Jacobian(x, vals []float64) {
	vals[0], vals[1], vals[2] = 1, 1, 1
}

func (p *BoxQP) HessianStructure() []nlp.Entry {
	return []nlp.Entry{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
}

func (p *BoxQP) Hessian(objFactor float64, x, lambda, vals []float64) {
	vals[0] = objFactor * 2
	vals[1] = objFactor * 2
	vals[2] = objFactor * 2
}

// Optimum returns the solution with the x0 bound active.
func (p *BoxQP) Optimum() ([]float64, float64) {
	return []float64{0, 0.35, 0.65}, 0.135
}
