package problems

import "github.com/swsmth4776/nlplab/internal/nlp"

// Rosenbrock is the banana function constrained to the unit disk:
//
//	min  100·(x1 - x0²)² + (1 - x0)²
//	s.t. x0² + x1² ≤ 1
//	     -1 ≤ xi ≤ 1
//
// The unconstrained minimum at (1, 1) lies outside the disk, so the
// constraint is active at the solution.
type Rosenbrock struct{}

func NewRosenbrock() *Rosenbrock {
	return &Rosenbrock{}
}

func (p *Rosenbrock) Dims() nlp.Dims {
	return nlp.Dims{N: 2, M: 1, JacNNZ: 2, HessNNZ: 3}
}

func (p *Rosenbrock) Bounds() nlp.Bounds {
	return nlp.Bounds{
		XLower: []float64{-1, -1},
		XUpper: []float64{1, 1},
		GLower: []float64{-nlp.Infinity},
		GUpper: []float64{1},
	}
}

func (p *Rosenbrock) StartingPoint() []float64 {
	return []float64{0.1, 0.1}
}

func (p *Rosenbrock) Objective(x []float64) float64 {
	t := x[1] - x[0]*x[0]
	u := 1 - x[0]
	return 100*t*t + u*u
}

func (p *Rosenbrock) Gradient(x, grad []float64) {
	t := x[1] - x[0]*x[0]
	grad[0] = -400*t*x[0] - 2*(1-x[0])
	grad[1] = 200 * t
}

func (p *Rosenbrock) Constraints(x, g []float64) {
	g[0] = x[0]*x[0] + x[1]*x[1]
}

func (p *Rosenbrock) JacobianStructure() []nlp.Entry {
	return []nlp.Entry{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
}

func (p *Rosenbrock) Jacobian(x, vals []float64) {
	vals[0] = 2 * x[0]
	vals[1] = 2 * x[1]
}

func (p *Rosenbrock) HessianStructure() []nlp.Entry {
	return []nlp.Entry{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
}

func (p *Rosenbrock) Hessian(objFactor float64, x, lambda, vals []float64) {
	vals[0] = objFactor*(1200*x[0]*x[0]-400*x[1]+2) + lambda[0]*2
	vals[1] = objFactor * (-400 * x[0])
	vals[2] = objFactor*200 + lambda[0]*2
}

// Optimum returns the disk-constrained minimum.
func (p *Rosenbrock) Optimum() ([]float64, float64) {
	return []float64{0.7864151509718389, 0.6176983165954114}, 0.0456748087191604
}
